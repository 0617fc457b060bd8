package validate

import (
	"errors"
	"strings"
	"testing"

	"contract-mgmt/backend/internal/platform/apperr"
)

type sample struct {
	Name    string  `json:"name" validate:"notblank,max=5"`
	Email   string  `json:"email,omitempty" validate:"omitempty,email"`
	Website *string `json:"website,omitempty" validate:"omitempty,url"`
}

func TestStruct(t *testing.T) {
	bad := "not a url"
	good := "https://example.com"
	testCases := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{"valid", sample{Name: "Acme", Website: &good}, ""},
		{"blank name", sample{Name: "   "}, "name is required"},
		{"too long", sample{Name: "Acme Corp"}, "name must be at most 5 characters"},
		{"bad email", sample{Name: "Acme", Email: "nope"}, "email must be a valid email address"},
		{"bad url pointer", sample{Name: "Acme", Website: &bad}, "website must be a valid URL"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(&tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Struct: %v", err)
				}
				return
			}
			if !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("err = %v, want InvalidArgument", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %q, want to contain %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestStruct_CollectsAllFields(t *testing.T) {
	err := Struct(&sample{Name: "", Email: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "name is required") || !strings.Contains(err.Error(), "email must be") {
		t.Errorf("err = %q", err.Error())
	}
}
