package domain

import "testing"

func TestParseRole(t *testing.T) {
	testCases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"owner", RoleOwner, true},
		{"Admin", RoleAdmin, true},
		{" MEMBER ", RoleMember, true},
		{"viewer", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanAdminister(t *testing.T) {
	if !RoleOwner.CanAdminister() || !RoleAdmin.CanAdminister() {
		t.Error("owner and admin administer")
	}
	if RoleMember.CanAdminister() {
		t.Error("member does not administer")
	}
}

func TestFind(t *testing.T) {
	ms := []*Membership{{OrgID: "a"}, {OrgID: "b"}}
	if Find(ms, "b") != ms[1] {
		t.Error("Find(b) did not return second membership")
	}
	if Find(ms, "c") != nil || Find(ms, "") != nil {
		t.Error("Find should return nil for absent or empty org")
	}
}
