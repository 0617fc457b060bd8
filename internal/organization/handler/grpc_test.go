package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	organizationv1 "contract-mgmt/backend/api/organization/v1"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/organization/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/server/interceptors"
)

type fakeOrgs struct {
	created    domain.Organization
	updatedOrg string
	updateErr  error
	lastPatch  domain.Patch
}

func (f *fakeOrgs) Create(_ context.Context, userID string, in domain.Organization) (*domain.Organization, *membershipdomain.Membership, error) {
	f.created = in
	o := in
	o.ID = "org-new"
	return &o, &membershipdomain.Membership{UserID: userID, OrgID: o.ID, Role: membershipdomain.RoleOwner}, nil
}

func (f *fakeOrgs) Get(_ context.Context, userID, orgID string) (*domain.Organization, *membershipdomain.Membership, error) {
	if orgID != "org-a" {
		return nil, nil, apperr.ErrNotAMember
	}
	return &domain.Organization{ID: orgID, Name: "Acme"}, &membershipdomain.Membership{UserID: userID, OrgID: orgID, Role: membershipdomain.RoleAdmin}, nil
}

func (f *fakeOrgs) Update(_ context.Context, _, orgID string, p domain.Patch) (*domain.Organization, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedOrg = orgID
	f.lastPatch = p
	o := &domain.Organization{ID: orgID, Name: "Acme"}
	if err := p.Apply(o); err != nil {
		return nil, err
	}
	return o, nil
}

func ctxFor(userID, orgID string) context.Context {
	return interceptors.WithTenant(context.Background(), interceptors.Tenant{UserID: userID, OrgID: orgID})
}

func strPtr(s string) *string { return &s }

func TestCreateOrganization(t *testing.T) {
	f := &fakeOrgs{}
	resp, err := NewServer(f).CreateOrganization(ctxFor("user-1", ""), &organizationv1.CreateOrganizationRequest{
		Name: "Acme", Website: "https://acme.test", BrandColor: "#abc",
	})
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	if resp.Role != "owner" || resp.Organization.ID != "org-new" || resp.Organization.Website != "https://acme.test" {
		t.Errorf("resp = %+v / %+v", resp, resp.Organization)
	}
}

func TestCreateOrganization_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		req  *organizationv1.CreateOrganizationRequest
	}{
		{"blank name", &organizationv1.CreateOrganizationRequest{Name: "   "}},
		{"bad email", &organizationv1.CreateOrganizationRequest{Name: "Acme", ContactEmail: "nope"}},
		{"bad color", &organizationv1.CreateOrganizationRequest{Name: "Acme", BrandColor: "blue"}},
		{"bad url", &organizationv1.CreateOrganizationRequest{Name: "Acme", LogoURL: "not a url"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeOrgs{}
			_, err := NewServer(f).CreateOrganization(ctxFor("user-1", ""), tc.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("code = %v, want InvalidArgument", status.Code(err))
			}
			if f.created.Name != "" {
				t.Error("service should not be called")
			}
		})
	}
}

func TestGetActiveOrganization(t *testing.T) {
	srv := NewServer(&fakeOrgs{})
	resp, err := srv.GetActiveOrganization(ctxFor("user-1", "org-a"), &organizationv1.GetActiveOrganizationRequest{})
	if err != nil {
		t.Fatalf("GetActiveOrganization: %v", err)
	}
	if resp.Organization.Name != "Acme" || resp.Role != "admin" {
		t.Errorf("resp = %+v", resp)
	}

	_, err = srv.GetActiveOrganization(ctxFor("user-1", ""), &organizationv1.GetActiveOrganizationRequest{})
	if status.Code(err) != codes.PermissionDenied || apperr.ReasonOf(err) != "ORG_REQUIRED" {
		t.Errorf("no org: code=%v reason=%q", status.Code(err), apperr.ReasonOf(err))
	}
}

func TestUpdateOrganization_DefaultsToActive(t *testing.T) {
	f := &fakeOrgs{}
	resp, err := NewServer(f).UpdateOrganization(ctxFor("user-1", "org-a"), &organizationv1.UpdateOrganizationRequest{Name: strPtr("Acme Corp")})
	if err != nil {
		t.Fatalf("UpdateOrganization: %v", err)
	}
	if f.updatedOrg != "org-a" || resp.Organization.Name != "Acme Corp" {
		t.Errorf("updated %q -> %+v", f.updatedOrg, resp.Organization)
	}
}

func TestUpdateOrganization_ExplicitOrg(t *testing.T) {
	f := &fakeOrgs{}
	if _, err := NewServer(f).UpdateOrganization(ctxFor("user-1", "org-a"), &organizationv1.UpdateOrganizationRequest{OrganizationID: "org-b", Phone: strPtr("+44")}); err != nil {
		t.Fatalf("UpdateOrganization: %v", err)
	}
	if f.updatedOrg != "org-b" || f.lastPatch.Phone == nil || f.lastPatch.Name != nil {
		t.Errorf("updatedOrg = %q patch = %+v", f.updatedOrg, f.lastPatch)
	}
}

func TestUpdateOrganization_Forbidden(t *testing.T) {
	f := &fakeOrgs{updateErr: apperr.ErrForbiddenNotAdmin}
	_, err := NewServer(f).UpdateOrganization(ctxFor("user-1", "org-a"), &organizationv1.UpdateOrganizationRequest{Name: strPtr("Mine")})
	if status.Code(err) != codes.PermissionDenied || apperr.ReasonOf(err) != "FORBIDDEN_NOT_ADMIN" {
		t.Errorf("code=%v reason=%q", status.Code(err), apperr.ReasonOf(err))
	}
}

func TestOrganizationServer_NotWired(t *testing.T) {
	_, err := NewServer(nil).GetActiveOrganization(ctxFor("user-1", "org-a"), &organizationv1.GetActiveOrganizationRequest{})
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
}
