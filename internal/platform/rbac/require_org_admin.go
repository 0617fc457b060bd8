// Package rbac answers "may this user act in this organization" from memberships and role policy.
package rbac

import (
	"context"

	"contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/policy/engine"
)

// OrgMembershipGetter returns a user's membership in an org, or (nil, nil) when there is none.
type OrgMembershipGetter interface {
	Get(ctx context.Context, userID, orgID string) (*domain.Membership, error)
}

// Checker combines membership lookup with a policy evaluator.
type Checker struct {
	memberships OrgMembershipGetter
	policy      engine.Evaluator
}

// NewChecker returns a Checker. A nil policy falls back to the built-in owner/admin rule.
func NewChecker(memberships OrgMembershipGetter, policy engine.Evaluator) *Checker {
	if policy == nil {
		policy = roleRule{}
	}
	return &Checker{memberships: memberships, policy: policy}
}

// RequireOrgAdmin returns the caller's membership when policy allows action for it.
// Callers who are not members get ForbiddenNotAdmin, the same as members without the role.
func (c *Checker) RequireOrgAdmin(ctx context.Context, userID, orgID string, action engine.Action) (*domain.Membership, error) {
	m, err := c.decide(ctx, userID, orgID, action)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrForbiddenNotAdmin
	}
	return m, nil
}

func (c *Checker) decide(ctx context.Context, userID, orgID string, action engine.Action) (*domain.Membership, error) {
	if orgID == "" {
		return nil, apperr.ErrOrganizationRequired
	}
	m, err := c.memberships.Get(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}
	in := engine.Input{Action: action, Member: m != nil}
	if m != nil {
		in.Role = m.Role.String()
	}
	ok, err := c.policy.Allow(ctx, in)
	if err != nil {
		return nil, apperr.Storage("evaluate policy", err)
	}
	if !ok {
		return nil, nil
	}
	return m, nil
}

// roleRule is the policy without OPA: owners and admins may do anything, members may read.
type roleRule struct{}

func (roleRule) Allow(_ context.Context, in engine.Input) (bool, error) {
	if !in.Member {
		return false, nil
	}
	if in.Action == engine.ActionOrganizationRead {
		return true, nil
	}
	r, ok := domain.ParseRole(in.Role)
	return ok && r.CanAdminister(), nil
}
