package engine

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

const allowQuery = "data.tenancy.authz.allow"

// DefaultPolicy grants admin actions to owners and admins and read actions to any member.
const DefaultPolicy = `package tenancy.authz

default allow := false

admin_actions := {
	"organization.update",
	"invitation.create",
	"invitation.list",
	"invitation.revoke",
	"audit.list",
}

member_actions := {"organization.read"}

admin_roles := {"owner", "admin"}

allow if {
	input.member
	input.action in admin_actions
	input.role in admin_roles
}

allow if {
	input.member
	input.action in member_actions
}
`

// OPAEvaluator evaluates role decisions with a Rego policy prepared once at construction.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles policy (DefaultPolicy when empty). A policy that does not compile is an error.
func NewOPAEvaluator(ctx context.Context, policy string) (*OPAEvaluator, error) {
	if policy == "" {
		policy = DefaultPolicy
	}
	pq, err := rego.New(
		rego.Query(allowQuery),
		rego.Module("authz.rego", policy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare authz policy: %w", err)
	}
	return &OPAEvaluator{query: pq}, nil
}

// Allow evaluates the policy for in. An undefined result denies.
func (e *OPAEvaluator) Allow(ctx context.Context, in Input) (bool, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(in))
	if err != nil {
		return false, fmt.Errorf("eval authz policy: %w", err)
	}
	return rs.Allowed(), nil
}

// HealthCheck runs one decision through the prepared query. An owner updating its
// organization must be allowed by any sane policy.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	ok, err := e.Allow(ctx, Input{Action: ActionOrganizationUpdate, Role: "owner", Member: true})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("authz policy denied owner %s", ActionOrganizationUpdate)
	}
	return nil
}
