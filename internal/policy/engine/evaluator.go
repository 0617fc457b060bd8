package engine

import "context"

// Action names an organization-scoped operation subject to role policy.
type Action string

const (
	ActionOrganizationRead   Action = "organization.read"
	ActionOrganizationUpdate Action = "organization.update"
	ActionInvitationCreate   Action = "invitation.create"
	ActionInvitationList     Action = "invitation.list"
	ActionInvitationRevoke   Action = "invitation.revoke"
	ActionAuditList          Action = "audit.list"
)

// Input is what a policy decision sees about the caller. Role is empty when Member is false.
type Input struct {
	Action Action `json:"action"`
	Role   string `json:"role"`
	Member bool   `json:"member"`
}

// Evaluator decides whether a caller may perform an action in an organization.
type Evaluator interface {
	Allow(ctx context.Context, in Input) (bool, error)
}
