package audit

import "strings"

// ActionResource holds action and resource derived from a gRPC full method name.
type ActionResource struct {
	Action   string
	Resource string
}

const (
	switchActiveOrganization = "/contractmgmt.membership.v1.MembershipService/SwitchActiveOrganization"
	acceptInvitation         = "/contractmgmt.invitation.v1.InvitationService/AcceptInvitation"
	updateProfile            = "/contractmgmt.user.v1.UserService/UpdateProfile"
)

// ParseFullMethod returns action and resource for a gRPC full method
// (e.g. /contractmgmt.invitation.v1.InvitationService/RevokeInvitation -> revoke, invitation).
// A few methods whose effect is not on their own service's resource are mapped explicitly.
func ParseFullMethod(fullMethod string) ActionResource {
	switch fullMethod {
	case switchActiveOrganization:
		return ActionResource{Action: "active_org_changed", Resource: "membership"}
	case acceptInvitation:
		return ActionResource{Action: "member_joined", Resource: "membership"}
	case updateProfile:
		return ActionResource{Action: "update", Resource: "profile"}
	}
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 0 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	method := fullMethod[slash+1:]
	beforeSlash := fullMethod[:slash]
	dot := strings.LastIndex(beforeSlash, ".")
	if dot < 0 {
		return ActionResource{Action: strings.ToLower(method), Resource: "unknown"}
	}
	return ActionResource{Action: methodToAction(method), Resource: serviceToResource(beforeSlash[dot+1:])}
}

// Mutating reports whether the action changes state. Reads are not audited.
func (ar ActionResource) Mutating() bool {
	switch ar.Action {
	case "get", "list", "unknown":
		return false
	}
	return true
}

func serviceToResource(serviceName string) string {
	s := strings.TrimSuffix(serviceName, "Service")
	if s == "" {
		return "unknown"
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

var actionPrefixes = []struct{ prefix, action string }{
	{"Get", "get"},
	{"List", "list"},
	{"Create", "create"},
	{"Update", "update"},
	{"Delete", "delete"},
	{"Revoke", "revoke"},
	{"Accept", "accept"},
	{"Switch", "switch"},
}

func methodToAction(method string) string {
	for _, p := range actionPrefixes {
		if strings.HasPrefix(method, p.prefix) && method != p.prefix {
			return p.action
		}
	}
	return strings.ToLower(method)
}
