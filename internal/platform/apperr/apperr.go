// Package apperr defines the stable outcome taxonomy shared by the tenancy services and
// its translation to gRPC status at the handler boundary.
package apperr

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind enumerates every outcome a caller can pattern-match on.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingSubject
	KindMissingEmail
	KindOrganizationRequired
	KindForbiddenNotAdmin
	KindNotAMember
	KindEmailMismatch
	KindInviteNotPending
	KindInviteExpired
	KindNotFound
	KindDuplicateMembership
	KindInvalidArgument
	KindStorage
)

// ErrorDomain is set on every ErrorInfo detail attached by ToStatus.
const ErrorDomain = "contract-mgmt"

var kindNames = map[Kind]string{
	KindUnknown:              "UNKNOWN",
	KindMissingSubject:       "MISSING_SUBJECT",
	KindMissingEmail:         "MISSING_EMAIL",
	KindOrganizationRequired: "ORG_REQUIRED",
	KindForbiddenNotAdmin:    "FORBIDDEN_NOT_ADMIN",
	KindNotAMember:           "NOT_A_MEMBER",
	KindEmailMismatch:        "EMAIL_MISMATCH",
	KindInviteNotPending:     "INVITE_NOT_PENDING",
	KindInviteExpired:        "INVITE_EXPIRED",
	KindNotFound:             "NOT_FOUND",
	KindDuplicateMembership:  "DUPLICATE_MEMBERSHIP",
	KindInvalidArgument:      "INVALID_ARGUMENT",
	KindStorage:              "STORAGE",
}

// String returns the reason code used on the wire (e.g. ORG_REQUIRED).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Error is a classified failure. Message is safe to show to callers; Err is the cause and is never sent.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind so sentinels below work with errors.Is after wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// New returns an *Error of kind with a caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Storage wraps a persistence failure. The driver error is kept for logs only.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: op, Err: err}
}

// Sentinels. Compare with errors.Is; they match any *Error of the same kind.
var (
	ErrMissingSubject       = &Error{Kind: KindMissingSubject}
	ErrMissingEmail         = &Error{Kind: KindMissingEmail}
	ErrOrganizationRequired = &Error{Kind: KindOrganizationRequired}
	ErrForbiddenNotAdmin    = &Error{Kind: KindForbiddenNotAdmin}
	ErrNotAMember           = &Error{Kind: KindNotAMember}
	ErrEmailMismatch        = &Error{Kind: KindEmailMismatch}
	ErrInviteNotPending     = &Error{Kind: KindInviteNotPending}
	ErrInviteExpired        = &Error{Kind: KindInviteExpired}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrDuplicateMembership  = &Error{Kind: KindDuplicateMembership}
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrStorage              = &Error{Kind: KindStorage}
)

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func codeFor(kind Kind) codes.Code {
	switch kind {
	case KindMissingSubject, KindMissingEmail:
		return codes.Unauthenticated
	case KindOrganizationRequired, KindForbiddenNotAdmin, KindNotAMember, KindEmailMismatch:
		return codes.PermissionDenied
	case KindInviteNotPending, KindInviteExpired:
		return codes.FailedPrecondition
	case KindNotFound:
		return codes.NotFound
	case KindDuplicateMembership:
		return codes.AlreadyExists
	case KindInvalidArgument:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status error carrying an ErrorInfo detail whose Reason is the Kind.
// Storage and unclassified errors become Internal with a generic message. A status error passes through.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindStorage || e.Kind == KindUnknown {
		return status.Error(codes.Internal, "internal error")
	}
	msg := e.Message
	if msg == "" {
		msg = defaultMessage(e.Kind)
	}
	st := status.New(codeFor(e.Kind), msg)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: e.Kind.String(),
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ReasonOf extracts the ErrorInfo reason from a gRPC status error, or "" if none.
// Clients use it to tell ORG_REQUIRED apart from other PermissionDenied outcomes.
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindMissingSubject:
		return "missing auth subject"
	case KindMissingEmail:
		return "missing email in token"
	case KindOrganizationRequired:
		return "organization setup required"
	case KindForbiddenNotAdmin:
		return "organization admin or owner required"
	case KindNotAMember:
		return "not a member of this organization"
	case KindEmailMismatch:
		return "invite email does not match your login email"
	case KindInviteNotPending:
		return "invite is no longer usable"
	case KindInviteExpired:
		return "invite expired"
	case KindNotFound:
		return "not found"
	case KindDuplicateMembership:
		return "membership already exists"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "internal error"
	}
}
