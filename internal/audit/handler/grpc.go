// Package handler serves AuditService.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	auditv1 "contract-mgmt/backend/api/audit/v1"
	"contract-mgmt/backend/internal/audit/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/platform/validate"
	"contract-mgmt/backend/internal/server/interceptors"
)

// Reader lists audit entries for an organization on behalf of a user.
type Reader interface {
	List(ctx context.Context, userID, orgID string, limit, offset int32) ([]*domain.AuditLog, error)
}

// Server implements auditv1.AuditServiceServer.
type Server struct {
	auditv1.UnimplementedAuditServiceServer
	reader Reader
}

// NewServer returns an Audit gRPC server. With nil reader ListAuditLogs returns Unimplemented.
func NewServer(reader Reader) *Server {
	return &Server{reader: reader}
}

// ListAuditLogs returns a page of the active organization's audit log, newest first.
func (s *Server) ListAuditLogs(ctx context.Context, req *auditv1.ListAuditLogsRequest) (*auditv1.ListAuditLogsResponse, error) {
	if s.reader == nil {
		return nil, status.Error(codes.Unimplemented, "method ListAuditLogs not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	logs, err := s.reader.List(ctx, tenant.UserID, tenant.OrgID, req.Limit, req.Offset)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]*auditv1.AuditLog, len(logs))
	for i, l := range logs {
		out[i] = &auditv1.AuditLog{
			ID:             l.ID,
			OrganizationID: l.OrgID,
			UserID:         l.UserID,
			Action:         l.Action,
			Resource:       l.Resource,
			IP:             l.IP,
			Metadata:       l.Metadata,
			CreatedAt:      l.CreatedAt,
		}
	}
	return &auditv1.ListAuditLogsResponse{AuditLogs: out}, nil
}
