// Package service serves audit log reads to organization administrators.
package service

import (
	"context"

	"contract-mgmt/backend/internal/audit/domain"
	"contract-mgmt/backend/internal/audit/repository"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/policy/engine"
)

// DefaultPageSize applies when the caller asks for zero entries.
const DefaultPageSize = 50

// Authorizer checks the caller's role in an organization.
type Authorizer interface {
	RequireOrgAdmin(ctx context.Context, userID, orgID string, action engine.Action) (*membershipdomain.Membership, error)
}

type Service struct {
	repo  repository.Repository
	authz Authorizer
}

func NewService(repo repository.Repository, authz Authorizer) *Service {
	return &Service{repo: repo, authz: authz}
}

// List returns orgID's audit entries newest first. Only owners and admins may read them.
func (s *Service) List(ctx context.Context, userID, orgID string, limit, offset int32) ([]*domain.AuditLog, error) {
	if _, err := s.authz.RequireOrgAdmin(ctx, userID, orgID, engine.ActionAuditList); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.repo.ListByOrg(ctx, orgID, limit, offset)
	if err != nil {
		return nil, apperr.Storage("list audit logs", err)
	}
	return logs, nil
}
