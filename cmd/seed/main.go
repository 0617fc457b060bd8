// seed inserts development fixtures for local testing: go run ./cmd/seed
// Idempotent: does nothing when the dev owner already exists.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"contract-mgmt/backend/internal/config"
	"contract-mgmt/backend/internal/db"
	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/security"
)

// Subjects match the sub claim a local JWT (AUTH_PROVIDER=jwt) must carry to act as these users.
const (
	ownerSubject  = "dev|owner"
	ownerEmail    = "owner@example.com"
	ownerID       = "dev-user-001"
	memberSubject = "dev|member"
	memberEmail   = "member@example.com"
	memberID      = "dev-user-002"
	inviteeEmail  = "invitee@example.com"

	orgID          = "dev-org-001"
	orgName        = "Acme Legal"
	ownerMemberID  = "dev-membership-001"
	memberMemberID = "dev-membership-002"
	invitationID   = "dev-invitation-001"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.Component(logger.New(os.Stderr, logger.Options{Level: cfg.LogLevel}), "seed")

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := gen.New(pool).GetUserBySubject(ctx, ownerSubject); err == nil {
		log.Info("seed already applied, skipping", "subject", ownerSubject)
		return
	} else if !db.IsNoRows(err) {
		log.Error("seed check", "error", err)
		os.Exit(1)
	}

	token, err := seed(ctx, pool)
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed completed", "org_id", orgID)
	fmt.Printf("owner:  sub=%s email=%s\n", ownerSubject, ownerEmail)
	fmt.Printf("member: sub=%s email=%s\n", memberSubject, memberEmail)
	fmt.Printf("pending invitation for %s: token=%s\n", inviteeEmail, token)
}

// seed writes every fixture in one transaction and returns the raw invitation token.
func seed(ctx context.Context, pool db.Pool) (string, error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := gen.New(tx)
	now := time.Now().UTC()

	for _, u := range []gen.CreateUserParams{
		{ID: ownerID, Subject: ownerSubject, Email: ownerEmail, CreatedAt: now, UpdatedAt: now},
		{ID: memberID, Subject: memberSubject, Email: memberEmail, CreatedAt: now, UpdatedAt: now},
	} {
		if _, err := q.CreateUser(ctx, u); err != nil {
			return "", fmt.Errorf("create user %s: %w", u.ID, err)
		}
	}

	if _, err := q.CreateOrganization(ctx, gen.CreateOrganizationParams{
		ID:           orgID,
		Name:         orgName,
		ContactEmail: ptr(ownerEmail),
		Website:      ptr("https://acme.example.com"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return "", fmt.Errorf("create organization: %w", err)
	}

	for _, m := range []gen.CreateMembershipParams{
		{ID: ownerMemberID, UserID: ownerID, OrgID: orgID, Role: gen.RoleOwner, CreatedAt: now},
		{ID: memberMemberID, UserID: memberID, OrgID: orgID, Role: gen.RoleMember, CreatedAt: now.Add(time.Second)},
	} {
		if _, err := q.CreateMembership(ctx, m); err != nil {
			return "", fmt.Errorf("create membership %s: %w", m.ID, err)
		}
		if _, err := q.SetActiveOrganization(ctx, gen.SetActiveOrganizationParams{ID: m.UserID, ActiveOrganizationID: ptr(orgID), UpdatedAt: now}); err != nil {
			return "", fmt.Errorf("set active organization for %s: %w", m.UserID, err)
		}
	}

	token, hash, err := security.NewInviteToken()
	if err != nil {
		return "", err
	}
	if _, err := q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:              invitationID,
		OrgID:           orgID,
		Email:           inviteeEmail,
		Role:            gen.RoleMember,
		TokenHash:       hash,
		ExpiresAt:       now.Add(7 * 24 * time.Hour),
		CreatedByUserID: ownerID,
		CreatedAt:       now,
	}); err != nil {
		return "", fmt.Errorf("create invitation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func ptr(s string) *string { return &s }
