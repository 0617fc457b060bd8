package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/invitation/domain"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
)

var invitationColumns = []string{
	"id", "org_id", "email", "role", "token_hash", "status", "expires_at",
	"created_by_user_id", "accepted_by_user_id", "accepted_at", "revoked_at", "created_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func pendingRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(invitationColumns).
		AddRow("inv-1", "org-1", "b@y.com", gen.RoleMember, "hash-1", gen.InvitationStatusPending, now.Add(time.Hour),
			"owner-1", (*string)(nil), (*time.Time)(nil), (*time.Time)(nil), now)
}

func TestGetByTokenHash(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, org_id, email").WithArgs("hash-1").WillReturnRows(pendingRow(now))

	inv, err := NewPostgresRepository(mock).GetByTokenHash(context.Background(), "hash-1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, domain.StatusPending, inv.Status)
	assert.Equal(t, membershipdomain.RoleMember, inv.Role)
	assert.Empty(t, inv.AcceptedByUserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTokenHash_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id, org_id, email").WithArgs("nope").WillReturnError(pgx.ErrNoRows)

	inv, err := NewPostgresRepository(mock).GetByTokenHash(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestListByOrg(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	accepter := "user-2"
	rows := pendingRow(now).
		AddRow("inv-0", "org-1", "c@z.com", gen.RoleAdmin, "hash-0", gen.InvitationStatusAccepted, now,
			"owner-1", &accepter, &now, (*time.Time)(nil), now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, org_id, email").WithArgs("org-1").WillReturnRows(rows)

	out, err := NewPostgresRepository(mock).ListByOrg(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "inv-1", out[0].ID)
	assert.Equal(t, "user-2", out[1].AcceptedByUserID)
	assert.Equal(t, domain.StatusAccepted, out[1].Status)
}

func TestCreateSuperseding(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	inv := &domain.Invitation{
		ID: "inv-2", OrgID: "org-1", Email: "b@y.com", Role: membershipdomain.RoleMember,
		TokenHash: "hash-2", ExpiresAt: now.Add(domain.DefaultTTL), CreatedByUserID: "owner-1", CreatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invitations SET status = 'revoked'").
		WithArgs("org-1", "b@y.com", &now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO invitations").
		WithArgs("inv-2", "org-1", "b@y.com", gen.RoleMember, "hash-2", inv.ExpiresAt, "owner-1", now).
		WillReturnRows(pgxmock.NewRows(invitationColumns).
			AddRow("inv-2", "org-1", "b@y.com", gen.RoleMember, "hash-2", gen.InvitationStatusPending, inv.ExpiresAt,
				"owner-1", (*string)(nil), (*time.Time)(nil), (*time.Time)(nil), now))
	mock.ExpectCommit()

	n, err := NewPostgresRepository(mock).CreateSuperseding(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSuperseding_InsertFailsRollsBack(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invitations SET status = 'revoked'").
		WithArgs("org-1", "b@y.com", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO invitations").
		WithArgs("inv-2", "org-1", "b@y.com", gen.RoleMember, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := NewPostgresRepository(mock).CreateSuperseding(context.Background(), &domain.Invitation{
		ID: "inv-2", OrgID: "org-1", Email: "b@y.com", Role: membershipdomain.RoleMember, CreatedAt: now,
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkExpiredAndRevoke(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectExec("UPDATE invitations SET status = 'expired'").
		WithArgs("inv-1", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("UPDATE invitations SET status = 'revoked'").
		WithArgs("inv-1", "org-1", &now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewPostgresRepository(mock)
	expired, err := repo.MarkExpired(context.Background(), "inv-1", now)
	require.NoError(t, err)
	assert.False(t, expired)
	revoked, err := repo.Revoke(context.Background(), "inv-1", "org-1", now)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func acceptFixture(now time.Time) (*domain.Invitation, *membershipdomain.Membership) {
	inv := &domain.Invitation{ID: "inv-1", OrgID: "org-1", Role: membershipdomain.RoleMember}
	m := &membershipdomain.Membership{ID: "m-9", UserID: "user-2", OrgID: "org-1", Role: membershipdomain.RoleMember, CreatedAt: now}
	return inv, m
}

func TestAccept_AllWritesInOneTransaction(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	inv, m := acceptFixture(now)
	userID := "user-2"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invitations SET status = 'accepted'").
		WithArgs("inv-1", &userID, &now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO memberships").
		WithArgs("m-9", "user-2", "org-1", gen.RoleMember, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec("UPDATE users").
		WithArgs("user-2", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	created, err := NewPostgresRepository(mock).Accept(context.Background(), inv, m, now)
	require.NoError(t, err)
	assert.False(t, created, "existing membership is kept")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccept_LostRace(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	inv, m := acceptFixture(now)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invitations SET status = 'accepted'").
		WithArgs("inv-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := NewPostgresRepository(mock).Accept(context.Background(), inv, m, now)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccept_ActivePointerFailureRollsBack(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	inv, m := acceptFixture(now)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invitations SET status = 'accepted'").
		WithArgs("inv-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO memberships").
		WithArgs("m-9", "user-2", "org-1", gen.RoleMember, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE users").
		WithArgs("user-2", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := NewPostgresRepository(mock).Accept(context.Background(), inv, m, now)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}
