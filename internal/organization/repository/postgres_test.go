package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-mgmt/backend/internal/db/sqlc/gen"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	"contract-mgmt/backend/internal/organization/domain"
)

var orgColumns = []string{"id", "name", "contact_email", "phone", "address", "website", "logo_url", "brand_color", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestGetByID(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	logo := "https://cdn.test/acme.png"
	mock.ExpectQuery("SELECT id, name, contact_email").
		WithArgs("org-1").
		WillReturnRows(pgxmock.NewRows(orgColumns).
			AddRow("org-1", "Acme", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), &logo, (*string)(nil), now, now))

	o, err := NewPostgresRepository(mock).GetByID(context.Background(), "org-1")
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, "Acme", o.Name)
	assert.Equal(t, logo, o.LogoURL)
	assert.Empty(t, o.ContactEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id, name, contact_email").WithArgs("nope").WillReturnError(pgx.ErrNoRows)

	o, err := NewPostgresRepository(mock).GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func owner(now time.Time) *membershipdomain.Membership {
	return &membershipdomain.Membership{ID: "m-1", UserID: "user-1", OrgID: "org-1", Role: membershipdomain.RoleOwner, CreatedAt: now}
}

func TestCreateWithOwner_CommitsAllThree(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	o := &domain.Organization{ID: "org-1", Name: "Acme", CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO organizations").
		WithArgs("org-1", "Acme", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), now, now).
		WillReturnRows(pgxmock.NewRows(orgColumns).
			AddRow("org-1", "Acme", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), now, now))
	mock.ExpectQuery("INSERT INTO memberships").
		WithArgs("m-1", "user-1", "org-1", gen.RoleOwner, now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "org_id", "role", "created_at"}).
			AddRow("m-1", "user-1", "org-1", gen.RoleOwner, now))
	mock.ExpectExec("UPDATE users").
		WithArgs("user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	require.NoError(t, NewPostgresRepository(mock).CreateWithOwner(context.Background(), o, owner(now)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithOwner_RollsBackOnMembershipFailure(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	o := &domain.Organization{ID: "org-1", Name: "Acme", CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO organizations").
		WithArgs("org-1", "Acme", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(orgColumns).
			AddRow("org-1", "Acme", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), now, now))
	mock.ExpectQuery("INSERT INTO memberships").
		WithArgs("m-1", "user-1", "org-1", gen.RoleOwner, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := NewPostgresRepository(mock).CreateWithOwner(context.Background(), o, owner(now))
	assert.ErrorIs(t, err, membershiprepo.ErrDuplicateMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithOwner_BeginFails(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := NewPostgresRepository(mock).CreateWithOwner(context.Background(), &domain.Organization{ID: "org-1", Name: "Acme"}, owner(time.Now()))
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := NewPostgresRepository(mock)
	repo.now = func() time.Time { return now }
	email := "billing@acme.test"

	mock.ExpectQuery("UPDATE organizations").
		WithArgs("org-1", "Acme Corp", &email, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), now).
		WillReturnRows(pgxmock.NewRows(orgColumns).
			AddRow("org-1", "Acme Corp", &email, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), now.Add(-time.Hour), now))

	o, err := repo.Update(context.Background(), &domain.Organization{ID: "org-1", Name: "Acme Corp", ContactEmail: email})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", o.Name)
	assert.Equal(t, email, o.ContactEmail)
	assert.Equal(t, now, o.UpdatedAt)
}

func TestUpdate_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE organizations").
		WithArgs("gone", "Gone", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	o, err := NewPostgresRepository(mock).Update(context.Background(), &domain.Organization{ID: "gone", Name: "Gone"})
	require.NoError(t, err)
	assert.Nil(t, o)
	assert.NoError(t, mock.ExpectationsWereMet())
}
