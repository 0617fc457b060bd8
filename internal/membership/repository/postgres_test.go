package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/membership/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestListByUser_Ordered(t *testing.T) {
	mock := newMock(t)
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	mock.ExpectQuery("SELECT m.id, m.user_id").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "org_id", "role", "created_at", "org_name"}).
			AddRow("m-1", "user-1", "org-a", gen.RoleOwner, t1, "Acme").
			AddRow("m-2", "user-1", "org-b", gen.RoleMember, t2, "Beta"))

	ms, err := NewPostgresRepository(mock).ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "org-a", ms[0].OrgID)
	assert.Equal(t, domain.RoleOwner, ms[0].Role)
	assert.Equal(t, "Beta", ms[1].OrgName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserAndOrg_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id, user_id, org_id, role, created_at").
		WithArgs("user-1", "org-x").
		WillReturnError(pgx.ErrNoRows)

	m, err := NewPostgresRepository(mock).GetByUserAndOrg(context.Background(), "user-1", "org-x")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestCreate_Duplicate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("INSERT INTO memberships").
		WithArgs("m-1", "user-1", "org-a", gen.RoleOwner, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "memberships_user_org_key"})

	err := NewPostgresRepository(mock).Create(context.Background(), &domain.Membership{
		ID: "m-1", UserID: "user-1", OrgID: "org-a", Role: domain.RoleOwner, CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrDuplicateMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsent(t *testing.T) {
	testCases := []struct {
		name        string
		rows        int64
		wantCreated bool
	}{
		{"inserted", 1, true},
		{"already present", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec("INSERT INTO memberships").
				WithArgs(pgxmock.AnyArg(), "user-1", "org-a", gen.RoleMember, pgxmock.AnyArg()).
				WillReturnResult(pgxmock.NewResult("INSERT", tc.rows))

			created, err := NewPostgresRepository(mock).CreateIfAbsent(context.Background(), &domain.Membership{
				ID: "m-1", UserID: "user-1", OrgID: "org-a", Role: domain.RoleMember, CreatedAt: time.Now(),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
