package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"contract-mgmt/backend/internal/db"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", Up)
	if err == nil {
		t.Fatal("Run with empty DSN should return error")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL is not set") {
		t.Errorf("error = %q, want DATABASE_URL hint", err.Error())
	}
}

func TestParseDirection(t *testing.T) {
	for _, ok := range []string{"up", "down"} {
		if _, err := ParseDirection(ok); err != nil {
			t.Errorf("ParseDirection(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "UP", "Up", "sideways", "both"} {
		if _, err := ParseDirection(bad); err == nil {
			t.Errorf("ParseDirection(%q) should fail", bad)
		}
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	err := Run("postgres://localhost/test", Direction("left"))
	if err == nil {
		t.Fatal("Run with invalid direction should fail")
	}
	if !strings.Contains(err.Error(), "direction") {
		t.Errorf("error = %q, want direction error", err.Error())
	}
}

func TestRun_InvalidDSN(t *testing.T) {
	for _, dsn := range []string{"invalid-dsn", "://localhost/test", "postgres://localhost with spaces/test"} {
		if err := Run(dsn, Up); err == nil {
			t.Errorf("Run(%q) should fail", dsn)
		}
	}
}

func TestMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(db.MigrationFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestMigrations_DeclareTenantIndexes(t *testing.T) {
	b, err := fs.ReadFile(db.MigrationFS, "migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("read init migration: %v", err)
	}
	sql := string(b)
	for _, want := range []string{
		"users_subject_key ON users (subject)",
		"memberships_user_org_key ON memberships (user_id, org_id)",
		"invitations_token_hash_key ON invitations (token_hash)",
		"invitations_org_email_status_idx ON invitations (org_id, email, status)",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("init migration missing %q", want)
		}
	}
}
