package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/telemetry"
	"contract-mgmt/backend/internal/user/domain"
	"contract-mgmt/backend/internal/user/repository"
)

// memUserRepo enforces subject uniqueness the way the database index does.
type memUserRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.User
	bySubject map[string]string
	creates   int
	getErr    error
	// hideOnce makes the first GetBySubject miss, to simulate losing the insert race.
	hideOnce bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*domain.User{}, bySubject: map[string]string{}}
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if u, ok := m.byID[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetBySubject(_ context.Context, subject string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.hideOnce {
		m.hideOnce = false
		return nil, nil
	}
	id, ok := m.bySubject[subject]
	if !ok {
		return nil, nil
	}
	c := *m.byID[id]
	return &c, nil
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySubject[u.Subject]; ok {
		return repository.ErrDuplicateSubject
	}
	c := *u
	m.byID[u.ID] = &c
	m.bySubject[u.Subject] = u.ID
	m.creates++
	return nil
}

func (m *memUserRepo) UpdateEmail(_ context.Context, id, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.Email = email
	}
	return nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return nil, nil
	}
	c := *u
	m.byID[u.ID] = &c
	return &c, nil
}

func (m *memUserRepo) SetActiveOrganization(_ context.Context, userID, orgID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[userID]; ok {
		u.ActiveOrgID = orgID
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []telemetry.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e telemetry.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func TestResolveUser_CreatesOnFirstSight(t *testing.T) {
	repo := newMemUserRepo()
	pub := &recordingPublisher{}
	d := NewDirectory(repo, pub, nil)

	u, err := d.ResolveUser(context.Background(), "sub-1", " A@X.com ")
	if err != nil {
		t.Fatalf("ResolveUser: %v", err)
	}
	if u.Subject != "sub-1" || u.Email != "a@x.com" {
		t.Errorf("user = %+v", u)
	}
	if u.HasActiveOrg() {
		t.Error("new user must start without an active organization")
	}
	if len(pub.events) != 1 || pub.events[0].EventType != telemetry.EventUserCreated {
		t.Errorf("events = %+v", pub.events)
	}

	again, err := d.ResolveUser(context.Background(), "sub-1", "a@x.com")
	if err != nil {
		t.Fatalf("ResolveUser again: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("second resolve id = %s, want %s", again.ID, u.ID)
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestResolveUser_ConcurrentFirstRequestsYieldOneUser(t *testing.T) {
	repo := newMemUserRepo()
	d := NewDirectory(repo, nil, nil)

	const n = 32
	ids := make([]string, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			u, err := d.ResolveUser(context.Background(), "sub-race", "r@x.com")
			if err != nil {
				return err
			}
			ids[i] = u.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("ResolveUser: %v", err)
	}
	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("got distinct ids %s and %s", ids[0], id)
		}
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestResolveUser_LostInsertRaceRereads(t *testing.T) {
	repo := newMemUserRepo()
	d := NewDirectory(repo, nil, nil)
	first, err := d.ResolveUser(context.Background(), "sub-1", "a@x.com")
	if err != nil {
		t.Fatalf("ResolveUser: %v", err)
	}

	repo.hideOnce = true
	second, err := d.ResolveUser(context.Background(), "sub-1", "new@x.com")
	if err != nil {
		t.Fatalf("ResolveUser after conflict: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("id = %s, want %s", second.ID, first.ID)
	}
	if second.Email != "new@x.com" {
		t.Errorf("email = %s, want synced", second.Email)
	}
}

func TestResolveUser_SyncsChangedEmail(t *testing.T) {
	repo := newMemUserRepo()
	d := NewDirectory(repo, nil, nil)
	u, _ := d.ResolveUser(context.Background(), "sub-1", "old@x.com")

	got, err := d.ResolveUser(context.Background(), "sub-1", "New@X.com")
	if err != nil {
		t.Fatalf("ResolveUser: %v", err)
	}
	if got.Email != "new@x.com" {
		t.Errorf("returned email = %q", got.Email)
	}
	stored, _ := repo.GetByID(context.Background(), u.ID)
	if stored.Email != "new@x.com" {
		t.Errorf("stored email = %q", stored.Email)
	}
}

func TestResolveUser_Errors(t *testing.T) {
	d := NewDirectory(newMemUserRepo(), nil, nil)
	if _, err := d.ResolveUser(context.Background(), "", "a@x.com"); !errors.Is(err, apperr.ErrMissingSubject) {
		t.Errorf("empty subject err = %v", err)
	}
	if _, err := d.ResolveUser(context.Background(), "sub", "  "); !errors.Is(err, apperr.ErrMissingEmail) {
		t.Errorf("empty email err = %v", err)
	}

	repo := newMemUserRepo()
	repo.getErr = errors.New("connection reset")
	_, err := NewDirectory(repo, nil, nil).ResolveUser(context.Background(), "sub", "a@x.com")
	if !errors.Is(err, apperr.ErrStorage) {
		t.Errorf("storage failure err = %v, want Storage", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMemUserRepo()
	d := NewDirectory(repo, nil, nil)
	u, _ := d.ResolveUser(context.Background(), "sub-1", "a@x.com")

	name := " Ada "
	got, err := d.UpdateProfile(context.Background(), u.ID, domain.ProfilePatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != "Ada" || got.Email != "a@x.com" {
		t.Errorf("user = %+v", got)
	}

	if _, err := d.UpdateProfile(context.Background(), "missing", domain.ProfilePatch{Name: &name}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing user err = %v", err)
	}
}
