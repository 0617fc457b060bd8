package server

import (
	"context"
	"sort"
	"sync"
	"time"

	auditdomain "contract-mgmt/backend/internal/audit/domain"
	invitationdomain "contract-mgmt/backend/internal/invitation/domain"
	invitationrepo "contract-mgmt/backend/internal/invitation/repository"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	organizationdomain "contract-mgmt/backend/internal/organization/domain"
	userdomain "contract-mgmt/backend/internal/user/domain"
	userrepo "contract-mgmt/backend/internal/user/repository"
)

// memDB stands in for Postgres in end-to-end tests. One lock covers every table, so the
// multi-row writes below are as atomic as their SQL transactions.
type memDB struct {
	mu          sync.Mutex
	seq         int
	users       map[string]*userdomain.User
	orgs        map[string]*organizationdomain.Organization
	memberships []*membershipdomain.Membership
	invitations map[string]*invitationdomain.Invitation
	audit       []*auditdomain.AuditLog
}

func newMemDB() *memDB {
	return &memDB{
		users:       map[string]*userdomain.User{},
		orgs:        map[string]*organizationdomain.Organization{},
		invitations: map[string]*invitationdomain.Invitation{},
	}
}

func (db *memDB) membership(userID, orgID string) *membershipdomain.Membership {
	for _, m := range db.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			return m
		}
	}
	return nil
}

func (db *memDB) insertMembership(m *membershipdomain.Membership) bool {
	if db.membership(m.UserID, m.OrgID) != nil {
		return false
	}
	db.seq++
	c := *m
	c.CreatedAt = c.CreatedAt.Add(time.Duration(db.seq))
	db.memberships = append(db.memberships, &c)
	return true
}

type memUsers struct{ db *memDB }

func (r memUsers) GetByID(_ context.Context, id string) (*userdomain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r memUsers) GetBySubject(_ context.Context, subject string) (*userdomain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Subject == subject {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r memUsers) Create(_ context.Context, u *userdomain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Subject == u.Subject {
			return userrepo.ErrDuplicateSubject
		}
	}
	c := *u
	r.db.users[u.ID] = &c
	return nil
}

func (r memUsers) UpdateEmail(_ context.Context, id, email string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[id]; ok {
		u.Email = email
	}
	return nil
}

func (r memUsers) UpdateProfile(_ context.Context, u *userdomain.User) (*userdomain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored, ok := r.db.users[u.ID]
	if !ok {
		return nil, nil
	}
	stored.Name, stored.Phone, stored.Locale, stored.Bio, stored.Address = u.Name, u.Phone, u.Locale, u.Bio, u.Address
	c := *stored
	return &c, nil
}

func (r memUsers) SetActiveOrganization(_ context.Context, userID, orgID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[userID]; ok {
		u.ActiveOrgID = orgID
	}
	return nil
}

type memMemberships struct{ db *memDB }

func (r memMemberships) ListByUser(_ context.Context, userID string) ([]*membershipdomain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*membershipdomain.Membership
	for _, m := range r.db.memberships {
		if m.UserID == userID {
			c := *m
			if o, ok := r.db.orgs[m.OrgID]; ok {
				c.OrgName = o.Name
			}
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memMemberships) GetByUserAndOrg(_ context.Context, userID, orgID string) (*membershipdomain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if m := r.db.membership(userID, orgID); m != nil {
		c := *m
		return &c, nil
	}
	return nil, nil
}

func (r memMemberships) Create(_ context.Context, m *membershipdomain.Membership) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.insertMembership(m) {
		return membershiprepo.ErrDuplicateMembership
	}
	return nil
}

func (r memMemberships) CreateIfAbsent(_ context.Context, m *membershipdomain.Membership) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.insertMembership(m), nil
}

type memOrgs struct{ db *memDB }

func (r memOrgs) GetByID(_ context.Context, id string) (*organizationdomain.Organization, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o, ok := r.db.orgs[id]; ok {
		c := *o
		return &c, nil
	}
	return nil, nil
}

func (r memOrgs) CreateWithOwner(_ context.Context, o *organizationdomain.Organization, owner *membershipdomain.Membership) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := *o
	r.db.orgs[o.ID] = &c
	if !r.db.insertMembership(owner) {
		delete(r.db.orgs, o.ID)
		return membershiprepo.ErrDuplicateMembership
	}
	if u, ok := r.db.users[owner.UserID]; ok {
		u.ActiveOrgID = o.ID
	}
	return nil
}

func (r memOrgs) Update(_ context.Context, o *organizationdomain.Organization) (*organizationdomain.Organization, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.orgs[o.ID]; !ok {
		return nil, nil
	}
	c := *o
	r.db.orgs[o.ID] = &c
	out := c
	return &out, nil
}

type memInvitations struct{ db *memDB }

func (r memInvitations) GetByID(_ context.Context, id string) (*invitationdomain.Invitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if inv, ok := r.db.invitations[id]; ok {
		c := *inv
		return &c, nil
	}
	return nil, nil
}

func (r memInvitations) GetByTokenHash(_ context.Context, hash string) (*invitationdomain.Invitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inv := range r.db.invitations {
		if inv.TokenHash == hash {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

func (r memInvitations) ListByOrg(_ context.Context, orgID string) ([]*invitationdomain.Invitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*invitationdomain.Invitation
	for _, inv := range r.db.invitations {
		if inv.OrgID == orgID {
			c := *inv
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memInvitations) CreateSuperseding(_ context.Context, inv *invitationdomain.Invitation) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, old := range r.db.invitations {
		if old.OrgID == inv.OrgID && old.Email == inv.Email && old.Status == invitationdomain.StatusPending {
			old.Status = invitationdomain.StatusRevoked
			at := inv.CreatedAt
			old.RevokedAt = &at
			n++
		}
	}
	c := *inv
	r.db.invitations[inv.ID] = &c
	return n, nil
}

func (r memInvitations) MarkExpired(_ context.Context, id string, now time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.invitations[id]
	if !ok || !inv.DueToExpire(now) {
		return false, nil
	}
	inv.Status = invitationdomain.StatusExpired
	return true, nil
}

func (r memInvitations) Revoke(_ context.Context, id, orgID string, now time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.invitations[id]
	if !ok || inv.OrgID != orgID || inv.Status != invitationdomain.StatusPending || now.After(inv.ExpiresAt) {
		return false, nil
	}
	inv.Status = invitationdomain.StatusRevoked
	inv.RevokedAt = &now
	return true, nil
}

func (r memInvitations) Accept(_ context.Context, in *invitationdomain.Invitation, m *membershipdomain.Membership, now time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.invitations[in.ID]
	if !ok || inv.Status != invitationdomain.StatusPending || now.After(inv.ExpiresAt) {
		return false, invitationrepo.ErrNotPending
	}
	inv.Status = invitationdomain.StatusAccepted
	inv.AcceptedByUserID = m.UserID
	inv.AcceptedAt = &now
	created := r.db.insertMembership(m)
	if u, ok := r.db.users[m.UserID]; ok {
		u.ActiveOrgID = inv.OrgID
	}
	return created, nil
}

type memAudit struct{ db *memDB }

func (r memAudit) Create(_ context.Context, a *auditdomain.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := *a
	r.db.audit = append(r.db.audit, &c)
	return nil
}

func (r memAudit) ListByOrg(_ context.Context, orgID string, limit, offset int32) ([]*auditdomain.AuditLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*auditdomain.AuditLog
	for i := len(r.db.audit) - 1; i >= 0; i-- {
		if r.db.audit[i].OrgID == orgID {
			c := *r.db.audit[i]
			out = append(out, &c)
		}
	}
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}
