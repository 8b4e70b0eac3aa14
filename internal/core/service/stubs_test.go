package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

func page[T any](items []T, q ports.SearchQuery) []T {
	skip := q.Offset()
	if skip >= len(items) {
		return []T{}
	}
	end := skip + q.Limit
	if q.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func matches(field, keyword string) bool {
	return keyword == "" || strings.Contains(strings.ToLower(field), strings.ToLower(keyword))
}

type stubClientRepo struct {
	byID   map[int64]domain.Client
	nextID int64
	users  *stubUserRepo
}

func newStubClientRepo(users *stubUserRepo) *stubClientRepo {
	return &stubClientRepo{byID: make(map[int64]domain.Client), users: users}
}

func (r *stubClientRepo) Search(_ context.Context, q ports.SearchQuery) ([]domain.Client, int64, error) {
	var out []domain.Client
	for _, c := range r.byID {
		if matches(c.Name, q.Keyword) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if q.Descending() {
			return out[i].ID > out[j].ID
		}
		return out[i].ID < out[j].ID
	})
	return page(out, q), int64(len(out)), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	clone.Users = nil
	r.byID[c.ID] = clone
	return nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	clone := *c
	clone.Users = nil
	r.byID[c.ID] = clone
	return nil
}

func (r *stubClientRepo) Delete(ctx context.Context, id int64) error {
	if r.users != nil {
		if n, _ := r.users.CountByClient(ctx, id); n > 0 {
			return domain.ErrClientHasUsers
		}
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubMobileRepo struct {
	byID   map[int64]domain.Mobile
	nextID int64
	finds  int
}

func newStubMobileRepo() *stubMobileRepo {
	return &stubMobileRepo{byID: make(map[int64]domain.Mobile)}
}

func (r *stubMobileRepo) Search(_ context.Context, q ports.SearchQuery) ([]domain.Mobile, int64, error) {
	var out []domain.Mobile
	for _, m := range r.byID {
		if matches(m.Name, q.Keyword) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, q), int64(len(out)), nil
}

func (r *stubMobileRepo) FindByID(_ context.Context, id int64) (*domain.Mobile, error) {
	r.finds++
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMobileNotFound
	}
	return &m, nil
}

func (r *stubMobileRepo) Create(_ context.Context, m *domain.Mobile) error {
	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = *m
	return nil
}

func (r *stubMobileRepo) Update(_ context.Context, m *domain.Mobile) error {
	r.byID[m.ID] = *m
	return nil
}

func (r *stubMobileRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type stubMobileCache struct {
	byID map[int64]domain.Mobile
}

func newStubMobileCache() *stubMobileCache {
	return &stubMobileCache{byID: make(map[int64]domain.Mobile)}
}

func (c *stubMobileCache) Get(_ context.Context, id int64) (*domain.Mobile, bool, error) {
	m, ok := c.byID[id]
	if !ok {
		return nil, false, nil
	}
	return &m, true, nil
}

func (c *stubMobileCache) Set(_ context.Context, m *domain.Mobile) error {
	c.byID[m.ID] = *m
	return nil
}

func (c *stubMobileCache) Delete(_ context.Context, id int64) error {
	delete(c.byID, id)
	return nil
}

type stubUserRepo struct {
	byID   map[int64]domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]domain.User)}
}

func (r *stubUserRepo) Search(_ context.Context, q ports.SearchQuery) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.byID {
		if q.OwnerID != nil && !u.BelongsTo(*q.OwnerID) {
			continue
		}
		if matches(u.Fullname, q.Keyword) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, q), int64(len(out)), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByClient(_ context.Context, clientID int64) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.byID {
		if u.BelongsTo(clientID) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	users, _ := r.ListByClient(ctx, clientID)
	return int64(len(users)), nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	clone.Client = nil
	r.byID[u.ID] = clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	clone := *u
	clone.Client = nil
	r.byID[u.ID] = clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fixture struct {
	clients *stubClientRepo
	users   *stubUserRepo
	acme    domain.Client
	globex  domain.Client
	alice   domain.User // acme
	bob     domain.User // acme
	carol   domain.User // globex
	admin   domain.User // no client
}

func newFixture() *fixture {
	f := &fixture{users: newStubUserRepo()}
	f.clients = newStubClientRepo(f.users)
	ctx := context.Background()

	f.acme = domain.Client{Name: "Acme", Address: "1 Road Runner Lane"}
	_ = f.clients.Create(ctx, &f.acme)
	f.globex = domain.Client{Name: "Globex", Address: "42 Cypress Creek"}
	_ = f.clients.Create(ctx, &f.globex)

	mk := func(email, name string, role domain.Role, clientID *int64) domain.User {
		u := domain.User{Email: email, Fullname: name, Age: 30, Role: role, ClientID: clientID}
		_ = f.users.Create(ctx, &u)
		return u
	}
	f.alice = mk("alice@acme.test", "Alice Martin", domain.RoleUser, ptr(f.acme.ID))
	f.bob = mk("bob@acme.test", "Bob Durand", domain.RoleClient, ptr(f.acme.ID))
	f.carol = mk("carol@globex.test", "Carol Petit", domain.RoleUser, ptr(f.globex.ID))
	f.admin = mk("admin@bilemo.test", "Administrator", domain.RoleAdmin, nil)
	return f
}

func principalOf(u domain.User) domain.Principal {
	return domain.Principal{UserID: u.ID, Email: u.Email, Role: u.Role, ClientID: u.ClientID}
}
