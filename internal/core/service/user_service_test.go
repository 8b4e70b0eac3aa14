package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

func newUserService(f *fixture) *UserService {
	return NewUserService(f.users, f.clients, bcrypt.MinCost, discardLogger)
}

var firstPage = ports.SearchQuery{Order: "asc", Limit: 5, Page: 1}

func TestUserService_List_ScopedToOwnClient(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	users, total, err := svc.List(context.Background(), principalOf(f.alice), firstPage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 users, got %d", total)
	}
	for _, u := range users {
		if !u.BelongsTo(f.acme.ID) {
			t.Errorf("leaked user %d from another client", u.ID)
		}
		if u.Client == nil || u.Client.Name != "Acme" {
			t.Errorf("client not attached on user %d", u.ID)
		}
	}
}

func TestUserService_List_AdminWithoutClientSeesAll(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, total, err := svc.List(context.Background(), principalOf(f.admin), firstPage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 users, got %d", total)
	}
}

func TestUserService_List_NoClientForbidden(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, _, err := svc.List(context.Background(), domain.Principal{UserID: 99, Role: domain.RoleUser}, firstPage)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_ListByClient(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, total, err := svc.ListByClient(context.Background(), f.globex.ID, firstPage)
	if err != nil || total != 1 {
		t.Fatalf("expected 1 globex user, got %d (%v)", total, err)
	}
	if _, _, err := svc.ListByClient(context.Background(), 404, firstPage); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestUserService_Get_CrossClientForbidden(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	if _, err := svc.Get(context.Background(), principalOf(f.alice), f.carol.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), principalOf(f.alice), f.bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserService_Get_TwoClientlessUsersAreNotColleagues(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)
	loner := domain.User{Email: "loner@x.test", Fullname: "Lone Ranger", Role: domain.RoleUser}
	_ = f.users.Create(context.Background(), &loner)

	other := domain.Principal{UserID: 1234, Role: domain.RoleUser}
	if _, err := svc.Get(context.Background(), other, loner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Create_AttachesCallerClient(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	u, err := svc.Create(context.Background(), principalOf(f.alice), ports.NewUserInput{
		Email: "Dave@Acme.test", Password: "OpenClass21!", Fullname: "Dave Moreau", Age: 41,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.BelongsTo(f.acme.ID) || u.Client == nil {
		t.Fatalf("user not attached to caller client: %+v", u)
	}
	if u.Email != "dave@acme.test" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("OpenClass21!")) != nil {
		t.Error("password not hashed with bcrypt")
	}
	if got := u.Roles(); len(got) != 2 || got[0] != "ROLE_USER" {
		t.Errorf("unexpected roles %v", got)
	}
}

func TestUserService_Create_AdminRefused(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, err := svc.Create(context.Background(), principalOf(f.admin), ports.NewUserInput{Email: "x@y.test", Password: "Aa1!aaaa", Fullname: "Xavier", Age: 20})
	if !errors.Is(err, domain.ErrAdminMustTargetClient) || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrAdminMustTargetClient, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, err := svc.CreateForClient(context.Background(), f.globex.ID, ports.NewUserInput{Email: f.alice.Email, Password: "Aa1!aaaa", Fullname: "Alias", Age: 20})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_Idempotent(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)
	ctx := context.Background()
	patch := domain.UserPatch{Age: ptr(33)}

	first, err := svc.Update(ctx, principalOf(f.alice), f.bob.ID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := svc.Update(ctx, principalOf(f.alice), f.bob.ID, patch)
	if first.Age != 33 || second.Age != 33 || second.Fullname != f.bob.Fullname || second.Email != f.bob.Email {
		t.Fatalf("unexpected user after patches: %+v", second)
	}
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)
	ctx := context.Background()

	if err := svc.Delete(ctx, principalOf(f.alice), f.alice.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, principalOf(f.admin), f.admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin self delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, principalOf(f.alice), f.carol.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross-client delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, principalOf(f.alice), f.bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, principalOf(f.alice), f.bob.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
