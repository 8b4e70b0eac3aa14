package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

func TestClientService_Get_OwnClientLoadsUsers(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)

	c, err := svc.Get(context.Background(), principalOf(f.alice), f.acme.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(c.Users))
	}
}

func TestClientService_Get_OtherClientForbidden(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)

	_, err := svc.Get(context.Background(), principalOf(f.alice), f.globex.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClientService_Get_MissingIsNotFoundBeforeForbidden(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)

	_, err := svc.Get(context.Background(), principalOf(f.alice), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientService_Get_AdminSeesAnyClient(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)

	if _, err := svc.Get(context.Background(), principalOf(f.admin), f.globex.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientService_Update_AppliesOnlyPresentFields(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)
	ctx := context.Background()

	patch := domain.ClientPatch{Name: ptr("Acme Corp")}
	first, err := svc.Update(ctx, principalOf(f.alice), f.acme.ID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Name != "Acme Corp" || first.Address != f.acme.Address {
		t.Fatalf("unexpected client after patch: %+v", first)
	}

	second, err := svc.Update(ctx, principalOf(f.alice), f.acme.ID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Name != first.Name || second.Address != first.Address {
		t.Fatalf("patch is not idempotent: %+v vs %+v", first, second)
	}
}

func TestClientService_Update_ForbiddenLeavesStoreUnchanged(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)
	ctx := context.Background()

	_, err := svc.Update(ctx, principalOf(f.carol), f.acme.ID, domain.ClientPatch{Name: ptr("Hacked")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	stored, _ := f.clients.FindByID(ctx, f.acme.ID)
	if stored.Name != "Acme" {
		t.Fatalf("store mutated: %+v", stored)
	}
}

func TestClientService_Delete(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)
	ctx := context.Background()

	if err := svc.Delete(ctx, f.acme.ID); !errors.Is(err, domain.ErrClientHasUsers) {
		t.Fatalf("expected ErrClientHasUsers, got %v", err)
	}

	empty := domain.Client{Name: "Initech", Address: "Somewhere"}
	_ = svc.Create(ctx, &empty)
	if err := svc.Delete(ctx, empty.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.clients.FindByID(ctx, empty.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected client to be gone, got %v", err)
	}
	if err := svc.Delete(ctx, empty.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClientService_List_Keyword(t *testing.T) {
	f := newFixture()
	svc := NewClientService(f.clients, f.users, discardLogger)

	items, total, err := svc.List(context.Background(), ports.SearchQuery{Keyword: "glob", Order: "asc", Limit: 15, Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Globex" {
		t.Fatalf("unexpected result: %d %+v", total, items)
	}
}
