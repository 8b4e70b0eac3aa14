package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

func seedMobiles(t *testing.T, svc *MobileService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m := &domain.Mobile{Name: "Phone", Description: "A phone", Price: decimal.NewFromInt(int64(100 + i))}
		if err := svc.Create(context.Background(), m); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestMobileService_List_PageSizes(t *testing.T) {
	svc := NewMobileService(newStubMobileRepo(), nil, discardLogger)
	seedMobiles(t, svc, 23)

	cases := []struct {
		page int
		want int
	}{{1, 5}, {4, 5}, {5, 3}, {6, 0}}
	for _, tc := range cases {
		items, total, err := svc.List(context.Background(), ports.SearchQuery{Order: "asc", Limit: 5, Page: tc.page})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 23 {
			t.Errorf("expected total 23, got %d", total)
		}
		if len(items) != tc.want {
			t.Errorf("page %d: expected %d items, got %d", tc.page, tc.want, len(items))
		}
	}
}

func TestMobileService_Update_PriceOnly(t *testing.T) {
	svc := NewMobileService(newStubMobileRepo(), nil, discardLogger)
	m := &domain.Mobile{Name: "X1", Description: "desc", Price: decimal.RequireFromString("499.99")}
	_ = svc.Create(context.Background(), m)

	price := decimal.RequireFromString("449.99")
	updated, err := svc.Update(context.Background(), m.ID, domain.MobilePatch{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Price.Equal(price) || updated.Name != "X1" || updated.Description != "desc" {
		t.Fatalf("unexpected mobile: %+v", updated)
	}
}

func TestMobileService_Get_ReadsThroughCache(t *testing.T) {
	repo := newStubMobileRepo()
	cache := newStubMobileCache()
	svc := NewMobileService(repo, cache, discardLogger)
	m := &domain.Mobile{Name: "X1", Price: decimal.NewFromInt(10)}
	_ = svc.Create(context.Background(), m)

	for i := 0; i < 3; i++ {
		if _, err := svc.Get(context.Background(), m.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.finds != 1 {
		t.Fatalf("expected 1 store lookup, got %d", repo.finds)
	}
}

func TestMobileService_Update_EvictsCache(t *testing.T) {
	repo := newStubMobileRepo()
	cache := newStubMobileCache()
	svc := NewMobileService(repo, cache, discardLogger)
	ctx := context.Background()
	m := &domain.Mobile{Name: "X1", Price: decimal.NewFromInt(10)}
	_ = svc.Create(ctx, m)
	_, _ = svc.Get(ctx, m.ID)

	price := decimal.NewFromInt(8)
	if _, err := svc.Update(ctx, m.ID, domain.MobilePatch{Price: &price}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Price.Equal(price) {
		t.Fatalf("stale cached price %s", got.Price)
	}
}

func TestMobileService_Delete(t *testing.T) {
	cache := newStubMobileCache()
	svc := NewMobileService(newStubMobileRepo(), cache, discardLogger)
	ctx := context.Background()
	m := &domain.Mobile{Name: "X1", Price: decimal.NewFromInt(10)}
	_ = svc.Create(ctx, m)
	_, _ = svc.Get(ctx, m.ID)

	if err := svc.Delete(ctx, m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, m.ID); !errors.Is(err, domain.ErrMobileNotFound) {
		t.Fatalf("expected ErrMobileNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
