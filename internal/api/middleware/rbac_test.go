package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

func runRBAC(t *testing.T, required domain.Role, p *domain.Principal) (bool, error) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if p != nil {
		WithPrincipal(c, *p)
	}

	called := false
	err := RequireRole(required)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestRequireRole_ClientCountsAsUser(t *testing.T) {
	called, err := runRBAC(t, domain.RoleUser, &domain.Principal{UserID: 2, Role: domain.RoleClient})
	if err != nil || !called {
		t.Fatalf("expected pass, got called=%v err=%v", called, err)
	}
}

func TestRequireRole_AdminPasses(t *testing.T) {
	called, err := runRBAC(t, domain.RoleAdmin, &domain.Principal{UserID: 1, Role: domain.RoleAdmin})
	if err != nil || !called {
		t.Fatalf("expected pass, got called=%v err=%v", called, err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	called, err := runRBAC(t, domain.RoleAdmin, &domain.Principal{UserID: 2, Role: domain.RoleUser})
	if called {
		t.Fatalf("should not reach next handler")
	}
	if !errors.Is(err, ErrRoleDenied) || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrRoleDenied, got %v", err)
	}
}

func TestRequireRole_WithoutPrincipal(t *testing.T) {
	called, err := runRBAC(t, domain.RoleUser, nil)
	if called || !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got called=%v err=%v", called, err)
	}
}
