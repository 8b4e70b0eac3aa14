package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

// ErrRoleDenied is a domain.ErrForbidden raised by RequireRole.
var ErrRoleDenied = fmt.Errorf("%w: insufficient role", domain.ErrForbidden)

// RequireRole lets the request through when the caller's effective role
// grants required. It must run after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !p.HasRole(required) {
				return ErrRoleDenied
			}
			return next(c)
		}
	}
}
