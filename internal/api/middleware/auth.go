package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

const principalKey = "principal"

// Auth validates the bearer token, reloads the account it names and places
// the caller's domain.Principal on the context. Role and client come from
// the stored account, so a deleted or moved user loses access immediately.
func Auth(jwtSecret string, users ports.CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "JWT Token not found")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid JWT Token")
			}

			id, err := subjectID(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid JWT Token")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if errors.Is(err, domain.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid JWT Token")
			}
			if err != nil {
				return err
			}
			if !user.Role.Valid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid JWT Token")
			}

			c.Set(principalKey, domain.Principal{
				UserID:   user.ID,
				Email:    user.Email,
				Role:     user.Role,
				ClientID: user.ClientID,
			})

			return next(c)
		}
	}
}

// PrincipalFrom returns the caller stored by Auth.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// WithPrincipal stores p on the context as Auth would.
func WithPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

func subjectID(claims jwt.MapClaims) (int64, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("non-positive subject")
	}
	return id, nil
}
