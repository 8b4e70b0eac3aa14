package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/api/handler"
	"github.com/AlixRomain/P7-Web-Service/internal/api/metrics"
	"github.com/AlixRomain/P7-Web-Service/internal/api/middleware"
	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Lists every field violation of a ValidationError.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body := handler.ErrorResponse{Error: ve.Error()}
		for _, v := range ve.Violations {
			body.Violations = append(body.Violations, handler.Violation{Field: v.Field, Message: v.Message})
		}
		return http.StatusBadRequest, body
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: "JWT Token not found"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: "Invalid credentials."}
	case errors.Is(err, domain.ErrAdminMustTargetClient):
		metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
		return http.StatusForbidden, handler.ErrorResponse{Error: err.Error()}
	case errors.Is(err, middleware.ErrRoleDenied):
		metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
		return http.StatusForbidden, handler.ErrorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrForbidden):
		metrics.AccessDeniedTotal.WithLabelValues("ownership").Inc()
		return http.StatusForbidden, handler.ErrorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, handler.ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrClientHasUsers):
		return http.StatusConflict, handler.ErrorResponse{Error: err.Error()}
	case errors.Is(err, pagination.ErrInvalidLimit):
		return http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Error: "internal server error"}
}
