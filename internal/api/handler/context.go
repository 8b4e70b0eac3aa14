package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/api/middleware"
	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// ctxPrincipal returns the caller injected by the Auth middleware. Its
// absence means the route was registered without Auth; answer 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}

// pathID parses a numeric path parameter. Non-numeric ids match no resource.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return id, nil
}

// listQuery parses the pagination query string with the route's defaults.
func listQuery(c echo.Context, d pagination.Defaults) (pagination.Params, ports.SearchQuery, error) {
	p, err := pagination.ParseParams(c.QueryParams(), d)
	if err != nil {
		return pagination.Params{}, ports.SearchQuery{}, err
	}
	return p, ports.NewSearchQuery(p), nil
}

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "The JSON sent is malformed.")
	}
	return c.Validate(req)
}
