package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/api/metrics"
	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// UserHandler handles HTTP requests for client users.
type UserHandler struct {
	service ports.UserService
	page    pagination.Defaults
}

func NewUserHandler(service ports.UserService, page pagination.Defaults) *UserHandler {
	return &UserHandler{service: service, page: page}
}

// List handles GET /api/users: the caller's colleagues, or every user for an
// administrator without a client.
//
// @Summary      List users of the caller's client
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Substring of the full name"
// @Param        order    query     string  false  "asc or desc"
// @Param        limit    query     int     false  "Page size"
// @Param        page     query     int     false  "Page number"
// @Success      200      {object}  pagination.Envelope[userResponse]
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	p, q, err := listQuery(c, h.page)
	if err != nil {
		return err
	}

	items, total, err := h.service.List(c.Request().Context(), principal, q)
	if err != nil {
		return err
	}

	env, err := pagination.Paginate(p, mapAll(c, items, toUserResponse), total, listLinker(c, RouteUserList))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// ListByClient handles GET /api/admin/users-customer/:id.
//
// @Summary      List users of a client (admin)
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int     true   "Client id"
// @Param        keyword  query     string  false  "Substring of the full name"
// @Param        order    query     string  false  "asc or desc"
// @Param        limit    query     int     false  "Page size"
// @Param        page     query     int     false  "Page number"
// @Success      200      {object}  pagination.Envelope[userResponse]
// @Failure      404      {object}  ErrorResponse
// @Router       /api/admin/users-customer/{id} [get]
func (h *UserHandler) ListByClient(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, q, err := listQuery(c, h.page)
	if err != nil {
		return err
	}

	items, total, err := h.service.ListByClient(c.Request().Context(), clientID, q)
	if err != nil {
		return err
	}

	env, err := pagination.Paginate(p, mapAll(c, items, toUserResponse), total, listLinker(c, RouteUserListAdmin, clientID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Show handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	u, err := h.service.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(c, *u))
}

// Create handles POST /api/user: the new user joins the caller's client.
//
// @Summary      Add a user to the caller's client
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	// Refuse administrators before looking at the payload.
	if principal.IsAdmin() {
		return domain.ErrAdminMustTargetClient
	}

	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.Create(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return err
	}
	return h.created(c, u)
}

// CreateForClient handles POST /api/admin/user/:id.
//
// @Summary      Add a user to a client (admin)
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Client id"
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/admin/user/{id} [post]
func (h *UserHandler) CreateForClient(c echo.Context) error {
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.CreateForClient(c.Request().Context(), clientID, req.toInput())
	if err != nil {
		return err
	}
	return h.created(c, u)
}

func (h *UserHandler) created(c echo.Context, u *domain.User) error {
	metrics.ResourcesCreatedTotal.WithLabelValues("user").Inc()
	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RouteUserShow, u.ID))
	return c.JSON(http.StatusCreated, toUserResponse(c, *u))
}

// Update handles PUT /api/user/:id.
//
// @Summary      Update a user
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.Update(c.Request().Context(), principal, id, req.toPatch())
	if err != nil {
		return err
	}
	metrics.ResourcesUpdatedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusOK, toUserResponse(c, *u))
}

// Delete handles DELETE /api/user/:id. Nobody can delete their own account.
//
// @Summary      Delete a user
// @Tags         User
// @Security     BearerAuth
// @Param        id   path  int  true  "User id"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	metrics.ResourcesDeletedTotal.WithLabelValues("user").Inc()
	return c.NoContent(http.StatusNoContent)
}
