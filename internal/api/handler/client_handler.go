package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/api/metrics"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	service ports.ClientService
	page    pagination.Defaults
}

func NewClientHandler(service ports.ClientService, page pagination.Defaults) *ClientHandler {
	return &ClientHandler{service: service, page: page}
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Substring of the client name"
// @Param        order    query     string  false  "asc or desc"
// @Param        limit    query     int     false  "Page size"
// @Param        page     query     int     false  "Page number"
// @Success      200      {object}  pagination.Envelope[clientResponse]
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	p, q, err := listQuery(c, h.page)
	if err != nil {
		return err
	}

	items, total, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	env, err := pagination.Paginate(p, mapAll(c, items, toClientResponse), total, listLinker(c, RouteClientList))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Show handles GET /api/clients/:id.
//
// @Summary      Get a client with its users
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  clientDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Show(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientDetailResponse(c, client))
}

// Item handles GET /api/client/:id, the Location target of a created client.
//
// @Summary      Get a client
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/client/{id} [get]
func (h *ClientHandler) Item(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(c, *client))
}

// Create handles POST /api/admin/client.
//
// @Summary      Create a client
// @Tags         Client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/admin/client [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client := req.toDomain()
	if err := h.service.Create(c.Request().Context(), client); err != nil {
		return err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("client").Inc()

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RouteClientItem, client.ID))
	return c.JSON(http.StatusCreated, toClientResponse(c, *client))
}

// Update handles PUT /api/client/:id. Only the fields present in the body
// are changed.
//
// @Summary      Update a client
// @Tags         Client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/client/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.service.Update(c.Request().Context(), p, id, req.toPatch())
	if err != nil {
		return err
	}
	metrics.ResourcesUpdatedTotal.WithLabelValues("client").Inc()
	return c.JSON(http.StatusOK, toClientResponse(c, *client))
}

// Delete handles DELETE /api/admin/client/:id.
//
// @Summary      Delete a client
// @Tags         Client
// @Security     BearerAuth
// @Param        id   path  int  true  "Client id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /api/admin/client/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourcesDeletedTotal.WithLabelValues("client").Inc()
	return c.NoContent(http.StatusNoContent)
}
