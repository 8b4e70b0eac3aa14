package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/api/metrics"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// MobileHandler handles HTTP requests for the mobile catalog.
type MobileHandler struct {
	service ports.MobileService
	page    pagination.Defaults
}

func NewMobileHandler(service ports.MobileService, page pagination.Defaults) *MobileHandler {
	return &MobileHandler{service: service, page: page}
}

// List handles GET /api/mobiles.
//
// @Summary      List mobiles
// @Tags         Mobile
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Substring of the mobile name"
// @Param        order    query     string  false  "asc or desc"
// @Param        limit    query     int     false  "Page size"
// @Param        page     query     int     false  "Page number"
// @Success      200      {object}  pagination.Envelope[mobileResponse]
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /api/mobiles [get]
func (h *MobileHandler) List(c echo.Context) error {
	p, q, err := listQuery(c, h.page)
	if err != nil {
		return err
	}

	items, total, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	env, err := pagination.Paginate(p, mapAll(c, items, toMobileResponse), total, listLinker(c, RouteMobileList))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env)
}

// Show handles GET /api/mobiles/:id.
//
// @Summary      Get a mobile
// @Tags         Mobile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Mobile id"
// @Success      200  {object}  mobileResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/mobiles/{id} [get]
func (h *MobileHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMobileResponse(c, *m))
}

// Create handles POST /api/admin/mobile.
//
// @Summary      Create a mobile
// @Tags         Mobile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMobileRequest  true  "Mobile"
// @Success      201   {object}  mobileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/admin/mobile [post]
func (h *MobileHandler) Create(c echo.Context) error {
	var req createMobileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m := req.toDomain()
	if err := h.service.Create(c.Request().Context(), m); err != nil {
		return err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("mobile").Inc()

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RouteMobileShow, m.ID))
	return c.JSON(http.StatusCreated, toMobileResponse(c, *m))
}

// Update handles PUT /api/admin/mobile/:id.
//
// @Summary      Update a mobile
// @Tags         Mobile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Mobile id"
// @Param        body  body      updateMobileRequest  true  "Fields to change"
// @Success      200   {object}  mobileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/admin/mobile/{id} [put]
func (h *MobileHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateMobileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	metrics.ResourcesUpdatedTotal.WithLabelValues("mobile").Inc()
	return c.JSON(http.StatusOK, toMobileResponse(c, *m))
}

// Delete handles DELETE /api/admin/mobile/:id.
//
// @Summary      Delete a mobile
// @Tags         Mobile
// @Security     BearerAuth
// @Param        id   path  int  true  "Mobile id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/admin/mobile/{id} [delete]
func (h *MobileHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourcesDeletedTotal.WithLabelValues("mobile").Inc()
	return c.NoContent(http.StatusNoContent)
}
