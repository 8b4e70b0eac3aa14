package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
)

// Route names, used both when registering routes and when generating links.
const (
	RouteClientList     = "all_clients_show"
	RouteClientShow     = "client_show"
	RouteClientItem     = "client_item"
	RouteClientCreate   = "add_client"
	RouteClientUpdate   = "update_client"
	RouteClientDelete   = "delete_client"
	RouteMobileList     = "all_mobiles_show"
	RouteMobileShow     = "mobile_show"
	RouteMobileCreate   = "add_mobile"
	RouteMobileUpdate   = "update_mobile"
	RouteMobileDelete   = "delete_mobile"
	RouteUserList       = "all_users_show"
	RouteUserListAdmin  = "all_users_customer_show_admin"
	RouteUserShow       = "user_show"
	RouteUserCreate     = "add_user"
	RouteUserCreateByAd = "add_user_by_admin"
	RouteUserUpdate     = "update_user"
	RouteUserDelete     = "delete_user"
	RouteLogin          = "login_check"
)

type itemLinks struct {
	Self pagination.Link `json:"self"`
}

func selfLink(c echo.Context, route string, id int64) itemLinks {
	return itemLinks{Self: pagination.Link{Href: c.Echo().Reverse(route, id)}}
}

// listLinker renders navigation links for a named collection route.
func listLinker(c echo.Context, route string, params ...interface{}) pagination.LinkFunc {
	base := c.Echo().Reverse(route, params...)
	return func(p pagination.Params) string {
		return base + "?" + p.Query().Encode()
	}
}
