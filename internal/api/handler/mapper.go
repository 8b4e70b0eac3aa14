package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// --- Request → domain ---

func (r createClientRequest) toDomain() *domain.Client {
	return &domain.Client{Name: r.Name, Address: r.Address}
}

func (r updateClientRequest) toPatch() domain.ClientPatch {
	return domain.ClientPatch{Name: r.Name, Address: r.Address}
}

func (r createMobileRequest) toDomain() *domain.Mobile {
	m := &domain.Mobile{Name: r.Name, Description: r.Description}
	if r.Price != nil {
		m.Price = *r.Price
	}
	return m
}

func (r updateMobileRequest) toPatch() domain.MobilePatch {
	return domain.MobilePatch{Name: r.Name, Description: r.Description, Price: r.Price}
}

func (r createUserRequest) toInput() ports.NewUserInput {
	in := ports.NewUserInput{Email: r.Email, Password: r.Password, Fullname: r.Fullname}
	if r.Age != nil {
		in.Age = *r.Age
	}
	return in
}

func (r updateUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{Fullname: r.Fullname, Age: r.Age}
}

// --- domain → views ---

func toClientResponse(c echo.Context, cl domain.Client) clientResponse {
	return clientResponse{
		ID:      cl.ID,
		Name:    cl.Name,
		Address: cl.Address,
		Links:   selfLink(c, RouteClientShow, cl.ID),
	}
}

func toClientDetailResponse(c echo.Context, cl *domain.Client) clientDetailResponse {
	users := make([]clientUserResponse, 0, len(cl.Users))
	for _, u := range cl.Users {
		users = append(users, clientUserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Roles:     u.Roles(),
			CreatedAt: u.CreatedAt.UTC(),
			Age:       u.Age,
			Fullname:  u.Fullname,
		})
	}
	return clientDetailResponse{
		ID:      cl.ID,
		Name:    cl.Name,
		Address: cl.Address,
		Users:   users,
		Links:   selfLink(c, RouteClientShow, cl.ID),
	}
}

func toMobileResponse(c echo.Context, m domain.Mobile) mobileResponse {
	return mobileResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       json.Number(m.Price.String()),
		Links:       selfLink(c, RouteMobileShow, m.ID),
	}
}

func toUserResponse(c echo.Context, u domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		Age:       u.Age,
		Fullname:  u.Fullname,
		Links:     selfLink(c, RouteUserShow, u.ID),
	}
	if u.Client != nil {
		resp.Client = &userClientResponse{ID: u.Client.ID, Name: u.Client.Name, Address: u.Client.Address}
	}
	return resp
}

func mapAll[T, V any](c echo.Context, items []T, f func(echo.Context, T) V) []V {
	out := make([]V, 0, len(items))
	for _, it := range items {
		out = append(out, f(c, it))
	}
	return out
}
