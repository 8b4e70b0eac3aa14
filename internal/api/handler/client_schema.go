package handler

import "time"

type createClientRequest struct {
	Name    string `json:"name"  validate:"required,notblank,min=3,max=75"`
	Address string `json:"adress" validate:"required,notblank,min=3,max=105"`
}

// updateClientRequest: absent fields keep their stored value.
type updateClientRequest struct {
	Name    *string `json:"name"   validate:"omitnil,notblank,min=3,max=75"`
	Address *string `json:"adress" validate:"omitnil,notblank,min=3,max=105"`
}

// clientResponse is the "MediumClients" view.
type clientResponse struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"adress"`
	Links   itemLinks `json:"_links"`
}

// clientDetailResponse is the "FullClients" view.
type clientDetailResponse struct {
	ID      int64                `json:"id"`
	Name    string               `json:"name"`
	Address string               `json:"adress"`
	Users   []clientUserResponse `json:"users"`
	Links   itemLinks            `json:"_links"`
}

type clientUserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	Age       int       `json:"age"`
	Fullname  string    `json:"fullname"`
}
