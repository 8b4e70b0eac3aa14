package handler

import "time"

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,notblank,email,max=180"`
	Password string `json:"password" validate:"required,min=8,max=255,password"`
	Fullname string `json:"fullname" validate:"required,notblank,min=3,max=75"`
	Age      *int   `json:"age"      validate:"required,gt=0"`
}

// updateUserRequest: only the profile fields can change.
type updateUserRequest struct {
	Fullname *string `json:"fullname" validate:"omitnil,notblank,min=3,max=75"`
	Age      *int    `json:"age"      validate:"omitnil,gt=0"`
}

// userResponse is the "MediumUser" view.
type userResponse struct {
	ID        int64               `json:"id"`
	Email     string              `json:"email"`
	CreatedAt time.Time           `json:"created_at"`
	Age       int                 `json:"age"`
	Fullname  string              `json:"fullname"`
	Client    *userClientResponse `json:"client,omitempty"`
	Links     itemLinks           `json:"_links"`
}

type userClientResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"adress"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
