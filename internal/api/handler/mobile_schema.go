package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type createMobileRequest struct {
	Name        string           `json:"name"        validate:"required,notblank,max=255"`
	Description string           `json:"description" validate:"required,notblank"`
	Price       *decimal.Decimal `json:"price"       validate:"required,gte=0"`
}

type updateMobileRequest struct {
	Name        *string          `json:"name"        validate:"omitnil,notblank,max=255"`
	Description *string          `json:"description" validate:"omitnil,notblank"`
	Price       *decimal.Decimal `json:"price"       validate:"omitnil,gte=0"`
}

// mobileResponse renders the price as a JSON number without float rounding.
type mobileResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Links       itemLinks   `json:"_links"`
}
