package domain

import "github.com/shopspring/decimal"

// Mobile is a catalog product.
type Mobile struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
}

// MobilePatch carries the fields of a partial update. Nil fields are left
// untouched.
type MobilePatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

// Apply copies the present fields onto m.
func (p MobilePatch) Apply(m *Mobile) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
}
