package sqlstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

type clientModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"size:75;not null;index"`
	Address string `gorm:"size:105;not null"`
}

func (clientModel) TableName() string { return "clients" }

func (m clientModel) toDomain() domain.Client {
	return domain.Client{ID: m.ID, Name: m.Name, Address: m.Address}
}

type mobileModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (mobileModel) TableName() string { return "mobiles" }

func newMobileModel(m *domain.Mobile) mobileModel {
	return mobileModel{ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price}
}

func (m mobileModel) toDomain() domain.Mobile {
	return domain.Mobile{ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price}
}

// userModel stores the highest granted role; the bundle is derived on read.
type userModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:180;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:20;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	Age          int
	Fullname     string       `gorm:"size:75;index"`
	ClientID     *int64       `gorm:"index"`
	Client       *clientModel `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

func (userModel) TableName() string { return "users" }

func newUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
		Age:          u.Age,
		Fullname:     u.Fullname,
		ClientID:     u.ClientID,
	}
}

func (m userModel) toDomain() domain.User {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		role = domain.RoleClient
	}
	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         role,
		CreatedAt:    m.CreatedAt.UTC(),
		Age:          m.Age,
		Fullname:     m.Fullname,
		ClientID:     m.ClientID,
	}
}
