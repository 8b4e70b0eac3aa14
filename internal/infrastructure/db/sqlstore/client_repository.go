package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Client, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := applyKeyword(r.db.WithContext(ctx).Model(&clientModel{}), "name", q.Keyword)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []clientModel
	err := base.Session(&gorm.Session{}).
		Order(orderByID(q.Descending())).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row clientModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err, domain.ErrClientNotFound)
	}
	c := row.toDomain()
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := clientModel{Name: c.Name, Address: c.Address}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// RowsAffected is not checked: MySQL reports 0 for an unchanged row.
	res := r.db.WithContext(ctx).Model(&clientModel{ID: c.ID}).
		Updates(map[string]interface{}{"name": c.Name, "address": c.Address})
	if res.Error != nil {
		return res.Error
	}
	return nil
}

// Delete checks for owned users and removes the row in one transaction.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&userModel{}).Where("client_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return domain.ErrClientHasUsers
		}

		res := tx.Delete(&clientModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrClientNotFound
		}
		return nil
	})
}
