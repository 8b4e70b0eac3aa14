package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type MobileRepository struct {
	db *gorm.DB
}

func NewMobileRepository(db *gorm.DB) *MobileRepository {
	return &MobileRepository{db: db}
}

func (r *MobileRepository) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Mobile, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := applyKeyword(r.db.WithContext(ctx).Model(&mobileModel{}), "name", q.Keyword)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []mobileModel
	err := base.Session(&gorm.Session{}).
		Order(orderByID(q.Descending())).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Mobile, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}

func (r *MobileRepository) FindByID(ctx context.Context, id int64) (*domain.Mobile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row mobileModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err, domain.ErrMobileNotFound)
	}
	m := row.toDomain()
	return &m, nil
}

func (r *MobileRepository) Create(ctx context.Context, m *domain.Mobile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := newMobileModel(m)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	m.ID = row.ID
	return nil
}

func (r *MobileRepository) Update(ctx context.Context, m *domain.Mobile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&mobileModel{ID: m.ID}).
		Updates(map[string]interface{}{"name": m.Name, "description": m.Description, "price": m.Price})
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (r *MobileRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&mobileModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMobileNotFound
	}
	return nil
}
