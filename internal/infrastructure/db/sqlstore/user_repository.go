package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Search(ctx context.Context, q ports.SearchQuery) ([]domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := applyKeyword(r.db.WithContext(ctx).Model(&userModel{}), "fullname", q.Keyword)
	if q.OwnerID != nil {
		base = base.Where("client_id = ?", *q.OwnerID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userModel
	err := base.Session(&gorm.Session{}).
		Order(orderByID(q.Descending())).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return toUsers(rows), total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row userModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	u := row.toDomain()
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	u := row.toDomain()
	return &u, nil
}

func (r *UserRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []userModel
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toUsers(rows), nil
}

func (r *UserRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Model(&userModel{}).Where("client_id = ?", clientID).Count(&n).Error
	return n, err
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := newUserModel(u)
	row.ID = 0
	if err := r.db.WithContext(ctx).Omit("Client").Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	u.ID = row.ID
	return nil
}

// Update only touches the mutable profile fields.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&userModel{ID: u.ID}).
		Updates(map[string]interface{}{"fullname": u.Fullname, "age": u.Age})
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUsers(rows []userModel) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
