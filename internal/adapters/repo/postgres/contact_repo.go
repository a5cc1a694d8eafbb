package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sayadalsamak/store/internal/domain"
)

type ContactMessageRepo struct{ db *gorm.DB }

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo { return &ContactMessageRepo{db: db} }

func (r *ContactMessageRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ContactMessageRepo) List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]domain.ContactMessage, int64, error) {
	var list []domain.ContactMessage
	q := r.db.WithContext(ctx).Model(&domain.ContactMessage{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if err := q.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ContactMessageRepo) Save(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ContactMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, "id = ?", id).Error
}
