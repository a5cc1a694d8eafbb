package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sayadalsamak/store/internal/domain"
)

// ContentRepo backs the three singleton-by-convention content families.
// Each Create deactivates the previous active rows and inserts the new one
// inside a single transaction; "at most one active" holds across concurrent
// creates because both writes share the transaction.
type ContentRepo struct{ db *gorm.DB }

func NewContentRepo(db *gorm.DB) *ContentRepo { return &ContentRepo{db: db} }

func (r *ContentRepo) createActive(ctx context.Context, model any, rec any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(model).Where("is_active = ?", true).
			UpdateColumn("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --- Homepage ---

func (r *ContentRepo) CreateHomepage(ctx context.Context, c *domain.HomepageContent) error {
	return r.createActive(ctx, &domain.HomepageContent{}, c)
}

func (r *ContentRepo) SaveHomepage(ctx context.Context, c *domain.HomepageContent) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContentRepo) ActiveHomepage(ctx context.Context) (*domain.HomepageContent, error) {
	var c domain.HomepageContent
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at desc").First(&c).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) FindHomepage(ctx context.Context, id uuid.UUID) (*domain.HomepageContent, error) {
	var c domain.HomepageContent
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) ListHomepage(ctx context.Context) ([]domain.HomepageContent, error) {
	var list []domain.HomepageContent
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *ContentRepo) DeleteHomepage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.HomepageContent{}, "id = ?", id).Error
}

// --- About us ---

func (r *ContentRepo) CreateAboutUs(ctx context.Context, c *domain.AboutUsContent) error {
	return r.createActive(ctx, &domain.AboutUsContent{}, c)
}

func (r *ContentRepo) SaveAboutUs(ctx context.Context, c *domain.AboutUsContent) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContentRepo) ActiveAboutUs(ctx context.Context) (*domain.AboutUsContent, error) {
	var c domain.AboutUsContent
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at desc").First(&c).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) FindAboutUs(ctx context.Context, id uuid.UUID) (*domain.AboutUsContent, error) {
	var c domain.AboutUsContent
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) ListAboutUs(ctx context.Context) ([]domain.AboutUsContent, error) {
	var list []domain.AboutUsContent
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *ContentRepo) DeleteAboutUs(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.AboutUsContent{}, "id = ?", id).Error
}

// --- Contact info ---

func (r *ContentRepo) CreateContactInfo(ctx context.Context, c *domain.ContactInfo) error {
	return r.createActive(ctx, &domain.ContactInfo{}, c)
}

func (r *ContentRepo) SaveContactInfo(ctx context.Context, c *domain.ContactInfo) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContentRepo) ActiveContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	var c domain.ContactInfo
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at desc").First(&c).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) FindContactInfo(ctx context.Context, id uuid.UUID) (*domain.ContactInfo, error) {
	var c domain.ContactInfo
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (r *ContentRepo) ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error) {
	var list []domain.ContactInfo
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *ContentRepo) DeleteContactInfo(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ContactInfo{}, "id = ?", id).Error
}
