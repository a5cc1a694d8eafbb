package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	Name       string    `gorm:"size:140" json:"name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment,omitempty"`
	IsApproved bool      `gorm:"default:false;index" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReviewRepo interface {
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]Review, error)
	Save(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ApprovedStats returns the raw mean rating and count over approved
	// reviews of the product. Zeroes when none exist.
	ApprovedStats(ctx context.Context, productID uuid.UUID) (avg float64, total int, err error)
}
