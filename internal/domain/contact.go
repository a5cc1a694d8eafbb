package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:140;not null" json:"name"`
	Email     string    `gorm:"size:140" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:180" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false;index" json:"isRead"`
	IsReplied bool      `gorm:"default:false" json:"isReplied"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ContactMessageRepo interface {
	Create(ctx context.Context, m *ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*ContactMessage, error)
	List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]ContactMessage, int64, error)
	Save(ctx context.Context, m *ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
