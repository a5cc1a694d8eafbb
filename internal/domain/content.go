package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Content records are singletons by convention: at most one row of each type
// carries IsActive=true, enforced by the repo's deactivate-then-insert
// transaction rather than a database constraint.

type HomepageContent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeroTitle      string    `gorm:"size:180" json:"heroTitle"`
	HeroSubtitle   string    `gorm:"size:255" json:"heroSubtitle"`
	HeroImage      string    `gorm:"size:255" json:"heroImage"`
	FeaturedTitle  string    `gorm:"size:180" json:"featuredTitle"`
	OffersTitle    string    `gorm:"size:180" json:"offersTitle"`
	OffersSubtitle string    `gorm:"size:255" json:"offersSubtitle"`
	IsActive       bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type AboutUsContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:180" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     string    `gorm:"size:255" json:"image"`
	Mission   string    `gorm:"type:text" json:"mission"`
	Vision    string    `gorm:"type:text" json:"vision"`
	IsActive  bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ContactInfo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phone        string    `gorm:"size:50" json:"phone"`
	WhatsApp     string    `gorm:"size:50" json:"whatsapp"`
	Email        string    `gorm:"size:140" json:"email"`
	Address      string    `gorm:"size:255" json:"address"`
	WorkingHours string    `gorm:"size:180" json:"workingHours"`
	Facebook     string    `gorm:"size:255" json:"facebook"`
	Instagram    string    `gorm:"size:255" json:"instagram"`
	IsActive     bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ContentRepo interface {
	// CreateHomepage deactivates every active homepage row, then inserts c
	// as the active one, in a single transaction. Likewise for the other
	// content types below.
	CreateHomepage(ctx context.Context, c *HomepageContent) error
	SaveHomepage(ctx context.Context, c *HomepageContent) error
	ActiveHomepage(ctx context.Context) (*HomepageContent, error)
	FindHomepage(ctx context.Context, id uuid.UUID) (*HomepageContent, error)
	ListHomepage(ctx context.Context) ([]HomepageContent, error)
	DeleteHomepage(ctx context.Context, id uuid.UUID) error

	CreateAboutUs(ctx context.Context, c *AboutUsContent) error
	SaveAboutUs(ctx context.Context, c *AboutUsContent) error
	ActiveAboutUs(ctx context.Context) (*AboutUsContent, error)
	FindAboutUs(ctx context.Context, id uuid.UUID) (*AboutUsContent, error)
	ListAboutUs(ctx context.Context) ([]AboutUsContent, error)
	DeleteAboutUs(ctx context.Context, id uuid.UUID) error

	CreateContactInfo(ctx context.Context, c *ContactInfo) error
	SaveContactInfo(ctx context.Context, c *ContactInfo) error
	ActiveContactInfo(ctx context.Context) (*ContactInfo, error)
	FindContactInfo(ctx context.Context, id uuid.UUID) (*ContactInfo, error)
	ListContactInfo(ctx context.Context) ([]ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id uuid.UUID) error
}
