package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProductType string

const (
	ProductTypeRetail    ProductType = "RETAIL"
	ProductTypeWholesale ProductType = "WHOLESALE"
	ProductTypeBoth      ProductType = "BOTH"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeRetail, ProductTypeWholesale, ProductTypeBoth:
		return true
	}
	return false
}

// WholesaleEnabled reports whether wholesale pricing fields are mandatory.
func (t ProductType) WholesaleEnabled() bool {
	return t == ProductTypeWholesale || t == ProductTypeBoth
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:180;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:255" json:"image"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`

	Type            ProductType `gorm:"type:varchar(12);index;default:'RETAIL'" json:"type"`
	Price           float64     `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice   *float64    `gorm:"type:decimal(12,2)" json:"originalPrice,omitempty"`
	Discount        float64     `gorm:"type:decimal(5,2);default:0" json:"discount"`
	WholesalePrice  *float64    `gorm:"type:decimal(12,2)" json:"wholesalePrice,omitempty"`
	MinWholesaleQty *int        `json:"minWholesaleQty,omitempty"`

	Stock       int  `gorm:"default:0" json:"stock"`
	IsAvailable bool `gorm:"default:true;index" json:"isAvailable"`

	IsFeatured   bool `gorm:"default:false;index" json:"isFeatured"`
	IsBestSeller bool `gorm:"default:false;index" json:"isBestSeller"`
	IsNewArrival bool `gorm:"default:false;index" json:"isNewArrival"`

	Views         int     `gorm:"default:0" json:"views"`
	SalesCount    int     `gorm:"default:0" json:"salesCount"`
	AverageRating float64 `gorm:"type:decimal(3,1);default:0" json:"averageRating"`
	TotalReviews  int     `gorm:"default:0" json:"totalReviews"`

	Reviews []Review `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProductFilter struct {
	CategoryID   *uuid.UUID
	Type         ProductType
	MinPrice     *float64
	MaxPrice     *float64
	IsFeatured   *bool
	IsBestSeller *bool
	IsNewArrival *bool
	Query        string
	Sort         string
	Page         int
	PageSize     int
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	UpdateRating(ctx context.Context, id uuid.UUID, avg float64, total int) error
}

// ImageUploader pushes a base64 data URI to the image host and returns a
// stable URL. Values that are already hosted URLs pass through untouched.
type ImageUploader interface {
	Upload(ctx context.Context, data string) (string, error)
}
