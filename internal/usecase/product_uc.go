package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type ProductUC struct {
	Products   domain.ProductRepo
	Categories domain.CategoryRepo
	Images     domain.ImageUploader
}

// validateProduct enforces the wholesale cross-field rules before any image
// upload or persistence happens.
func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return domain.Invalidf("product name is required")
	}
	if p.Price <= 0 {
		return domain.Invalidf("product price must be positive")
	}
	if !p.Type.Valid() {
		return domain.Invalidf("unknown product type %q", p.Type)
	}
	if p.Type.WholesaleEnabled() {
		if p.WholesalePrice == nil || p.MinWholesaleQty == nil {
			return domain.Invalidf("wholesale products require wholesalePrice and minWholesaleQty")
		}
	}
	if p.WholesalePrice != nil && *p.WholesalePrice >= p.Price {
		return domain.Invalidf("wholesalePrice must be less than price")
	}
	if p.MinWholesaleQty != nil && *p.MinWholesaleQty < 1 {
		return domain.Invalidf("minWholesaleQty must be at least 1")
	}
	if p.Stock < 0 {
		return domain.Invalidf("stock cannot be negative")
	}
	return nil
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.Type == "" {
		p.Type = domain.ProductTypeRetail
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if _, err := uc.Categories.FindByID(ctx, p.CategoryID); err != nil {
		return nil, fmt.Errorf("category %s: %w", p.CategoryID, err)
	}
	if p.Image != "" {
		url, err := uc.Images.Upload(ctx, p.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		p.Image = url
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := uc.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUC) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	existing, err := uc.Products.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if p.Image != "" {
		url, err := uc.Images.Upload(ctx, p.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		p.Image = url
	} else {
		p.Image = existing.Image
	}
	// Counters and the review aggregate are server-managed; an edit of the
	// catalog fields must never reset them.
	p.Views = existing.Views
	p.SalesCount = existing.SalesCount
	p.AverageRating = existing.AverageRating
	p.TotalReviews = existing.TotalReviews
	p.CreatedAt = existing.CreatedAt
	if err := uc.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get loads a product and bumps its view counter. The increment is best
// effort; a failed bump never fails the fetch.
func (uc *ProductUC) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Products.IncrementViews(ctx, id); err == nil {
		p.Views++
	}
	return p, nil
}

func (uc *ProductUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *ProductUC) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Products.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Products.Delete(ctx, id)
}

// ToggleFlag flips one of the homepage section flags (featured, best seller,
// new arrival) or availability.
func (uc *ProductUC) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch flag {
	case "featured":
		p.IsFeatured = !p.IsFeatured
	case "best-seller":
		p.IsBestSeller = !p.IsBestSeller
	case "new-arrival":
		p.IsNewArrival = !p.IsNewArrival
	case "available":
		p.IsAvailable = !p.IsAvailable
	default:
		return nil, domain.Invalidf("unknown flag %q", flag)
	}
	if err := uc.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
