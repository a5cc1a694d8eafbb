package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type ReviewUC struct {
	Reviews  domain.ReviewRepo
	Products domain.ProductRepo
}

func (uc *ReviewUC) Create(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return nil, domain.Invalidf("rating must be between 1 and 5")
	}
	if r.Name == "" {
		return nil, domain.Invalidf("reviewer name is required")
	}
	if _, err := uc.Products.FindByID(ctx, r.ProductID); err != nil {
		return nil, fmt.Errorf("product %s: %w", r.ProductID, err)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if err := uc.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	if err := uc.recompute(ctx, r.ProductID); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ReviewUC) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*domain.Review, error) {
	r, err := uc.Reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.IsApproved = approved
	if err := uc.Reviews.Save(ctx, r); err != nil {
		return nil, err
	}
	if err := uc.recompute(ctx, r.ProductID); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ReviewUC) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := uc.Reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.Reviews.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recompute(ctx, r.ProductID)
}

func (uc *ReviewUC) ListByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]domain.Review, error) {
	return uc.Reviews.ListByProduct(ctx, productID, approvedOnly)
}

// recompute rebuilds the product's rating aggregate from the approved rows.
// Always a full recomputation, never an incremental running average.
func (uc *ReviewUC) recompute(ctx context.Context, productID uuid.UUID) error {
	avg, total, err := uc.Reviews.ApprovedStats(ctx, productID)
	if err != nil {
		return fmt.Errorf("review stats: %w", err)
	}
	rounded := math.Round(avg*10) / 10
	return uc.Products.UpdateRating(ctx, productID, rounded, total)
}
