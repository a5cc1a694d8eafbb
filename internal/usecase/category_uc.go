package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type CategoryUC struct {
	Categories domain.CategoryRepo
	Images     domain.ImageUploader
}

func (uc *CategoryUC) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if c.Name == "" {
		return nil, domain.Invalidf("category name is required")
	}
	if c.Image != "" {
		url, err := uc.Images.Upload(ctx, c.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		c.Image = url
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.IsActive = true
	if err := uc.Categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUC) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if _, err := uc.Categories.FindByID(ctx, c.ID); err != nil {
		return nil, err
	}
	if c.Name == "" {
		return nil, domain.Invalidf("category name is required")
	}
	if c.Image != "" {
		url, err := uc.Images.Upload(ctx, c.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		c.Image = url
	}
	if err := uc.Categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUC) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return uc.Categories.FindByID(ctx, id)
}

func (uc *CategoryUC) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return uc.Categories.List(ctx, activeOnly)
}

// Delete refuses while products still reference the category. The guard
// lives here, not in the database.
func (uc *CategoryUC) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Categories.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := uc.Categories.ProductCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Invalidf("category still has %d products; move or delete them first", n)
	}
	return uc.Categories.Delete(ctx, id)
}

func (uc *CategoryUC) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := uc.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.IsActive = !c.IsActive
	if err := uc.Categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
