package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

// ContentUC manages the singleton-by-convention content records. Creating a
// record of a type deactivates the previous active one; updates edit fields
// in place without touching the active flag.
type ContentUC struct {
	Contents domain.ContentRepo
	Images   domain.ImageUploader
}

// --- Homepage ---

func (uc *ContentUC) CreateHomepage(ctx context.Context, c *domain.HomepageContent) (*domain.HomepageContent, error) {
	if c.HeroTitle == "" {
		return nil, domain.Invalidf("hero title is required")
	}
	if c.HeroImage != "" {
		url, err := uc.Images.Upload(ctx, c.HeroImage)
		if err != nil {
			return nil, fmt.Errorf("upload hero image: %w", err)
		}
		c.HeroImage = url
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.IsActive = true
	if err := uc.Contents.CreateHomepage(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) UpdateHomepage(ctx context.Context, c *domain.HomepageContent) (*domain.HomepageContent, error) {
	existing, err := uc.Contents.FindHomepage(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if c.HeroImage != "" {
		url, err := uc.Images.Upload(ctx, c.HeroImage)
		if err != nil {
			return nil, fmt.Errorf("upload hero image: %w", err)
		}
		c.HeroImage = url
	}
	c.IsActive = existing.IsActive
	c.CreatedAt = existing.CreatedAt
	if err := uc.Contents.SaveHomepage(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) ActiveHomepage(ctx context.Context) (*domain.HomepageContent, error) {
	return uc.Contents.ActiveHomepage(ctx)
}

func (uc *ContentUC) ListHomepage(ctx context.Context) ([]domain.HomepageContent, error) {
	return uc.Contents.ListHomepage(ctx)
}

func (uc *ContentUC) DeleteHomepage(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Contents.FindHomepage(ctx, id); err != nil {
		return err
	}
	return uc.Contents.DeleteHomepage(ctx, id)
}

// --- About us ---

func (uc *ContentUC) CreateAboutUs(ctx context.Context, c *domain.AboutUsContent) (*domain.AboutUsContent, error) {
	if c.Title == "" || c.Content == "" {
		return nil, domain.Invalidf("title and content are required")
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
	if err := uc.Contents.CreateAboutUs(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) UpdateAboutUs(ctx context.Context, c *domain.AboutUsContent) (*domain.AboutUsContent, error) {
	existing, err := uc.Contents.FindAboutUs(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if c.Image != "" {
		url, err := uc.Images.Upload(ctx, c.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		c.Image = url
	}
	c.IsActive = existing.IsActive
	c.CreatedAt = existing.CreatedAt
	if err := uc.Contents.SaveAboutUs(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) ActiveAboutUs(ctx context.Context) (*domain.AboutUsContent, error) {
	return uc.Contents.ActiveAboutUs(ctx)
}

func (uc *ContentUC) ListAboutUs(ctx context.Context) ([]domain.AboutUsContent, error) {
	return uc.Contents.ListAboutUs(ctx)
}

func (uc *ContentUC) DeleteAboutUs(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Contents.FindAboutUs(ctx, id); err != nil {
		return err
	}
	return uc.Contents.DeleteAboutUs(ctx, id)
}

// --- Contact info ---

func (uc *ContentUC) CreateContactInfo(ctx context.Context, c *domain.ContactInfo) (*domain.ContactInfo, error) {
	if c.Phone == "" && c.Email == "" {
		return nil, domain.Invalidf("a phone number or email is required")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.IsActive = true
	if err := uc.Contents.CreateContactInfo(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) UpdateContactInfo(ctx context.Context, c *domain.ContactInfo) (*domain.ContactInfo, error) {
	existing, err := uc.Contents.FindContactInfo(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.IsActive = existing.IsActive
	c.CreatedAt = existing.CreatedAt
	if err := uc.Contents.SaveContactInfo(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUC) ActiveContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return uc.Contents.ActiveContactInfo(ctx)
}

func (uc *ContentUC) ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error) {
	return uc.Contents.ListContactInfo(ctx)
}

func (uc *ContentUC) DeleteContactInfo(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Contents.FindContactInfo(ctx, id); err != nil {
		return err
	}
	return uc.Contents.DeleteContactInfo(ctx, id)
}
