package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayadalsamak/store/internal/domain"
	"github.com/sayadalsamak/store/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

func TestProductUC_Create_WholesaleValidation(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), Name: "Fresh Fish", IsActive: true}

	tests := []struct {
		name    string
		product domain.Product
		wantErr bool
	}{
		{
			name:    "retail needs no wholesale fields",
			product: domain.Product{Name: "Sardine", Price: 20, Type: domain.ProductTypeRetail},
		},
		{
			name:    "wholesale without price fails",
			product: domain.Product{Name: "Tuna", Price: 100, Type: domain.ProductTypeWholesale, MinWholesaleQty: ptr(10)},
			wantErr: true,
		},
		{
			name:    "wholesale without min qty fails",
			product: domain.Product{Name: "Tuna", Price: 100, Type: domain.ProductTypeWholesale, WholesalePrice: ptr(80.0)},
			wantErr: true,
		},
		{
			name:    "wholesale price >= retail price fails",
			product: domain.Product{Name: "Tuna", Price: 100, Type: domain.ProductTypeBoth, WholesalePrice: ptr(100.0), MinWholesaleQty: ptr(10)},
			wantErr: true,
		},
		{
			name:    "min qty below one fails",
			product: domain.Product{Name: "Tuna", Price: 100, Type: domain.ProductTypeWholesale, WholesalePrice: ptr(80.0), MinWholesaleQty: ptr(0)},
			wantErr: true,
		},
		{
			name:    "valid both",
			product: domain.Product{Name: "Tuna", Price: 100, Type: domain.ProductTypeBoth, WholesalePrice: ptr(80.0), MinWholesaleQty: ptr(10)},
		},
		{
			name:    "retail with cheaper wholesale price is allowed",
			product: domain.Product{Name: "Mackerel", Price: 60, Type: domain.ProductTypeRetail, WholesalePrice: ptr(45.0), MinWholesaleQty: ptr(5)},
		},
		{
			name:    "unknown type fails",
			product: domain.Product{Name: "Eel", Price: 70, Type: "BULK"},
			wantErr: true,
		},
		{
			name:    "zero price fails",
			product: domain.Product{Name: "Eel", Price: 0, Type: domain.ProductTypeRetail},
			wantErr: true,
		},
		{
			name:    "negative stock fails",
			product: domain.Product{Name: "Eel", Price: 70, Type: domain.ProductTypeRetail, Stock: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &usecase.ProductUC{
				Products:   newMockProductRepo(),
				Categories: newMockCategoryRepo(cat),
				Images:     &mockUploader{},
			}
			p := tt.product
			p.CategoryID = cat.ID
			_, err := uc.Create(context.Background(), &p)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, p.ID)
		})
	}
}

func TestProductUC_Create_ValidationPrecedesUpload(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), Name: "Frozen", IsActive: true}
	up := &mockUploader{}
	uc := &usecase.ProductUC{Products: newMockProductRepo(), Categories: newMockCategoryRepo(cat), Images: up}

	_, err := uc.Create(context.Background(), &domain.Product{
		Name:       "Lobster",
		Price:      250,
		Type:       domain.ProductTypeWholesale, // missing wholesale fields
		CategoryID: cat.ID,
		Image:      "data:image/png;base64,aGVsbG8=",
	})
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Zero(t, up.calls, "invalid products must never hit the image host")
}

func TestProductUC_Create_UnknownCategory(t *testing.T) {
	uc := &usecase.ProductUC{Products: newMockProductRepo(), Categories: newMockCategoryRepo(), Images: &mockUploader{}}

	_, err := uc.Create(context.Background(), &domain.Product{
		Name:       "Sole",
		Price:      55,
		CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUC_Create_DefaultsToRetail(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), Name: "Shellfish", IsActive: true}
	uc := &usecase.ProductUC{Products: newMockProductRepo(), Categories: newMockCategoryRepo(cat), Images: &mockUploader{}}

	p, err := uc.Create(context.Background(), &domain.Product{Name: "Mussels", Price: 35, CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductTypeRetail, p.Type)
}

func TestProductUC_Create_UploadsImage(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), Name: "Fresh", IsActive: true}
	up := &mockUploader{}
	uc := &usecase.ProductUC{Products: newMockProductRepo(), Categories: newMockCategoryRepo(cat), Images: up}

	p, err := uc.Create(context.Background(), &domain.Product{
		Name:       "Red Snapper",
		Price:      120,
		CategoryID: cat.ID,
		Image:      "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "https://cdn.example.com/img.png", p.Image)
}

func TestProductUC_Update_PreservesServerManagedFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fish := &domain.Product{
		ID:            uuid.New(),
		Name:          "Sea Bass",
		Price:         50,
		Stock:         10,
		Image:         "https://cdn.example.com/bass.png",
		Views:         12,
		SalesCount:    37,
		AverageRating: 4.5,
		TotalReviews:  9,
		CreatedAt:     created,
	}
	products := newMockProductRepo(fish)
	uc := &usecase.ProductUC{Products: products, Categories: newMockCategoryRepo(), Images: &mockUploader{}}

	// the admin form posts only catalog fields
	updated, err := uc.Update(context.Background(), &domain.Product{
		ID:    fish.ID,
		Name:  "Sea Bass (large)",
		Price: 55,
		Type:  domain.ProductTypeRetail,
		Stock: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sea Bass (large)", updated.Name)
	assert.Equal(t, 12, updated.Views)
	assert.Equal(t, 37, updated.SalesCount)
	assert.Equal(t, 4.5, updated.AverageRating)
	assert.Equal(t, 9, updated.TotalReviews)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, "https://cdn.example.com/bass.png", updated.Image, "omitted image keeps the stored URL")

	stored, _ := products.FindByID(context.Background(), fish.ID)
	assert.Equal(t, 37, stored.SalesCount)
	assert.Equal(t, 4.5, stored.AverageRating)

	// an explicit new image still replaces the old one
	updated, err = uc.Update(context.Background(), &domain.Product{
		ID:    fish.ID,
		Name:  "Sea Bass (large)",
		Price: 55,
		Type:  domain.ProductTypeRetail,
		Image: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", updated.Image)
	assert.Equal(t, 37, updated.SalesCount)
}

func TestProductUC_Get_BumpsViews(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Grouper", Price: 140, Views: 7}
	products := newMockProductRepo(fish)
	uc := &usecase.ProductUC{Products: products, Categories: newMockCategoryRepo(), Images: &mockUploader{}}

	p, err := uc.Get(context.Background(), fish.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Views)
	assert.Equal(t, 1, products.viewsBumped)
}

func TestProductUC_ToggleFlag(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Anchovy", Price: 10, IsAvailable: true}
	products := newMockProductRepo(fish)
	uc := &usecase.ProductUC{Products: products, Categories: newMockCategoryRepo(), Images: &mockUploader{}}

	p, err := uc.ToggleFlag(context.Background(), fish.ID, "featured")
	require.NoError(t, err)
	assert.True(t, p.IsFeatured)

	p, err = uc.ToggleFlag(context.Background(), fish.ID, "featured")
	require.NoError(t, err)
	assert.False(t, p.IsFeatured)

	p, err = uc.ToggleFlag(context.Background(), fish.ID, "available")
	require.NoError(t, err)
	assert.False(t, p.IsAvailable)

	_, err = uc.ToggleFlag(context.Background(), fish.ID, "discounted")
	assert.ErrorIs(t, err, domain.ErrInvalid)
}
