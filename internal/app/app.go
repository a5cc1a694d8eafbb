package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/sayadalsamak/store/internal/adapters/httpserver"
	"github.com/sayadalsamak/store/internal/adapters/images"
	"github.com/sayadalsamak/store/internal/adapters/repo/postgres"
	"github.com/sayadalsamak/store/internal/config"
	"github.com/sayadalsamak/store/internal/domain"
	"github.com/sayadalsamak/store/internal/usecase"
)

type App struct {
	DB  *gorm.DB
	Cfg *config.Config

	AuthUC     *usecase.AuthUC
	ProductUC  *usecase.ProductUC
	OrderUC    *usecase.OrderUC
	ReviewUC   *usecase.ReviewUC
	CategoryUC *usecase.CategoryUC
	ContactUC  *usecase.ContactUC
	ContentUC  *usecase.ContentUC
}

func NewApp(db *gorm.DB, cfg *config.Config) (*App, error) {
	userRepo := postgres.NewUserRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	catRepo := postgres.NewCategoryRepo(db)
	contactRepo := postgres.NewContactMessageRepo(db)
	contentRepo := postgres.NewContentRepo(db)

	uploader := images.NewGateway(cfg.ImageUploadURL, cfg.ImageAPIKey)

	a := &App{DB: db, Cfg: cfg}
	a.AuthUC = &usecase.AuthUC{Users: userRepo, Secret: []byte(cfg.JWTSecret), Expiry: cfg.JWTExpiry}
	a.ProductUC = &usecase.ProductUC{Products: prodRepo, Categories: catRepo, Images: uploader}
	a.OrderUC = &usecase.OrderUC{Orders: orderRepo, Products: prodRepo}
	a.ReviewUC = &usecase.ReviewUC{Reviews: reviewRepo, Products: prodRepo}
	a.CategoryUC = &usecase.CategoryUC{Categories: catRepo, Images: uploader}
	a.ContactUC = &usecase.ContactUC{Messages: contactRepo}
	a.ContentUC = &usecase.ContentUC{Contents: contentRepo, Images: uploader}
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Auth:        a.AuthUC,
		Products:    a.ProductUC,
		Orders:      a.OrderUC,
		Reviews:     a.ReviewUC,
		Categories:  a.CategoryUC,
		Contacts:    a.ContactUC,
		Contents:    a.ContentUC,
		CORSOrigin:  a.Cfg.CORSOrigin,
		MaxBodySize: a.Cfg.MaxBodySize,
	})
}

func (a *App) Migrate() error {
	return a.DB.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.Review{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderCounter{},
		&domain.ContactMessage{},
		&domain.HomepageContent{},
		&domain.AboutUsContent{},
		&domain.ContactInfo{},
	)
}
