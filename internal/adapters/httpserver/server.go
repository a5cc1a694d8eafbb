package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sayadalsamak/store/internal/domain"
	"github.com/sayadalsamak/store/internal/usecase"
)

type Server struct {
	mux *http.ServeMux

	auth       *usecase.AuthUC
	products   *usecase.ProductUC
	orders     *usecase.OrderUC
	reviews    *usecase.ReviewUC
	categories *usecase.CategoryUC
	contacts   *usecase.ContactUC
	contents   *usecase.ContentUC
}

type Deps struct {
	Auth       *usecase.AuthUC
	Products   *usecase.ProductUC
	Orders     *usecase.OrderUC
	Reviews    *usecase.ReviewUC
	Categories *usecase.CategoryUC
	Contacts   *usecase.ContactUC
	Contents   *usecase.ContentUC

	CORSOrigin  string
	MaxBodySize int64
}

func New(d Deps) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		auth:       d.Auth,
		products:   d.Products,
		orders:     d.Orders,
		reviews:    d.Reviews,
		categories: d.Categories,
		contacts:   d.Contacts,
		contents:   d.Contents,
	}
	s.routes()
	maxBody := d.MaxBodySize
	if maxBody == 0 {
		maxBody = 10 << 20
	}
	return Chain(s.mux,
		MaxBody(maxBody),
		CORS(d.CORSOrigin),
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/v1/auth/me", s.requireAdmin(s.handleMe))

	s.mux.HandleFunc("GET /api/v1/categories", s.handleCategoryList)
	s.mux.HandleFunc("GET /api/v1/categories/{id}", s.handleCategoryGet)
	s.mux.HandleFunc("POST /api/v1/categories", s.requireAdmin(s.handleCategoryCreate))
	s.mux.HandleFunc("PUT /api/v1/categories/{id}", s.requireAdmin(s.handleCategoryUpdate))
	s.mux.HandleFunc("DELETE /api/v1/categories/{id}", s.requireAdmin(s.handleCategoryDelete))
	s.mux.HandleFunc("PATCH /api/v1/categories/{id}/toggle-active", s.requireAdmin(s.handleCategoryToggle))

	s.mux.HandleFunc("GET /api/v1/products", s.handleProductList)
	s.mux.HandleFunc("GET /api/v1/products/{id}", s.handleProductGet)
	s.mux.HandleFunc("POST /api/v1/products", s.requireAdmin(s.handleProductCreate))
	s.mux.HandleFunc("PUT /api/v1/products/{id}", s.requireAdmin(s.handleProductUpdate))
	s.mux.HandleFunc("DELETE /api/v1/products/{id}", s.requireAdmin(s.handleProductDelete))
	s.mux.HandleFunc("PATCH /api/v1/products/{id}/toggle/{flag}", s.requireAdmin(s.handleProductToggle))

	s.mux.HandleFunc("GET /api/v1/products/{id}/reviews", s.handleReviewList)
	s.mux.HandleFunc("POST /api/v1/products/{id}/reviews", s.handleReviewCreate)
	s.mux.HandleFunc("PATCH /api/v1/reviews/{id}/approve", s.requireAdmin(s.handleReviewApprove))
	s.mux.HandleFunc("DELETE /api/v1/reviews/{id}", s.requireAdmin(s.handleReviewDelete))

	s.mux.HandleFunc("POST /api/v1/orders", s.handleOrderCreate)
	s.mux.HandleFunc("GET /api/v1/orders", s.requireAdmin(s.handleOrderList))
	s.mux.HandleFunc("GET /api/v1/orders/export", s.requireAdmin(s.handleOrderExport))
	s.mux.HandleFunc("GET /api/v1/orders/{id}", s.requireAdmin(s.handleOrderGet))
	s.mux.HandleFunc("PATCH /api/v1/orders/{id}/status", s.requireAdmin(s.handleOrderStatus))
	s.mux.HandleFunc("PATCH /api/v1/orders/{id}/payment-status", s.requireAdmin(s.handleOrderPaymentStatus))
	s.mux.HandleFunc("PATCH /api/v1/orders/{id}/notes", s.requireAdmin(s.handleOrderNotes))

	s.mux.HandleFunc("POST /api/v1/contact-messages", s.handleContactSubmit)
	s.mux.HandleFunc("GET /api/v1/contact-messages", s.requireAdmin(s.handleContactList))
	s.mux.HandleFunc("GET /api/v1/contact-messages/{id}", s.requireAdmin(s.handleContactGet))
	s.mux.HandleFunc("PATCH /api/v1/contact-messages/{id}/mark-read", s.requireAdmin(s.handleContactMarkRead))
	s.mux.HandleFunc("PATCH /api/v1/contact-messages/{id}/mark-replied", s.requireAdmin(s.handleContactMarkReplied))
	s.mux.HandleFunc("PATCH /api/v1/contact-messages/{id}/notes", s.requireAdmin(s.handleContactNotes))
	s.mux.HandleFunc("DELETE /api/v1/contact-messages/{id}", s.requireAdmin(s.handleContactDelete))

	s.mux.HandleFunc("GET /api/v1/homepage-content/active", s.handleHomepageActive)
	s.mux.HandleFunc("GET /api/v1/homepage-content", s.requireAdmin(s.handleHomepageList))
	s.mux.HandleFunc("POST /api/v1/homepage-content", s.requireAdmin(s.handleHomepageCreate))
	s.mux.HandleFunc("PUT /api/v1/homepage-content/{id}", s.requireAdmin(s.handleHomepageUpdate))
	s.mux.HandleFunc("DELETE /api/v1/homepage-content/{id}", s.requireAdmin(s.handleHomepageDelete))

	s.mux.HandleFunc("GET /api/v1/about-us/active", s.handleAboutActive)
	s.mux.HandleFunc("GET /api/v1/about-us", s.requireAdmin(s.handleAboutList))
	s.mux.HandleFunc("POST /api/v1/about-us", s.requireAdmin(s.handleAboutCreate))
	s.mux.HandleFunc("PUT /api/v1/about-us/{id}", s.requireAdmin(s.handleAboutUpdate))
	s.mux.HandleFunc("DELETE /api/v1/about-us/{id}", s.requireAdmin(s.handleAboutDelete))

	s.mux.HandleFunc("GET /api/v1/contact-info/active", s.handleContactInfoActive)
	s.mux.HandleFunc("GET /api/v1/contact-info", s.requireAdmin(s.handleContactInfoList))
	s.mux.HandleFunc("POST /api/v1/contact-info", s.requireAdmin(s.handleContactInfoCreate))
	s.mux.HandleFunc("PUT /api/v1/contact-info/{id}", s.requireAdmin(s.handleContactInfoUpdate))
	s.mux.HandleFunc("DELETE /api/v1/contact-info/{id}", s.requireAdmin(s.handleContactInfoDelete))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, map[string]any{"success": true, "data": v})
}

func writePage(w http.ResponseWriter, items any, total int64, page, pageSize int) {
	if page <= 0 {
		page = 1
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    items,
		"pagination": map[string]any{
			"total":    total,
			"page":     page,
			"pageSize": pageSize,
		},
	})
}

// writeError maps domain sentinels onto HTTP statuses; anything unmatched
// is a 500 with the detail kept out of the response body.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalid), errors.Is(err, domain.ErrDuplicate):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		code = http.StatusForbidden
	}
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("internal error")
		msg = "internal server error"
	}
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalidf("request body is empty")
		}
		return domain.Invalidf("malformed json: %v", err)
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.Invalidf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
