package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type productPayload struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Image           string             `json:"image"`
	CategoryID      uuid.UUID          `json:"categoryId"`
	Type            domain.ProductType `json:"type"`
	Price           float64            `json:"price"`
	OriginalPrice   *float64           `json:"originalPrice"`
	Discount        float64            `json:"discount"`
	WholesalePrice  *float64           `json:"wholesalePrice"`
	MinWholesaleQty *int               `json:"minWholesaleQty"`
	Stock           int                `json:"stock"`
	IsAvailable     *bool              `json:"isAvailable"`
	IsFeatured      bool               `json:"isFeatured"`
	IsBestSeller    bool               `json:"isBestSeller"`
	IsNewArrival    bool               `json:"isNewArrival"`
}

func (in productPayload) toDomain(id uuid.UUID) *domain.Product {
	p := &domain.Product{
		ID:              id,
		Name:            in.Name,
		Description:     in.Description,
		Image:           in.Image,
		CategoryID:      in.CategoryID,
		Type:            in.Type,
		Price:           in.Price,
		OriginalPrice:   in.OriginalPrice,
		Discount:        in.Discount,
		WholesalePrice:  in.WholesalePrice,
		MinWholesaleQty: in.MinWholesaleQty,
		Stock:           in.Stock,
		IsFeatured:      in.IsFeatured,
		IsBestSeller:    in.IsBestSeller,
		IsNewArrival:    in.IsNewArrival,
	}
	// Availability follows stock unless the admin pinned it explicitly.
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	} else {
		p.IsAvailable = in.Stock > 0
	}
	return p
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	f, err := productFilterFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, total, err := s.products.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, list, total, f.Page, f.PageSize)
}

func productFilterFrom(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	f := domain.ProductFilter{
		Query: q.Get("search"),
		Sort:  q.Get("sortBy"),
	}
	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, domain.Invalidf("invalid categoryId %q", raw)
		}
		f.CategoryID = &id
	}
	if raw := q.Get("type"); raw != "" {
		t := domain.ProductType(raw)
		if !t.Valid() {
			return f, domain.Invalidf("invalid type %q", raw)
		}
		f.Type = t
	}
	var err error
	if f.MinPrice, err = floatParam(q.Get("minPrice"), "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = floatParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		return f, err
	}
	f.IsFeatured = boolParam(q.Get("isFeatured"))
	f.IsBestSeller = boolParam(q.Get("isBestSeller"))
	f.IsNewArrival = boolParam(q.Get("isNewArrival"))
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PageSize, _ = strconv.Atoi(q.Get("limit"))
	return f, nil
}

func floatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.Invalidf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func boolParam(raw string) *bool {
	if raw == "" {
		return nil
	}
	v := raw == "true" || raw == "1"
	return &v
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	var in productPayload
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.Create(r.Context(), in.toDomain(uuid.Nil))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (s *Server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in productPayload
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.Update(r.Context(), in.toDomain(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.products.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (s *Server) handleProductToggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.ToggleFlag(r.Context(), id, r.PathValue("flag"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

// --- Reviews sub-resource ---

func (s *Server) handleReviewList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	// Public listing only surfaces approved reviews.
	list, err := s.reviews.ListByProduct(r.Context(), id, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleReviewCreate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	rev, err := s.reviews.Create(r.Context(), &domain.Review{
		ProductID: id,
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, rev)
}

func (s *Server) handleReviewApprove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		IsApproved bool `json:"isApproved"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	rev, err := s.reviews.SetApproved(r.Context(), id, in.IsApproved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, rev)
}

func (s *Server) handleReviewDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.reviews.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
