package usecase_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sayadalsamak/store/internal/domain"
)

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*domain.Product

	saveFunc    func(ctx context.Context, p *domain.Product) error
	ratings     map[uuid.UUID][2]float64
	viewsBumped int
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	m := &mockProductRepo{products: map[uuid.UUID]*domain.Product{}, ratings: map[uuid.UUID][2]float64{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Save(ctx context.Context, p *domain.Product) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		p.Views++
		m.viewsBumped++
	}
	return nil
}

func (m *mockProductRepo) UpdateRating(ctx context.Context, id uuid.UUID, avg float64, total int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratings[id] = [2]float64{avg, float64(total)}
	if p, ok := m.products[id]; ok {
		p.AverageRating = avg
		p.TotalReviews = total
	}
	return nil
}

func (m *mockProductRepo) adjustStock(id uuid.UUID, stockDelta, salesDelta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		p.Stock += stockDelta
		p.SalesCount += salesDelta
	}
}

// mockOrderRepo honors the OrderRepo contract: Create applies stock and
// sales-count deltas, Cancel reverts them.
type mockOrderRepo struct {
	mu       sync.Mutex
	orders   map[uuid.UUID]*domain.Order
	seq      map[string]int
	products *mockProductRepo

	createFunc  func(ctx context.Context, o *domain.Order) error
	nextSeqFunc func(ctx context.Context, day string) (int, error)
	cancelCalls int
}

func newMockOrderRepo(products *mockProductRepo) *mockOrderRepo {
	return &mockOrderRepo{orders: map[uuid.UUID]*domain.Order{}, seq: map[string]int{}, products: products}
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, o)
	}
	m.mu.Lock()
	m.orders[o.ID] = o
	m.mu.Unlock()
	if m.products != nil {
		for _, it := range o.Items {
			m.products.adjustStock(it.ProductID, -it.Quantity, it.Quantity)
		}
	}
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) Cancel(ctx context.Context, o *domain.Order) error {
	m.mu.Lock()
	m.cancelCalls++
	m.orders[o.ID] = o
	m.mu.Unlock()
	if m.products != nil {
		for _, it := range o.Items {
			m.products.adjustStock(it.ProductID, it.Quantity, -it.Quantity)
		}
	}
	return nil
}

func (m *mockOrderRepo) NextSeq(ctx context.Context, day string) (int, error) {
	if m.nextSeqFunc != nil {
		return m.nextSeqFunc(ctx, day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq[day]++
	return m.seq[day], nil
}

type mockReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*domain.Review
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: map[uuid.UUID]*domain.Review{}}
}

func (m *mockReviewRepo) Create(ctx context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[r.ID] = r
	return nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Review
	for _, r := range m.reviews {
		if r.ProductID != productID {
			continue
		}
		if approvedOnly && !r.IsApproved {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockReviewRepo) Save(ctx context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[r.ID] = r
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepo) ApprovedStats(ctx context.Context, productID uuid.UUID) (float64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum, n := 0, 0
	for _, r := range m.reviews {
		if r.ProductID == productID && r.IsApproved {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

type mockCategoryRepo struct {
	mu           sync.Mutex
	categories   map[uuid.UUID]*domain.Category
	productCount int64
	deleted      []uuid.UUID
}

func newMockCategoryRepo(cats ...*domain.Category) *mockCategoryRepo {
	m := &mockCategoryRepo{categories: map[uuid.UUID]*domain.Category{}}
	for _, c := range cats {
		m.categories[c.ID] = c
	}
	return m
}

func (m *mockCategoryRepo) Save(ctx context.Context, c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.categories {
		if existing.Name == c.Name && existing.ID != c.ID {
			return domain.ErrDuplicate
		}
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCategoryRepo) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Category
	for _, c := range m.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCategoryRepo) ProductCount(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.productCount, nil
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// mockUploader records calls and returns a fake hosted URL.
type mockUploader struct {
	calls int
	fail  error
}

func (m *mockUploader) Upload(ctx context.Context, data string) (string, error) {
	m.calls++
	if m.fail != nil {
		return "", m.fail
	}
	if len(data) > 7 && (data[:7] == "http://" || data[:8] == "https://") {
		return data, nil
	}
	return "https://cdn.example.com/img.png", nil
}
