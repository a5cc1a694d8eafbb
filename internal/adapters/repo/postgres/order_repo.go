package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sayadalsamak/store/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create writes the order, its items, and the per-product stock and
// sales-count deltas in one transaction. The caller bounds the context.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for _, it := range o.Items {
			res := tx.Model(&domain.Product{}).Where("id = ?", it.ProductID).
				UpdateColumns(map[string]any{
					"stock":       gorm.Expr("stock - ?", it.Quantity),
					"sales_count": gorm.Expr("COALESCE(sales_count,0) + ?", it.Quantity),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrNotFound
			}
		}
		return nil
	})
}

func (r *OrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	var list []domain.Order
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("order_number LIKE ? OR ship_full_name ILIKE ? OR ship_phone LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	offset := (f.Page - 1) * f.PageSize
	if err := q.Order("created_at desc").Offset(offset).Limit(f.PageSize).Preload("Items").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	// Omit Items: line items are immutable after creation.
	return r.db.WithContext(ctx).Omit("Items").Save(o).Error
}

// Cancel persists the cancelled order and reverts the stock bookkeeping of
// every item, atomically.
func (r *OrderRepo) Cancel(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(o).Error; err != nil {
			return err
		}
		for _, it := range o.Items {
			if err := tx.Model(&domain.Product{}).Where("id = ?", it.ProductID).
				UpdateColumns(map[string]any{
					"stock":       gorm.Expr("stock + ?", it.Quantity),
					"sales_count": gorm.Expr("COALESCE(sales_count,0) - ?", it.Quantity),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// NextSeq bumps and returns the day's order sequence in one atomic upsert,
// so two concurrent checkouts can never draw the same number.
func (r *OrderRepo) NextSeq(ctx context.Context, day string) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO order_counters (day, seq) VALUES (?, 1)
		 ON CONFLICT (day) DO UPDATE SET seq = order_counters.seq + 1
		 RETURNING seq`, day).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
