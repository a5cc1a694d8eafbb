package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sayadalsamak/store/internal/domain"
)

// createTxTimeout bounds the checkout transaction; past it the whole order
// rolls back and the caller retries from scratch.
const createTxTimeout = 30 * time.Second

type OrderUC struct {
	Orders   domain.OrderRepo
	Products domain.ProductRepo
}

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput       `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod"`
	Discount        float64                `json:"discount"`
	DeliveryFee     float64                `json:"deliveryFee"`
	Tax             float64                `json:"tax"`
	DeliveryDate    *time.Time             `json:"deliveryDate,omitempty"`
	DeliveryTime    string                 `json:"deliveryTime,omitempty"`
	CustomerNotes   string                 `json:"customerNotes,omitempty"`
}

func (in *CreateOrderInput) validate() error {
	if len(in.Items) == 0 {
		return domain.Invalidf("order must contain at least one item")
	}
	for _, it := range in.Items {
		if it.ProductID == uuid.Nil {
			return domain.Invalidf("item product id is required")
		}
		if it.Quantity < 1 {
			return domain.Invalidf("item quantity must be at least 1")
		}
	}
	if !in.PaymentMethod.Valid() {
		return domain.Invalidf("unknown payment method %q", in.PaymentMethod)
	}
	if in.Discount < 0 || in.DeliveryFee < 0 || in.Tax < 0 {
		return domain.Invalidf("discount, delivery fee and tax must be non-negative")
	}
	a := in.ShippingAddress
	if a.FullName == "" || a.Phone == "" || a.Governorate == "" || a.City == "" || a.Street == "" {
		return domain.Invalidf("shipping address is incomplete")
	}
	return nil
}

// Create places an order. Unit prices come from the products' current
// retail price, never from the client. Any missing product aborts the whole
// order before the transaction starts.
func (uc *OrderUC) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	subtotal := 0.0
	for _, it := range in.Items {
		p, err := uc.Products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", it.ProductID, err)
		}
		lineTotal := p.Price * float64(it.Quantity)
		items = append(items, domain.OrderItem{
			ID:           uuid.New(),
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.Image,
			Price:        p.Price,
			Quantity:     it.Quantity,
			Total:        lineTotal,
		})
		subtotal += lineTotal
	}

	total := subtotal - in.Discount + in.DeliveryFee + in.Tax
	if total < 0 {
		return nil, domain.Invalidf("discount exceeds order total")
	}

	now := time.Now()
	day := now.Format("20060102")
	seq, err := uc.Orders.NextSeq(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("order sequence: %w", err)
	}

	o := &domain.Order{
		ID:              uuid.New(),
		OrderNumber:     fmt.Sprintf("ORD%s%04d", day, seq),
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        subtotal,
		Discount:        in.Discount,
		DeliveryFee:     in.DeliveryFee,
		Tax:             in.Tax,
		Total:           total,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		DeliveryDate:    in.DeliveryDate,
		DeliveryTime:    in.DeliveryTime,
		CustomerNotes:   in.CustomerNotes,
	}

	txCtx, cancel := context.WithTimeout(ctx, createTxTimeout)
	defer cancel()
	if err := uc.Orders.Create(txCtx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	log.Info().Str("order_number", o.OrderNumber).Float64("total", o.Total).Int("items", len(o.Items)).Msg("order created")
	return uc.Orders.FindByID(ctx, o.ID)
}

func (uc *OrderUC) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Orders.List(ctx, f)
}

// UpdateStatus sets the fulfillment status. Transitions are deliberately
// unrestricted; the admin is trusted. Setting CANCELLED restores stock and
// rolls back sales counts for every item, exactly once.
func (uc *OrderUC) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, cancelReason string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Invalidf("unknown order status %q", status)
	}
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == domain.OrderStatusCancelled {
		if o.Status == domain.OrderStatusCancelled {
			return o, nil
		}
		now := time.Now()
		o.Status = status
		o.CancelReason = cancelReason
		o.CancelledAt = &now
		if err := uc.Orders.Cancel(ctx, o); err != nil {
			return nil, fmt.Errorf("cancel order: %w", err)
		}
		log.Info().Str("order_number", o.OrderNumber).Str("reason", cancelReason).Msg("order cancelled, stock restored")
		return o, nil
	}

	o.Status = status
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdatePaymentStatus writes the payment state. No side effects, no
// transition table.
func (uc *OrderUC) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Invalidf("unknown payment status %q", status)
	}
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = status
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateAdminNotes replaces the admin-facing notes on an order.
func (uc *OrderUC) UpdateAdminNotes(ctx context.Context, id uuid.UUID, notes string) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.AdminNotes = notes
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
