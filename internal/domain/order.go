package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusReturned       OrderStatus = "RETURNED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusReturned:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodMobileWallet   PaymentMethod = "MOBILE_WALLET"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCreditCard, PaymentMethodMobileWallet:
		return true
	}
	return false
}

// ShippingAddress is copied verbatim from the checkout form onto the order.
// It never references a separate address record.
type ShippingAddress struct {
	FullName    string `gorm:"size:140" json:"fullName"`
	Phone       string `gorm:"size:50" json:"phone"`
	Governorate string `gorm:"size:80" json:"governorate"`
	City        string `gorm:"size:80" json:"city"`
	District    string `gorm:"size:80" json:"district"`
	Street      string `gorm:"size:180" json:"street"`
	BuildingNo  string `gorm:"size:30" json:"buildingNo,omitempty"`
	Floor       string `gorm:"size:30" json:"floor,omitempty"`
	Apartment   string `gorm:"size:30" json:"apartment,omitempty"`
	Landmark    string `gorm:"size:180" json:"landmark,omitempty"`
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber string    `gorm:"size:20;uniqueIndex" json:"orderNumber"`

	Status        OrderStatus   `gorm:"type:varchar(20);index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);index" json:"paymentStatus"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"paymentMethod"`

	Subtotal    float64 `gorm:"type:decimal(12,2)" json:"subtotal"`
	Discount    float64 `gorm:"type:decimal(12,2);default:0" json:"discount"`
	DeliveryFee float64 `gorm:"type:decimal(12,2);default:0" json:"deliveryFee"`
	Tax         float64 `gorm:"type:decimal(12,2);default:0" json:"tax"`
	Total       float64 `gorm:"type:decimal(12,2)" json:"total"`

	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`

	Items []OrderItem `json:"items"`

	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	DeliveryTime  string     `gorm:"size:40" json:"deliveryTime,omitempty"`
	CustomerNotes string     `gorm:"type:text" json:"customerNotes,omitempty"`
	AdminNotes    string     `gorm:"type:text" json:"adminNotes,omitempty"`

	CancelReason string     `gorm:"size:255" json:"cancelReason,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem snapshots the product at purchase time so later product edits
// never rewrite order history.
type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      uuid.UUID `gorm:"type:uuid;index" json:"orderId"`
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	ProductName  string    `gorm:"size:180" json:"productName"`
	ProductImage string    `gorm:"size:255" json:"productImage"`
	Price        float64   `gorm:"type:decimal(12,2)" json:"price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Total        float64   `gorm:"type:decimal(12,2)" json:"total"`
}

// OrderCounter holds the per-day sequence behind human-readable order
// numbers. Incremented atomically so concurrent checkouts never collide.
type OrderCounter struct {
	Day string `gorm:"primaryKey;size:8"`
	Seq int    `gorm:"not null"`
}

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Query         string
	Page          int
	PageSize      int
}

type OrderRepo interface {
	// Create persists the order with its items and applies the stock and
	// sales-count deltas for every item inside one transaction.
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, f OrderFilter) ([]Order, int64, error)
	Save(ctx context.Context, o *Order) error
	// Cancel saves the order and restores stock / rolls back sales counts
	// for its items inside one transaction.
	Cancel(ctx context.Context, o *Order) error
	// NextSeq atomically increments and returns the sequence for day
	// (formatted YYYYMMDD).
	NextSeq(ctx context.Context, day string) (int, error)
}
