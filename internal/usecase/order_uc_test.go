package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayadalsamak/store/internal/domain"
	"github.com/sayadalsamak/store/internal/usecase"
)

func testAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:    "Ahmed Hassan",
		Phone:       "+201001234567",
		Governorate: "Cairo",
		City:        "Nasr City",
		Street:      "12 Abbas El Akkad",
	}
}

func TestOrderUC_Create_Totals(t *testing.T) {
	fishA := &domain.Product{ID: uuid.New(), Name: "Sea Bass", Image: "https://cdn.example.com/bass.png", Price: 50, Stock: 10}
	fishB := &domain.Product{ID: uuid.New(), Name: "Shrimp", Price: 30, Stock: 5}
	products := newMockProductRepo(fishA, fishB)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	o, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: fishA.ID, Quantity: 2},
			{ProductID: fishB.ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
		DeliveryFee:     20,
	})
	require.NoError(t, err)

	assert.Equal(t, 130.0, o.Subtotal)
	assert.Equal(t, 150.0, o.Total)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, domain.PaymentStatusPending, o.PaymentStatus)

	day := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("ORD%s0001", day), o.OrderNumber)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Sea Bass", o.Items[0].ProductName)
	assert.Equal(t, 50.0, o.Items[0].Price)
	assert.Equal(t, 100.0, o.Items[0].Total)

	// repo contract: creation decremented stock and bumped sales counts
	gotA, _ := products.FindByID(context.Background(), fishA.ID)
	gotB, _ := products.FindByID(context.Background(), fishB.ID)
	assert.Equal(t, 8, gotA.Stock)
	assert.Equal(t, 2, gotA.SalesCount)
	assert.Equal(t, 4, gotB.Stock)
	assert.Equal(t, 1, gotB.SalesCount)
}

func TestOrderUC_Create_SequentialNumbers(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Tilapia", Price: 25, Stock: 100}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	in := usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
	}
	day := time.Now().Format("20060102")
	for i := 1; i <= 3; i++ {
		o, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORD%s%04d", day, i), o.OrderNumber)
	}
}

func TestOrderUC_Create_MissingProductAborts(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Salmon", Price: 90, Stock: 4}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	seqCalled := false
	orders.nextSeqFunc = func(ctx context.Context, day string) (int, error) {
		seqCalled = true
		return 1, nil
	}
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: fish.ID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 2},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, seqCalled, "sequence must not be consumed for aborted orders")
	assert.Empty(t, orders.orders)

	got, _ := products.FindByID(context.Background(), fish.ID)
	assert.Equal(t, 4, got.Stock, "stock must be untouched on abort")
}

func TestOrderUC_Create_Validation(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Mullet", Price: 40, Stock: 10}
	products := newMockProductRepo(fish)
	uc := &usecase.OrderUC{Orders: newMockOrderRepo(products), Products: products}

	valid := func() usecase.CreateOrderInput {
		return usecase.CreateOrderInput{
			Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 1}},
			ShippingAddress: testAddress(),
			PaymentMethod:   domain.PaymentMethodCashOnDelivery,
		}
	}

	tests := []struct {
		name   string
		mutate func(*usecase.CreateOrderInput)
	}{
		{"no items", func(in *usecase.CreateOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *usecase.CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{"nil product id", func(in *usecase.CreateOrderInput) { in.Items[0].ProductID = uuid.Nil }},
		{"bad payment method", func(in *usecase.CreateOrderInput) { in.PaymentMethod = "BITCOIN" }},
		{"negative discount", func(in *usecase.CreateOrderInput) { in.Discount = -5 }},
		{"missing phone", func(in *usecase.CreateOrderInput) { in.ShippingAddress.Phone = "" }},
		{"missing street", func(in *usecase.CreateOrderInput) { in.ShippingAddress.Street = "" }},
		{"discount exceeds total", func(in *usecase.CreateOrderInput) { in.Discount = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalid)
		})
	}
}

func TestOrderUC_Create_RejectedOrderKeepsSequence(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Mullet", Price: 40, Stock: 10}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	in := usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
	}

	rejected := in
	rejected.Discount = 1000
	_, err := uc.Create(context.Background(), rejected)
	require.ErrorIs(t, err, domain.ErrInvalid)

	// the next accepted order still draws the day's first number
	o, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD%s0001", time.Now().Format("20060102")), o.OrderNumber)
}

func TestOrderUC_UpdateStatus_CancelRestoresStockOnce(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Crab", Price: 60, Stock: 10}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	o, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 3}},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	got, _ := products.FindByID(context.Background(), fish.ID)
	require.Equal(t, 7, got.Stock)

	cancelled, err := uc.UpdateStatus(context.Background(), o.ID, domain.OrderStatusCancelled, "customer changed mind")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, "customer changed mind", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)

	got, _ = products.FindByID(context.Background(), fish.ID)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, 0, got.SalesCount)

	// cancelling again is a no-op, stock is not restored twice
	again, err := uc.UpdateStatus(context.Background(), o.ID, domain.OrderStatusCancelled, "duplicate click")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, again.Status)
	assert.Equal(t, 1, orders.cancelCalls)
	got, _ = products.FindByID(context.Background(), fish.ID)
	assert.Equal(t, 10, got.Stock)
}

func TestOrderUC_UpdateStatus_Unrestricted(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Squid", Price: 45, Stock: 20}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	o, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodMobileWallet,
	})
	require.NoError(t, err)

	// any valid status may follow any other, including backwards
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusDelivered,
		domain.OrderStatusPending,
		domain.OrderStatusOutForDelivery,
	} {
		got, err := uc.UpdateStatus(context.Background(), o.ID, s, "")
		require.NoError(t, err)
		assert.Equal(t, s, got.Status)
	}

	_, err = uc.UpdateStatus(context.Background(), o.ID, "SHIPPED", "")
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestOrderUC_UpdatePaymentStatus(t *testing.T) {
	fish := &domain.Product{ID: uuid.New(), Name: "Oyster", Price: 15, Stock: 50}
	products := newMockProductRepo(fish)
	orders := newMockOrderRepo(products)
	uc := &usecase.OrderUC{Orders: orders, Products: products}

	o, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: fish.ID, Quantity: 2}},
		ShippingAddress: testAddress(),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)

	got, err := uc.UpdatePaymentStatus(context.Background(), o.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, domain.OrderStatusPending, got.Status, "payment status never touches fulfillment status")

	_, err = uc.UpdatePaymentStatus(context.Background(), o.ID, "CHARGEBACK")
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = uc.UpdatePaymentStatus(context.Background(), uuid.New(), domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
