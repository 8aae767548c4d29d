package orders

import (
	"errors"
	"testing"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, false},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusShipped, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestKnownStatus(t *testing.T) {
	assert.True(t, KnownStatus(models.OrderStatusPending))
	assert.True(t, KnownStatus(models.OrderStatusCancelled))
	assert.False(t, KnownStatus("Refunded"))
	assert.False(t, KnownStatus(""))
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:     1,
		Status: models.OrderStatusPending,
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestCancelPendingRestoresStock(t *testing.T) {
	store := newMemProducts(
		&models.Product{ID: 1, Stock: 3, Sold: 2},
		&models.Product{ID: 2, Stock: 0, Sold: 1},
	)
	orderStore := &memOrderStore{}
	lc := NewLifecycle(orderStore, inventory.NewEngine(store))

	order := pendingOrder()
	require.NoError(t, lc.Cancel(order, "Changed my mind"))

	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.Equal(t, "Changed my mind", order.CancellationReason)
	require.NotNil(t, order.CancelledAt)
	require.Len(t, orderStore.saved, 1)

	assert.Equal(t, 5, store.products[1].Stock)
	assert.Equal(t, 0, store.products[1].Sold)
	assert.Equal(t, 1, store.products[2].Stock)
	assert.Equal(t, 0, store.products[2].Sold)
}

func TestCancelDefaultsReason(t *testing.T) {
	store := newMemProducts(
		&models.Product{ID: 1, Stock: 3},
		&models.Product{ID: 2, Stock: 3},
	)
	lc := NewLifecycle(&memOrderStore{}, inventory.NewEngine(store))

	order := pendingOrder()
	require.NoError(t, lc.Cancel(order, ""))

	assert.Equal(t, DefaultCancellationReason, order.CancellationReason)
}

func TestCancelProcessingRejectedWithoutStockChange(t *testing.T) {
	store := newMemProducts(&models.Product{ID: 1, Stock: 3, Sold: 2})
	orderStore := &memOrderStore{}
	lc := NewLifecycle(orderStore, inventory.NewEngine(store))

	order := pendingOrder()
	order.Status = models.OrderStatusProcessing

	err := lc.Cancel(order, "")

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, models.OrderStatusProcessing, transitionErr.From)
	assert.Equal(t, models.OrderStatusCancelled, transitionErr.To)

	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, 3, store.products[1].Stock)
	assert.Equal(t, 2, store.products[1].Sold)
	assert.Empty(t, orderStore.saved)
}

func TestCancelReleaseFailureLeavesOrderPending(t *testing.T) {
	store := newMemProducts(
		&models.Product{ID: 1, Stock: 3},
		&models.Product{ID: 2, Stock: 3},
	)
	store.incrementErr[1] = errors.New("connection reset")
	orderStore := &memOrderStore{}
	lc := NewLifecycle(orderStore, inventory.NewEngine(store))

	order := pendingOrder()
	err := lc.Cancel(order, "")

	var rbErr *inventory.RollbackError
	require.ErrorAs(t, err, &rbErr)

	// Status never changed and nothing was saved, so the cancellation
	// can be retried.
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.CancelledAt)
	assert.Empty(t, orderStore.saved)
}

func TestCancelSaveFailureSurfacesAfterRestore(t *testing.T) {
	store := newMemProducts(
		&models.Product{ID: 1, Stock: 0, Sold: 2},
		&models.Product{ID: 2, Stock: 0, Sold: 1},
	)
	orderStore := &memOrderStore{saveErr: errors.New("connection reset")}
	lc := NewLifecycle(orderStore, inventory.NewEngine(store))

	order := pendingOrder()
	err := lc.Cancel(order, "")

	require.Error(t, err)
	// Stock was already restored; the error tells the caller the status
	// write itself did not land.
	assert.Equal(t, 2, store.products[1].Stock)
	assert.Equal(t, 1, store.products[2].Stock)
	assert.Empty(t, orderStore.saved)
}

func TestUpdateStatusDeliveredMarksPaid(t *testing.T) {
	orderStore := &memOrderStore{}
	lc := NewLifecycle(orderStore, inventory.NewEngine(newMemProducts()))

	order := &models.Order{
		ID:            1,
		Status:        models.OrderStatusShipped,
		PaymentStatus: models.PaymentStatusPending,
	}
	require.NoError(t, lc.UpdateStatus(order, models.OrderStatusDelivered))

	assert.Equal(t, models.OrderStatusDelivered, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	require.NotNil(t, order.DeliveredAt)
	require.Len(t, orderStore.saved, 1)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	lc := NewLifecycle(&memOrderStore{}, inventory.NewEngine(newMemProducts()))

	order := &models.Order{Status: models.OrderStatusDelivered}
	err := lc.UpdateStatus(order, models.OrderStatusShipped)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestUpdateStatusCancelledRestoresStock(t *testing.T) {
	store := newMemProducts(
		&models.Product{ID: 1, Stock: 0, Sold: 2},
		&models.Product{ID: 2, Stock: 0, Sold: 1},
	)
	lc := NewLifecycle(&memOrderStore{}, inventory.NewEngine(store))

	order := pendingOrder()
	require.NoError(t, lc.UpdateStatus(order, models.OrderStatusCancelled))

	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.Equal(t, DefaultCancellationReason, order.CancellationReason)
	assert.Equal(t, 2, store.products[1].Stock)
	assert.Equal(t, 1, store.products[2].Stock)
}
