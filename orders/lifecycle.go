package orders

import (
	"time"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// DefaultCancellationReason is recorded when the customer gives none.
const DefaultCancellationReason = "Customer cancelled"

// transitions is the full status machine. Cancelled is reachable only from
// Pending; Delivered and Cancelled are terminal.
var transitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped},
	models.OrderStatusShipped:    {models.OrderStatusDelivered},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

// CanTransition reports whether the status machine allows from -> to.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether s is one of the five order statuses.
func KnownStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// Lifecycle owns every status change an order goes through after creation.
// Callers never set status fields directly; the side effects (payment
// marking on delivery, stock restoration on cancellation) are derived here
// so they cannot be applied inconsistently.
type Lifecycle struct {
	orders OrderStore
	stock  *inventory.Engine
	now    func() time.Time
}

func NewLifecycle(orders OrderStore, stock *inventory.Engine) *Lifecycle {
	return &Lifecycle{orders: orders, stock: stock, now: time.Now}
}

// UpdateStatus applies an admin-driven status change. Delivered also marks
// the order paid and stamps DeliveredAt; Cancelled goes through the same
// path as a customer cancellation, stock restoration included.
func (l *Lifecycle) UpdateStatus(order *models.Order, newStatus string) error {
	if !CanTransition(order.Status, newStatus) {
		return &InvalidTransitionError{From: order.Status, To: newStatus}
	}
	if newStatus == models.OrderStatusCancelled {
		return l.cancel(order, "")
	}
	if newStatus == models.OrderStatusDelivered {
		deliveredAt := l.now()
		order.DeliveredAt = &deliveredAt
		order.PaymentStatus = models.PaymentStatusPaid
	}
	order.Status = newStatus
	return l.orders.Save(order)
}

// Cancel applies a customer-driven cancellation. Only Pending orders may be
// cancelled; anything further along is rejected with InvalidTransitionError
// and no stock is touched.
func (l *Lifecycle) Cancel(order *models.Order, reason string) error {
	if !CanTransition(order.Status, models.OrderStatusCancelled) {
		return &InvalidTransitionError{From: order.Status, To: models.OrderStatusCancelled}
	}
	return l.cancel(order, reason)
}

func (l *Lifecycle) cancel(order *models.Order, reason string) error {
	if reason == "" {
		reason = DefaultCancellationReason
	}
	// Restore stock before persisting the status change: if restoration
	// fails the order stays Pending and the cancellation can be retried.
	if err := l.stock.Release(ReservationItems(order.OrderItems)); err != nil {
		return err
	}
	cancelledAt := l.now()
	order.Status = models.OrderStatusCancelled
	order.CancelledAt = &cancelledAt
	order.CancellationReason = reason
	if err := l.orders.Save(order); err != nil {
		// Stock is already restored but the order is still Pending in the
		// database; a retried cancel would restore it a second time.
		utils.LogError("CRITICAL: order %d stock restored but cancellation save failed: %v", order.ID, err)
		return err
	}
	return nil
}

// ReservationItems maps an order's line items onto reservation lines.
func ReservationItems(items []models.OrderItem) []inventory.Item {
	reserve := make([]inventory.Item, len(items))
	for i, item := range items {
		reserve[i] = inventory.Item{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return reserve
}
