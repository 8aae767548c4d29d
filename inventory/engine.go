package inventory

import (
	"fmt"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// Item is one reservation line: a product and the quantity to reserve.
type Item struct {
	ProductID uint
	Quantity  int
}

// Engine reserves and restores stock for orders. Reservation is a manual
// saga: each line is committed with its own conditional decrement, and a
// failed line triggers compensating increments for every line committed
// before it, walked in reverse. There is no cross-item transaction, so a
// reader may observe a partial reservation between a commit and its
// rollback; what the engine does guarantee is that stock never goes
// negative and that a failed reservation leaves no net change behind.
type Engine struct {
	store ProductStore
}

func NewEngine(store ProductStore) *Engine {
	return &Engine{store: store}
}

// CheckAvailability verifies that every line could currently be satisfied.
// It mutates nothing and is advisory only: stock may still be consumed by a
// concurrent order between this check and Reserve.
func (e *Engine) CheckAvailability(items []Item) error {
	for _, item := range items {
		product, err := e.store.FindByID(item.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < item.Quantity {
			return &InsufficientStockError{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: product.Stock,
			}
		}
	}
	return nil
}

// Reserve commits the reservation line by line, in the submitted order.
// Each line is a conditional decrement; if the guard fails (stock consumed
// since the pre-check) the lines already committed are rolled back in
// reverse and the stock error is returned. A failed compensating write is
// returned as *RollbackError and logged as critical.
func (e *Engine) Reserve(items []Item) error {
	for i, item := range items {
		ok, err := e.store.DecrementStock(item.ProductID, item.Quantity)
		if err == nil && ok {
			continue
		}

		if rbErr := e.rollback(items[:i]); rbErr != nil {
			return rbErr
		}

		if err != nil {
			return fmt.Errorf("failed to reserve stock for product %d: %w", item.ProductID, err)
		}

		// Guard did not match: report the quantity that is actually left.
		available := 0
		if product, lookupErr := e.store.FindByID(item.ProductID); lookupErr == nil {
			available = product.Stock
		}
		return &InsufficientStockError{
			ProductID: item.ProductID,
			Requested: item.Quantity,
			Available: available,
		}
	}
	return nil
}

// Release restores stock for every line of a cancelled order. The sold
// counter is clamped at zero by the store, so restoring an order whose
// sold units were already reduced elsewhere cannot corrupt it.
func (e *Engine) Release(items []Item) error {
	for _, item := range items {
		if err := e.store.IncrementStock(item.ProductID, item.Quantity); err != nil {
			utils.LogError("CRITICAL: stock restore failed for product %d (qty %d): %v",
				item.ProductID, item.Quantity, err)
			return &RollbackError{ProductID: item.ProductID, Err: err}
		}
	}
	return nil
}

// rollback walks the committed prefix backward and issues compensating
// increments. Stops at the first failure: past that point the database is
// inconsistent and continuing would only obscure which rows are wrong.
func (e *Engine) rollback(committed []Item) error {
	for i := len(committed) - 1; i >= 0; i-- {
		item := committed[i]
		if err := e.store.IncrementStock(item.ProductID, item.Quantity); err != nil {
			utils.LogError("CRITICAL: stock rollback failed for product %d (qty %d): %v",
				item.ProductID, item.Quantity, err)
			return &RollbackError{ProductID: item.ProductID, Err: err}
		}
	}
	return nil
}
