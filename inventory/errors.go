package inventory

import (
	"fmt"
)

// ProductNotFoundError is returned when a line item references a product
// that does not exist (or is soft-deleted).
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError reports how much stock was actually available so
// the caller can surface it to the customer.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// RollbackError means a compensating stock write failed after a partial
// reservation. The database is inconsistent at this point; it must be
// surfaced loudly, never swallowed or retried silently.
type RollbackError struct {
	ProductID uint
	Err       error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback failed for product %d: %v", e.ProductID, e.Err)
}

func (e *RollbackError) Unwrap() error {
	return e.Err
}
