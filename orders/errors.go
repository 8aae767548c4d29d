package orders

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder rejects checkouts with no line items.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrInvalidQuantity rejects line items with a quantity below one.
var ErrInvalidQuantity = errors.New("item quantity must be at least 1")

// ErrNotOwner is returned when a caller who is neither the order's owner
// nor an admin tries to read or cancel it.
var ErrNotOwner = errors.New("order does not belong to this user")

// InvalidTransitionError reports a status change the lifecycle does not
// allow, e.g. cancelling an order that is already Processing.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}
