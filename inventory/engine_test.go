package inventory

import (
	"errors"
	"testing"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductStore is an in-memory ProductStore with per-product error
// injection for the compensating-write paths.
type fakeProductStore struct {
	products     map[uint]*models.Product
	decrementErr map[uint]error
	incrementErr map[uint]error
}

func newFakeStore(products ...*models.Product) *fakeProductStore {
	s := &fakeProductStore{
		products:     make(map[uint]*models.Product),
		decrementErr: make(map[uint]error),
		incrementErr: make(map[uint]error),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) FindByID(productID uint) (*models.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, &ProductNotFoundError{ProductID: productID}
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) DecrementStock(productID uint, qty int) (bool, error) {
	if err := s.decrementErr[productID]; err != nil {
		return false, err
	}
	p, ok := s.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	p.Sold += qty
	return true, nil
}

func (s *fakeProductStore) IncrementStock(productID uint, qty int) error {
	if err := s.incrementErr[productID]; err != nil {
		return err
	}
	p, ok := s.products[productID]
	if !ok {
		return nil
	}
	p.Stock += qty
	p.Sold -= qty
	if p.Sold < 0 {
		p.Sold = 0
	}
	return nil
}

func (s *fakeProductStore) AdjustStock(productID uint, delta int) (bool, error) {
	p, ok := s.products[productID]
	if !ok || p.Stock+delta < 0 {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

func TestReserveDecrementsStockAndSold(t *testing.T) {
	store := newFakeStore(&models.Product{ID: 1, Stock: 5, Sold: 0})
	engine := NewEngine(store)

	err := engine.Reserve([]Item{{ProductID: 1, Quantity: 3}})
	require.NoError(t, err)

	assert.Equal(t, 2, store.products[1].Stock)
	assert.Equal(t, 3, store.products[1].Sold)
}

func TestReserveInsufficientStockLeavesStockUnchanged(t *testing.T) {
	store := newFakeStore(&models.Product{ID: 1, Stock: 5})
	engine := NewEngine(store)

	err := engine.Reserve([]Item{{ProductID: 1, Quantity: 7}})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, uint(1), stockErr.ProductID)
	assert.Equal(t, 7, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)

	assert.Equal(t, 5, store.products[1].Stock)
	assert.Equal(t, 0, store.products[1].Sold)
}

func TestReservePartialFailureRollsBackCommittedLines(t *testing.T) {
	store := newFakeStore(
		&models.Product{ID: 1, Stock: 10},
		&models.Product{ID: 2, Stock: 10},
		&models.Product{ID: 3, Stock: 1},
	)
	engine := NewEngine(store)

	err := engine.Reserve([]Item{
		{ProductID: 1, Quantity: 4},
		{ProductID: 2, Quantity: 2},
		{ProductID: 3, Quantity: 5},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, uint(3), stockErr.ProductID)

	// The two committed lines were compensated; nothing net changed.
	assert.Equal(t, 10, store.products[1].Stock)
	assert.Equal(t, 0, store.products[1].Sold)
	assert.Equal(t, 10, store.products[2].Stock)
	assert.Equal(t, 0, store.products[2].Sold)
	assert.Equal(t, 1, store.products[3].Stock)
}

func TestReserveRollbackFailureReturnsRollbackError(t *testing.T) {
	store := newFakeStore(
		&models.Product{ID: 1, Stock: 10},
		&models.Product{ID: 2, Stock: 0},
	)
	store.incrementErr[1] = errors.New("connection reset")
	engine := NewEngine(store)

	err := engine.Reserve([]Item{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})

	var rbErr *RollbackError
	require.ErrorAs(t, err, &rbErr)
	assert.Equal(t, uint(1), rbErr.ProductID)

	// The decrement on product 1 is stranded; that is exactly what
	// RollbackError reports.
	assert.Equal(t, 8, store.products[1].Stock)
}

func TestReserveStoreErrorRollsBackAndWraps(t *testing.T) {
	store := newFakeStore(
		&models.Product{ID: 1, Stock: 10},
		&models.Product{ID: 2, Stock: 10},
	)
	dbErr := errors.New("deadlock detected")
	store.decrementErr[2] = dbErr
	engine := NewEngine(store)

	err := engine.Reserve([]Item{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 10, store.products[1].Stock)
	assert.Equal(t, 0, store.products[1].Sold)
}

func TestCheckAvailabilityMutatesNothing(t *testing.T) {
	store := newFakeStore(&models.Product{ID: 1, Stock: 5})
	engine := NewEngine(store)

	require.NoError(t, engine.CheckAvailability([]Item{{ProductID: 1, Quantity: 5}}))

	err := engine.CheckAvailability([]Item{{ProductID: 1, Quantity: 6}})
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	assert.Equal(t, 5, store.products[1].Stock)
}

func TestCheckAvailabilityUnknownProduct(t *testing.T) {
	engine := NewEngine(newFakeStore())

	err := engine.CheckAvailability([]Item{{ProductID: 42, Quantity: 1}})

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(42), notFound.ProductID)
}

func TestReleaseRestoresStockAndClampsSold(t *testing.T) {
	store := newFakeStore(&models.Product{ID: 1, Stock: 2, Sold: 1})
	engine := NewEngine(store)

	require.NoError(t, engine.Release([]Item{{ProductID: 1, Quantity: 3}}))

	assert.Equal(t, 5, store.products[1].Stock)
	assert.Equal(t, 0, store.products[1].Sold, "sold counter clamps at zero")
}

func TestReleaseFailureReturnsRollbackError(t *testing.T) {
	store := newFakeStore(&models.Product{ID: 1, Stock: 0, Sold: 2})
	store.incrementErr[1] = errors.New("connection reset")
	engine := NewEngine(store)

	err := engine.Release([]Item{{ProductID: 1, Quantity: 2}})

	var rbErr *RollbackError
	require.ErrorAs(t, err, &rbErr)
	assert.Equal(t, uint(1), rbErr.ProductID)
}
