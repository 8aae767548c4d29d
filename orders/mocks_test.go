package orders

import (
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
)

// memProductStore backs both the inventory engine and the assembly's
// product reader in tests, so stock assertions see every mutation.
type memProductStore struct {
	products     map[uint]*models.Product
	decrementErr map[uint]error
	incrementErr map[uint]error
}

func newMemProducts(products ...*models.Product) *memProductStore {
	s := &memProductStore{
		products:     make(map[uint]*models.Product),
		decrementErr: make(map[uint]error),
		incrementErr: make(map[uint]error),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *memProductStore) FindByID(productID uint) (*models.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, &inventory.ProductNotFoundError{ProductID: productID}
	}
	copied := *p
	return &copied, nil
}

func (s *memProductStore) DecrementStock(productID uint, qty int) (bool, error) {
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

func (s *memProductStore) IncrementStock(productID uint, qty int) error {
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

func (s *memProductStore) AdjustStock(productID uint, delta int) (bool, error) {
	p, ok := s.products[productID]
	if !ok || p.Stock+delta < 0 {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

// memOrderStore records created and saved orders.
type memOrderStore struct {
	created   []*models.Order
	saved     []*models.Order
	createErr error
	saveErr   error
}

func (s *memOrderStore) Create(order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.ID = uint(len(s.created) + 1)
	s.created = append(s.created, order)
	return nil
}

func (s *memOrderStore) Save(order *models.Order) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, order)
	return nil
}

// memCouponStore keys coupons by normalized code.
type memCouponStore struct {
	coupons      map[string]*models.Coupon
	incrementErr error
	decrementErr error
}

func newMemCoupons(coupons ...*models.Coupon) *memCouponStore {
	s := &memCouponStore{coupons: make(map[string]*models.Coupon)}
	for _, c := range coupons {
		s.coupons[coupon.NormalizeCode(c.Code)] = c
	}
	return s
}

func (s *memCouponStore) FindByCode(code string) (*models.Coupon, error) {
	c, ok := s.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return nil, coupon.ErrCouponNotFound
	}
	return c, nil
}

func (s *memCouponStore) IncrementUsage(code string) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	if c, ok := s.coupons[coupon.NormalizeCode(code)]; ok {
		c.UsedCount++
	}
	return nil
}

func (s *memCouponStore) DecrementUsage(code string) error {
	if s.decrementErr != nil {
		return s.decrementErr
	}
	if c, ok := s.coupons[coupon.NormalizeCode(code)]; ok && c.UsedCount > 0 {
		c.UsedCount--
	}
	return nil
}
