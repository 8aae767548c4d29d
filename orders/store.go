package orders

import (
	"errors"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"gorm.io/gorm"
)

// ProductReader is the read-only product lookup the assembly uses for
// price/name snapshots. inventory.NewStore satisfies it.
type ProductReader interface {
	FindByID(productID uint) (*models.Product, error)
}

// OrderStore persists orders. Orders are append-only: Save is used by the
// lifecycle for the handful of mutable fields, never to rewrite items.
type OrderStore interface {
	Create(order *models.Order) error
	Save(order *models.Order) error
}

// CouponStore looks up coupons by normalized code and maintains the
// used_count counter.
type CouponStore interface {
	// FindByCode returns coupon.ErrCouponNotFound when no coupon matches.
	FindByCode(code string) (*models.Coupon, error)
	IncrementUsage(code string) error
	// DecrementUsage compensates a premature increment; clamped at zero.
	DecrementUsage(code string) error
}

type gormOrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) OrderStore {
	return &gormOrderStore{db: db}
}

func (s *gormOrderStore) Create(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *gormOrderStore) Save(order *models.Order) error {
	return s.db.Save(order).Error
}

type gormCouponStore struct {
	db *gorm.DB
}

func NewCouponStore(db *gorm.DB) CouponStore {
	return &gormCouponStore{db: db}
}

func (s *gormCouponStore) FindByCode(code string) (*models.Coupon, error) {
	var cpn models.Coupon
	if err := s.db.Where("code = ?", coupon.NormalizeCode(code)).First(&cpn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, err
	}
	return &cpn, nil
}

func (s *gormCouponStore) IncrementUsage(code string) error {
	return s.db.Model(&models.Coupon{}).
		Where("code = ?", code).
		UpdateColumn("used_count", gorm.Expr("used_count + ?", 1)).Error
}

func (s *gormCouponStore) DecrementUsage(code string) error {
	return s.db.Model(&models.Coupon{}).
		Where("code = ?", code).
		UpdateColumn("used_count", gorm.Expr("GREATEST(used_count - ?, 0)", 1)).Error
}
