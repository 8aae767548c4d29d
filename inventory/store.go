package inventory

import (
	"errors"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"gorm.io/gorm"
)

// ProductStore is the only surface through which Product.Stock and
// Product.Sold may be mutated. Everything else in the codebase reads
// products but never writes these two counters.
type ProductStore interface {
	// FindByID returns the product or a *ProductNotFoundError.
	FindByID(productID uint) (*models.Product, error)
	// DecrementStock atomically applies stock -= qty, sold += qty, guarded
	// by stock >= qty. It returns false (and no error) when the guard did
	// not match, i.e. stock was consumed by a concurrent order.
	DecrementStock(productID uint, qty int) (bool, error)
	// IncrementStock applies stock += qty and sold -= qty with sold clamped
	// at zero. Unconditional: addition is commutative and the clamp keeps
	// the sold counter from going negative.
	IncrementStock(productID uint, qty int) error
	// AdjustStock applies an admin restock/correction: stock += delta,
	// guarded so stock cannot go negative. Sold is untouched. Returns
	// false when the guard did not match.
	AdjustStock(productID uint, delta int) (bool, error)
}

type gormProductStore struct {
	db *gorm.DB
}

// NewStore returns a ProductStore backed by the given gorm handle.
func NewStore(db *gorm.DB) ProductStore {
	return &gormProductStore{db: db}
}

func (s *gormProductStore) FindByID(productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ProductNotFoundError{ProductID: productID}
		}
		return nil, err
	}
	return &product, nil
}

func (s *gormProductStore) DecrementStock(productID uint, qty int) (bool, error) {
	res := s.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumns(map[string]interface{}{
			"stock": gorm.Expr("stock - ?", qty),
			"sold":  gorm.Expr("sold + ?", qty),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormProductStore) IncrementStock(productID uint, qty int) error {
	return s.db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumns(map[string]interface{}{
			"stock": gorm.Expr("stock + ?", qty),
			"sold":  gorm.Expr("GREATEST(sold - ?, 0)", qty),
		}).Error
}

func (s *gormProductStore) AdjustStock(productID uint, delta int) (bool, error) {
	res := s.db.Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
