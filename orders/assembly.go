package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// PlaceOrderItem is one requested line: product and quantity. Prices come
// from the catalog at placement time, never from the client.
type PlaceOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// PlaceOrderInput is everything checkout needs to assemble an order.
type PlaceOrderInput struct {
	UserID          uint
	Items           []PlaceOrderItem
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	CouponCode      string
}

// Service assembles orders. The sequencing inside PlaceOrder is load-
// bearing: stock is pre-checked before any mutation, the coupon is
// re-validated against the server-computed subtotal, stock is committed
// (with rollback on partial failure), and only then is the coupon's
// used_count incremented, so a coupon is never consumed by an order that
// failed to reserve stock.
type Service struct {
	products ProductReader
	orders   OrderStore
	coupons  CouponStore
	stock    *inventory.Engine
	now      func() time.Time
}

func NewService(products ProductReader, orders OrderStore, coupons CouponStore, stock *inventory.Engine) *Service {
	return &Service{
		products: products,
		orders:   orders,
		coupons:  coupons,
		stock:    stock,
		now:      time.Now,
	}
}

// PlaceOrder runs the full checkout sequence and returns the created order.
// Any failure aborts the whole operation with no net stock change; the one
// error that cannot be recovered locally is *inventory.RollbackError, which
// means a compensating write failed and the caller must alert on it.
func (s *Service) PlaceOrder(in PlaceOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, ErrInvalidQuantity)
		}
	}

	// Snapshot names, prices and images, and compute the items subtotal.
	reserve := make([]inventory.Item, 0, len(in.Items))
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	var itemsPrice float64
	for _, item := range in.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		lineTotal := product.Price * float64(item.Quantity)
		itemsPrice += lineTotal
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Total:     round2(lineTotal),
		})
		reserve = append(reserve, inventory.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	itemsPrice = round2(itemsPrice)

	// Advisory pre-check: fail the whole order before any mutation.
	if err := s.stock.CheckAvailability(reserve); err != nil {
		return nil, err
	}

	// Re-validate the coupon against the server-computed subtotal.
	var discount float64
	var appliedCode string
	if in.CouponCode != "" {
		cpn, err := s.coupons.FindByCode(coupon.NormalizeCode(in.CouponCode))
		if err != nil {
			return nil, err
		}
		discount, err = coupon.Validate(cpn, itemsPrice, s.now())
		if err != nil {
			return nil, err
		}
		appliedCode = cpn.Code
	}

	// Commit the reservation. Reserve rolls back its own partial commits.
	if err := s.stock.Reserve(reserve); err != nil {
		return nil, err
	}

	// Consume the coupon only once stock is committed.
	if appliedCode != "" {
		if err := s.coupons.IncrementUsage(appliedCode); err != nil {
			if rbErr := s.stock.Release(reserve); rbErr != nil {
				return nil, rbErr
			}
			return nil, fmt.Errorf("failed to record coupon usage for %s: %w", appliedCode, err)
		}
	}

	shipping := ShippingFor(itemsPrice)
	tax := TaxFor(itemsPrice)
	placedAt := s.now()

	order := &models.Order{
		OrderNumber:     NewOrderNumber(placedAt),
		UserID:          in.UserID,
		OrderItems:      orderItems,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		Status:          models.OrderStatusPending,
		ItemsPrice:      itemsPrice,
		ShippingPrice:   shipping,
		TaxPrice:        tax,
		Discount:        discount,
		TotalPrice:      round2(itemsPrice + shipping + tax - discount),
		CouponCode:      appliedCode,
	}

	if err := s.orders.Create(order); err != nil {
		if appliedCode != "" {
			if dErr := s.coupons.DecrementUsage(appliedCode); dErr != nil {
				utils.LogError("Failed to release coupon %s after order create failure: %v", appliedCode, dErr)
			}
		}
		if rbErr := s.stock.Release(reserve); rbErr != nil {
			return nil, rbErr
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// NewOrderNumber generates a unique human-readable order number, e.g.
// ORD-20260828-9F4C21AB.
func NewOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}
