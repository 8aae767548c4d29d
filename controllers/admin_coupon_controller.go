package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// CreateCouponRequest represents the request body for creating a new coupon
type CreateCouponRequest struct {
	Code          string    `json:"code" binding:"required"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64   `json:"discount_value" binding:"required,gt=0"`
	MinPurchase   float64   `json:"min_purchase"`
	MaxDiscount   *float64  `json:"max_discount"`
	ExpiryDate    time.Time `json:"expiry_date" binding:"required"`
	UsageLimit    *int      `json:"usage_limit"`
}

// CreateCoupon creates a new coupon
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	req.Code = coupon.NormalizeCode(req.Code)
	utils.LogInfo("Processing coupon creation with code: %s", req.Code)

	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		utils.LogError("Invalid percentage value %.2f for coupon %s", req.DiscountValue, req.Code)
		utils.BadRequest(c, "Percentage discount cannot exceed 100", nil)
		return
	}
	if req.ExpiryDate.Before(time.Now()) {
		utils.LogError("Invalid expiry date for coupon code %s: date is in the past", req.Code)
		utils.BadRequest(c, "Expiry date must be in the future", nil)
		return
	}
	if req.UsageLimit != nil && *req.UsageLimit < 1 {
		utils.BadRequest(c, "Usage limit must be at least 1", nil)
		return
	}

	var existing models.Coupon
	if err := config.DB.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		utils.LogError("Coupon code already exists: %s", req.Code)
		utils.Conflict(c, "Coupon code already exists", nil)
		return
	}

	cpn := models.Coupon{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinPurchase:   req.MinPurchase,
		MaxDiscount:   req.MaxDiscount,
		ExpiryDate:    req.ExpiryDate,
		UsageLimit:    req.UsageLimit,
		IsActive:      true,
	}
	if err := config.DB.Create(&cpn).Error; err != nil {
		utils.LogError("Failed to create coupon %s: %v", req.Code, err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}

	utils.LogInfo("Created coupon %s (ID: %d)", cpn.Code, cpn.ID)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": cpn})
}

// ListCoupons lists all coupons for the admin panel
func ListCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}
	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": coupons})
}

// UpdateCouponRequest represents the request body for updating a coupon
type UpdateCouponRequest struct {
	DiscountValue *float64   `json:"discount_value"`
	MinPurchase   *float64   `json:"min_purchase"`
	MaxDiscount   *float64   `json:"max_discount"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	UsageLimit    *int       `json:"usage_limit"`
	IsActive      *bool      `json:"is_active"`
}

// UpdateCoupon updates an existing coupon's terms or toggles it
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var cpn models.Coupon
	if err := config.DB.First(&cpn, couponID).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	if req.DiscountValue != nil {
		cpn.DiscountValue = *req.DiscountValue
	}
	if req.MinPurchase != nil {
		cpn.MinPurchase = *req.MinPurchase
	}
	if req.MaxDiscount != nil {
		cpn.MaxDiscount = req.MaxDiscount
	}
	if req.ExpiryDate != nil {
		cpn.ExpiryDate = *req.ExpiryDate
	}
	if req.UsageLimit != nil {
		cpn.UsageLimit = req.UsageLimit
	}
	if req.IsActive != nil {
		cpn.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&cpn).Error; err != nil {
		utils.LogError("Failed to update coupon %d: %v", cpn.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", err.Error())
		return
	}

	utils.LogInfo("Updated coupon %s (ID: %d)", cpn.Code, cpn.ID)
	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": cpn})
}

// DeleteCoupon soft-deletes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var cpn models.Coupon
	if err := config.DB.First(&cpn, couponID).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&cpn).Error; err != nil {
		utils.LogError("Failed to delete coupon %d: %v", cpn.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", err.Error())
		return
	}

	utils.LogInfo("Deleted coupon %s (ID: %d)", cpn.Code, cpn.ID)
	utils.Success(c, "Coupon deleted successfully", nil)
}
