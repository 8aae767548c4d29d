package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	BrandID     uint    `json:"brand_id" binding:"required"`
	ImageURL    string  `json:"image_url"`
	IsFeatured  bool    `json:"is_featured"`
}

// CreateProduct creates a new product with its initial stock
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		IsFeatured:  req.IsFeatured,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Created product %s (ID: %d) with stock %d", product.Name, product.ID, product.Stock)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProductRequest represents the request body for updating a product.
// Stock is deliberately absent: stock changes go through the restock
// endpoint so every stock write stays inside the inventory package.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"category_id"`
	BrandID     *uint    `json:"brand_id"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	IsFeatured  *bool    `json:"is_featured"`
}

// UpdateProduct updates product catalog fields
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		product.BrandID = *req.BrandID
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := config.DB.Omit("Stock", "Sold").Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Updated product %s (ID: %d)", product.Name, product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// RestockProduct adjusts a product's stock by a signed delta through the
// inventory store, so the no-negative-stock guard applies here too
func RestockProduct(c *gin.Context) {
	utils.LogInfo("RestockProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	store := inventory.NewStore(config.DB)
	ok, err := store.AdjustStock(uint(productID), req.Delta)
	if err != nil {
		utils.LogError("Failed to adjust stock for product %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to adjust stock", err.Error())
		return
	}
	if !ok {
		utils.BadRequest(c, "Stock adjustment rejected: product not found or stock would go negative", nil)
		return
	}

	product, err := store.FindByID(uint(productID))
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.LogInfo("Adjusted stock for product %d by %d, now %d", product.ID, req.Delta, product.Stock)
	utils.Success(c, "Stock adjusted successfully", gin.H{
		"product_id": product.ID,
		"stock":      product.Stock,
	})
}

// DeleteProduct deactivates a product so it no longer appears in the
// catalog; historical orders keep their snapshots
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Deleted product %s (ID: %d)", product.Name, product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}
