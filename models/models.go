package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered customer or administrator
type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin" gorm:"default:false"`
	IsBlocked bool   `json:"is_blocked" gorm:"default:false"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
}

// Brand represents a cosmetics brand
type Brand struct {
	gorm.Model
	Name     string    `json:"name" gorm:"uniqueIndex"`
	Products []Product `json:"products,omitempty"`
}

// Product represents a product in the catalog.
//
// Stock and Sold are mutated only through the inventory package; every write
// is a per-row conditional update, so a reservation can never drive Stock
// below zero and a restoration can never drive Sold below zero.
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Sold        int            `json:"sold" gorm:"default:0"`
	CategoryID  uint           `json:"category_id"`
	Category    Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	BrandID     uint           `json:"brand_id"`
	Brand       Brand          `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	ImageURL    string         `json:"image_url"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	IsFeatured  bool           `json:"is_featured" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
