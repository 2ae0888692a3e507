/*
Package catalog holds the sellable side of the shop: products with their
per-language translations, categories and supported languages.
*/
package catalog

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLanguageNotFound = errors.New("language not found")
)

// Product Sellable product. Names and descriptions live in translations;
// the product row itself carries only price and images.
type Product struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	Price     float64        `json:"price"`
	Images    []string       `gorm:"serializer:json" json:"images"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// ProductTranslation Per-language product content.
type ProductTranslation struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	ProductID   string    `gorm:"type:char(36);index" json:"productID"`
	LanguageID  string    `gorm:"type:char(36);index" json:"languageID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	Ingredients string    `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ProductTranslation) TableName() string { return "product_translations" }

// ProductWithTranslation Product joined with its content in one language.
type ProductWithTranslation struct {
	Product     Product             `json:"product"`
	Translation *ProductTranslation `json:"translation,omitempty"`
}

// Category Product grouping; content lives in translations.
type Category struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "categories" }

// CategoryTranslation Per-language category name.
type CategoryTranslation struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"id"`
	CategoryID string `gorm:"type:char(36);index" json:"categoryID"`
	LanguageID string `gorm:"type:char(36);index" json:"languageID"`
	Name       string `json:"name"`
}

func (CategoryTranslation) TableName() string { return "category_translations" }

// ProductCategory Product-to-category assignment.
type ProductCategory struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"id"`
	ProductID  string `gorm:"type:char(36);index" json:"productID"`
	CategoryID string `gorm:"type:char(36);index" json:"categoryID"`
}

func (ProductCategory) TableName() string { return "product_categories" }

// Language Supported shop language.
type Language struct {
	ID       string `gorm:"type:char(36);primaryKey" json:"id"`
	Language string `json:"language"`
	Code     string `gorm:"type:varchar(8);uniqueIndex" json:"code"`
}

func (Language) TableName() string { return "languages" }
