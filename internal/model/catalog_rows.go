package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogRow is the persisted form of a catalog.
type CatalogRow struct {
	ID        string         `json:"id" gorm:"type:varchar(100);primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null"`
	Position  int            `json:"position" gorm:"default:0;comment:'Display order of the catalog'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductRow is the persisted form of a product. Images and variants are
// stored as JSON documents and decoded when the catalog is loaded.
type ProductRow struct {
	ID          string          `json:"id" gorm:"type:varchar(100);primaryKey"`
	CatalogID   string          `json:"catalog_id" gorm:"type:varchar(100);index;not null"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Images      string          `json:"images" gorm:"type:jsonb"`
	Variants    string          `json:"variants" gorm:"type:jsonb"`
	Position    int             `json:"position" gorm:"default:0;comment:'Display order within the catalog'"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}
