package model

import (
	"github.com/shopspring/decimal"
)

// Product is a single sellable item as served to the storefront.
// Products are immutable once loaded from the catalog provider.
type Product struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Price       decimal.Decimal      `json:"price"`
	Images      []string             `json:"images"`
	Description string               `json:"description,omitempty"`
	Variants    map[string][]Variant `json:"variants,omitempty"`
}

// Variant is one selectable option within a variant group,
// e.g. "Size" -> [S, M, L].
type Variant struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Image returns the product's primary image, or an empty string
// when the product has no images.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Catalog is a named, ordered collection of products. A product id is
// unique within its catalog only; no cross-catalog uniqueness is assumed.
type Catalog struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
