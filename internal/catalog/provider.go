// Package catalog supplies the read-only product catalogs the
// storefront renders and searches. Catalogs are loaded once and never
// mutated afterward, so they are safe to share without locking.
package catalog

import (
	"github.com/amit-00/shop-kit/internal/model"
)

// Provider exposes the catalogs available to the storefront.
type Provider interface {
	// Catalogs returns all catalogs keyed by catalog id.
	Catalogs() map[string]model.Catalog
	// Products flattens all catalogs into one list, preserving catalog
	// order and each catalog's product order. This is the search corpus.
	Products() []model.Product
	// ProductByID scans catalogs in order for a product id and returns
	// the first match. Product ids are only unique within one catalog.
	ProductByID(id string) (model.Product, bool)
}

// StaticProvider serves a fixed set of catalogs from memory.
type StaticProvider struct {
	catalogs map[string]model.Catalog
	// order preserves the catalog sequence for lookups and listings.
	order []string
}

// NewStaticProvider builds a provider over the given catalogs, keeping
// their order for cross-catalog product lookups.
func NewStaticProvider(catalogs []model.Catalog) *StaticProvider {
	p := &StaticProvider{
		catalogs: make(map[string]model.Catalog, len(catalogs)),
		order:    make([]string, 0, len(catalogs)),
	}
	for _, c := range catalogs {
		p.catalogs[c.ID] = c
		p.order = append(p.order, c.ID)
	}
	return p
}

func (p *StaticProvider) Catalogs() map[string]model.Catalog {
	return p.catalogs
}

func (p *StaticProvider) Products() []model.Product {
	out := make([]model.Product, 0)
	for _, id := range p.order {
		out = append(out, p.catalogs[id].Products...)
	}
	return out
}

func (p *StaticProvider) ProductByID(id string) (model.Product, bool) {
	for _, catalogID := range p.order {
		for _, product := range p.catalogs[catalogID].Products {
			if product.ID == id {
				return product, true
			}
		}
	}
	return model.Product{}, false
}
