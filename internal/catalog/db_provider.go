package catalog

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amit-00/shop-kit/internal/model"
)

// LoadFromDB reads all catalogs and products from the database once and
// returns a provider over the materialized result. The database is not
// consulted again afterward; the catalog is static for the process
// lifetime.
func LoadFromDB(db *gorm.DB, log *zap.Logger) (*StaticProvider, error) {
	var catalogRows []model.CatalogRow
	if err := db.Order("position asc, id asc").Find(&catalogRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	var productRows []model.ProductRow
	if err := db.Order("catalog_id asc, position asc, id asc").Find(&productRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byCatalog := make(map[string][]model.Product, len(catalogRows))
	for _, row := range productRows {
		product, err := rowToProduct(row)
		if err != nil {
			// One bad row should not take the whole catalog down.
			log.Warn("Skipping malformed product row",
				zap.String("product_id", row.ID),
				zap.String("catalog_id", row.CatalogID),
				zap.Error(err))
			continue
		}
		byCatalog[row.CatalogID] = append(byCatalog[row.CatalogID], product)
	}

	catalogs := make([]model.Catalog, 0, len(catalogRows))
	for _, row := range catalogRows {
		catalogs = append(catalogs, model.Catalog{
			ID:       row.ID,
			Name:     row.Name,
			Products: byCatalog[row.ID],
		})
	}

	log.Info("Catalogs loaded from database",
		zap.Int("catalogs", len(catalogs)),
		zap.Int("products", len(productRows)))
	return NewStaticProvider(catalogs), nil
}

func rowToProduct(row model.ProductRow) (model.Product, error) {
	product := model.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
	}

	if row.Images != "" {
		if err := json.Unmarshal([]byte(row.Images), &product.Images); err != nil {
			return model.Product{}, fmt.Errorf("invalid images document: %w", err)
		}
	}
	if row.Variants != "" {
		if err := json.Unmarshal([]byte(row.Variants), &product.Variants); err != nil {
			return model.Product{}, fmt.Errorf("invalid variants document: %w", err)
		}
	}
	return product, nil
}
