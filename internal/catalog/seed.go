package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/amit-00/shop-kit/internal/model"
)

// SeedCatalogs returns the built-in development catalogs used when no
// database is configured.
func SeedCatalogs() []model.Catalog {
	return []model.Catalog{
		{
			ID:   "featured",
			Name: "Featured",
			Products: []model.Product{
				{
					ID:          "1",
					Name:        "Minimalist Watch",
					Price:       decimal.RequireFromString("299.99"),
					Images:      []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&h=800&fit=crop"},
					Description: "Elegant timepiece with clean lines and premium materials. Perfect for everyday wear.",
				},
				{
					ID:          "2",
					Name:        "Modern Desk Lamp",
					Price:       decimal.RequireFromString("149.99"),
					Images:      []string{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&h=800&fit=crop"},
					Description: "Sleek adjustable lamp with LED technology. Ideal for home office or study space.",
				},
				{
					ID:          "3",
					Name:        "Wireless Headphones",
					Price:       decimal.RequireFromString("199.99"),
					Images:      []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&h=800&fit=crop"},
					Description: "Premium noise-cancelling headphones with exceptional sound quality and comfort.",
				},
				{
					ID:          "4",
					Name:        "Leather Backpack",
					Price:       decimal.RequireFromString("249.99"),
					Images:      []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&h=800&fit=crop"},
					Description: "Handcrafted genuine leather backpack with multiple compartments. Durable and stylish.",
				},
				{
					ID:          "5",
					Name:        "Ceramic Vase",
					Price:       decimal.RequireFromString("79.99"),
					Images:      []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=800&fit=crop"},
					Description: "Beautiful hand-glazed ceramic vase perfect for displaying fresh flowers or as standalone decor.",
				},
				{
					ID:          "6",
					Name:        "Wooden Speaker",
					Price:       decimal.RequireFromString("179.99"),
					Images:      []string{"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&h=800&fit=crop"},
					Description: "Natural wood Bluetooth speaker with rich, warm sound. Eco-friendly and elegant design.",
				},
			},
		},
		{
			ID:   "new-arrivals",
			Name: "New Arrivals",
			Products: []model.Product{
				{
					ID:          "7",
					Name:        "Smart Notebook",
					Price:       decimal.RequireFromString("39.99"),
					Images:      []string{"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800&h=800&fit=crop"},
					Description: "Reusable notebook that syncs with your digital devices. Write, scan, and organize seamlessly.",
				},
				{
					ID:          "8",
					Name:        "Minimalist Chair",
					Price:       decimal.RequireFromString("399.99"),
					Images:      []string{"https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=800&h=800&fit=crop"},
					Description: "Ergonomic design chair with premium materials. Comfortable for long work sessions.",
				},
				{
					ID:          "9",
					Name:        "Glass Water Bottle",
					Price:       decimal.RequireFromString("29.99"),
					Images:      []string{"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800&h=800&fit=crop"},
					Description: "BPA-free glass bottle with silicone sleeve for protection. Keep your drinks pure and fresh.",
				},
				{
					ID:          "10",
					Name:        "Bamboo Cutting Board",
					Price:       decimal.RequireFromString("49.99"),
					Images:      []string{"https://images.unsplash.com/photo-1594385208974-2e75f8d7bb48?w=800&h=800&fit=crop"},
					Description: "Sustainable bamboo cutting board with juice groove. Gentle on knives and easy to maintain.",
				},
			},
		},
	}
}
