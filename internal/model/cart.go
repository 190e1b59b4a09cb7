package model

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product's entry in a cart. Title, image and price are
// snapshots captured when the item was added; later catalog changes do
// not flow back into existing line items.
type LineItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart maps a product id to its line item. A cart never holds two line
// items for the same product id.
type Cart map[string]LineItem

// Clone returns a shallow copy of the cart. Line items are value types,
// so the copy is safe to mutate independently.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, item := range c {
		out[id] = item
	}
	return out
}

// ItemCount sums the quantities of all line items.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Total sums price * quantity over all line items. It is always
// recomputed from the line items, never cached.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
