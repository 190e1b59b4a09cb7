package cart

import (
	"github.com/amit-00/shop-kit/internal/model"
)

// Command is a tagged cart mutation. Commands are applied by Apply,
// which is the single place cart state transitions happen.
type Command interface {
	isCommand()
}

// AddItem inserts a new line item with quantity 1, or bumps the quantity
// of an existing line item for the same product id by 1. The item's
// title, image and price are snapshots taken at add time.
type AddItem struct {
	Item model.LineItem
}

// RemoveItem deletes the line item for a product id. Absent ids are a
// no-op, not an error.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets a line item's quantity verbatim. A quantity of
// zero or less removes the item. Absent ids are a no-op.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (ClearCart) isCommand()      {}

// Apply runs one command against a cart and returns the next cart state.
// It is pure: the input cart is never mutated.
func Apply(state model.Cart, cmd Command) model.Cart {
	switch c := cmd.(type) {
	case AddItem:
		next := state.Clone()
		if existing, ok := next[c.Item.ID]; ok {
			existing.Quantity++
			next[c.Item.ID] = existing
			return next
		}
		item := c.Item
		item.Quantity = 1
		next[item.ID] = item
		return next

	case RemoveItem:
		if _, ok := state[c.ID]; !ok {
			return state
		}
		next := state.Clone()
		delete(next, c.ID)
		return next

	case UpdateQuantity:
		if c.Quantity <= 0 {
			return Apply(state, RemoveItem{ID: c.ID})
		}
		existing, ok := state[c.ID]
		if !ok {
			return state
		}
		next := state.Clone()
		existing.Quantity = c.Quantity
		next[c.ID] = existing
		return next

	case ClearCart:
		return model.Cart{}

	default:
		return state
	}
}
