package checkout

import "alanshor-pos/internal/domain"

// Cart is the ordered line-item collection for one open transaction.
// At most one line exists per product; newly added products go to the front.
// Every line keeps quantity >= 1: an update that would drop a quantity to
// zero or below removes the line instead.
//
// Cart is not safe for concurrent use; the owning Session serializes access.
type Cart struct {
	lines []domain.LineItem
}

// Add puts one unit of p in the cart. If a line for p already exists its
// quantity is incremented, otherwise a new line is prepended with the
// product's name, price and image snapshotted. Stock is not checked.
func (c *Cart) Add(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	line := domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	}
	c.lines = append([]domain.LineItem{line}, c.lines...)
}

// SetQuantity overwrites the quantity of the line for productID. A quantity
// of zero or below removes the line. Unknown product IDs are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for productID. Unknown product IDs are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart contents in display order.
func (c *Cart) Lines() []domain.LineItem {
	out := make([]domain.LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}
