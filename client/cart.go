package client

import (
	"encoding/json"
	"strconv"
	"sync"
)

// Price tolerates the backend sometimes serializing prices as strings.
// Anything that does not parse as a number decodes to zero.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*p = Price(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Price(n)
			return nil
		}
	}

	*p = 0
	return nil
}

// Product is the subset of a coffee the cart needs to render and price a
// line item.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	ImageURL string `json:"image_url"`
}

// LineItem is one product-and-quantity pair in the cart. Quantity is
// always at least 1; a line driven to zero is removed instead.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the shopper's pending selection. Product IDs are unique
// across line items and every mutation is persisted, so the cart survives
// a restart. Totals are derived from the line items on demand, never
// cached.
type Cart struct {
	mu    sync.Mutex
	store *Store
	items []LineItem
}

// NewCart restores the persisted cart from store. Malformed persisted
// data yields an empty cart.
func NewCart(store *Store) *Cart {
	cart := &Cart{store: store}
	store.Get(keyCart, &cart.items)
	return cart
}

// AddItem merges the product into the cart: an existing line item has its
// quantity incremented, otherwise a new line is appended. Quantities below
// 1 count as 1.
func (c *Cart) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			c.persist()
			return
		}
	}

	c.items = append(c.items, LineItem{Product: p, Quantity: quantity})
	c.persist()
}

// RemoveItem deletes the line item for productID. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateItemQuantity sets the quantity for productID. A quantity of zero
// or less removes the line item.
func (c *Cart) UpdateItemQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Items returns a snapshot of the line items.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of all line-item quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all line items.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += float64(item.Product.Price) * float64(item.Quantity)
	}
	return total
}

// persist is called with c.mu held.
func (c *Cart) persist() {
	items := c.items
	if items == nil {
		items = []LineItem{}
	}
	c.store.Set(keyCart, items)
}
