// Package menu implements the restaurant's item catalog.
package menu

import "home-food/internal/models"

// Catalog holds the sellable items and their unit prices. Display order
// matches the order items were first added in.
type Catalog struct {
	prices map[string]float64
	names  []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{prices: make(map[string]float64)}
}

// AddItem inserts or overwrites the price for name. Re-adding an existing
// item updates its price and keeps its original menu position.
func (c *Catalog) AddItem(name string, price float64) {
	if _, ok := c.prices[name]; !ok {
		c.names = append(c.names, name)
	}
	c.prices[name] = price
}

// PriceOf returns the stored price for name. The second return reports
// whether the item exists; unknown names are not an error at this layer.
func (c *Catalog) PriceOf(name string) (float64, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// Items returns the menu in insertion order.
func (c *Catalog) Items() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(c.names))
	for _, name := range c.names {
		items = append(items, models.MenuItem{Name: name, Price: c.prices[name]})
	}
	return items
}

// DefaultCatalog returns a catalog seeded with the house menu.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.AddItem("Nasi Goreng", 10)
	c.AddItem("Soto Ayam", 8)
	c.AddItem("Mie Goreng", 9)
	c.AddItem("Ifumie Goreng", 11)
	c.AddItem("Lontong Sayur", 14)
	c.AddItem("Sate Ayam", 7)
	return c
}
