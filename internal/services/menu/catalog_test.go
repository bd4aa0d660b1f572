package menu

import "testing"

func TestCatalogAddAndPriceOf(t *testing.T) {
	c := NewCatalog()
	c.AddItem("Nasi Goreng", 10)

	price, ok := c.PriceOf("Nasi Goreng")
	if !ok || price != 10 {
		t.Fatalf("PriceOf(Nasi Goreng) = %v, %v; want 10, true", price, ok)
	}

	// Re-adding overwrites the price.
	c.AddItem("Nasi Goreng", 12)
	price, ok = c.PriceOf("Nasi Goreng")
	if !ok || price != 12 {
		t.Fatalf("PriceOf after overwrite = %v, %v; want 12, true", price, ok)
	}

	if _, ok := c.PriceOf("Rendang"); ok {
		t.Fatal("expected PriceOf to report absence for unknown item")
	}
}

func TestCatalogItemsOrder(t *testing.T) {
	c := NewCatalog()
	c.AddItem("Soto Ayam", 8)
	c.AddItem("Mie Goreng", 9)
	c.AddItem("Sate Ayam", 7)
	// Overwriting must not change the display position.
	c.AddItem("Soto Ayam", 8.5)

	items := c.Items()
	want := []string{"Soto Ayam", "Mie Goreng", "Sate Ayam"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, name)
		}
	}
	if items[0].Price != 8.5 {
		t.Errorf("expected overwritten price 8.5, got %v", items[0].Price)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if got := len(c.Items()); got != 6 {
		t.Fatalf("expected 6 seeded items, got %d", got)
	}
	price, ok := c.PriceOf("Lontong Sayur")
	if !ok || price != 14 {
		t.Fatalf("PriceOf(Lontong Sayur) = %v, %v; want 14, true", price, ok)
	}
}
