package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return OpenStore(filepath.Join(t.TempDir(), "state.json"))
}

func TestPriceUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `4.5`, 4.5},
		{"integer", `3`, 3},
		{"numeric string", `"4.50"`, 4.5},
		{"garbage string", `"free"`, 0},
		{"null", `null`, 0},
		{"object", `{"amount":4.5}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tc.in), &p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, float64(p))
		})
	}
}

func TestCartAddItemMergesByProductID(t *testing.T) {
	cart := NewCart(newTestStore(t))
	espresso := Product{ID: 1, Name: "Espresso", Price: 3}

	cart.AddItem(espresso, 1)
	cart.AddItem(espresso, 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	cart := NewCart(newTestStore(t))

	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 0)
	cart.AddItem(Product{ID: 2, Name: "Mocha", Price: 5}, -3)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartTotals(t *testing.T) {
	cart := NewCart(newTestStore(t))

	var stringPriced Product
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":1,"name":"Latte","price":"4.50"}`), &stringPriced))

	cart.AddItem(stringPriced, 2)
	cart.AddItem(Product{ID: 2, Name: "Espresso", Price: 3}, 1)

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 12.00, cart.TotalPrice())
}

func TestCartTotalsIgnoreOrder(t *testing.T) {
	a := Product{ID: 1, Name: "Latte", Price: 4.5}
	b := Product{ID: 2, Name: "Espresso", Price: 3}
	c := Product{ID: 3, Name: "Mocha", Price: 5.25}

	first := NewCart(newTestStore(t))
	first.AddItem(a, 2)
	first.AddItem(b, 1)
	first.AddItem(c, 3)

	second := NewCart(newTestStore(t))
	second.AddItem(c, 3)
	second.AddItem(a, 2)
	second.AddItem(b, 1)

	assert.Equal(t, first.TotalItems(), second.TotalItems())
	assert.Equal(t, first.TotalPrice(), second.TotalPrice())
}

func TestCartUpdateItemQuantity(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 2)

	cart.UpdateItemQuantity(1, 5)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	cart.UpdateItemQuantity(1, 0)
	assert.Empty(t, cart.Items())

	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 2)
	cart.UpdateItemQuantity(1, -5)
	assert.Empty(t, cart.Items())
}

func TestCartRemoveAbsentItemIsNoOp(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 1)

	cart.RemoveItem(99)

	assert.Len(t, cart.Items(), 1)
}

func TestCartPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	cart := NewCart(OpenStore(path))
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4.5}, 2)
	cart.AddItem(Product{ID: 2, Name: "Espresso", Price: 3}, 1)

	reloaded := NewCart(OpenStore(path))
	assert.Equal(t, cart.Items(), reloaded.Items())
	assert.Equal(t, 12.00, reloaded.TotalPrice())
}

func TestCartClearPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	cart := NewCart(OpenStore(path))
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4}, 2)
	cart.Clear()

	reloaded := NewCart(OpenStore(path))
	assert.Empty(t, reloaded.Items())
	assert.Equal(t, 0, reloaded.TotalItems())
	assert.Equal(t, 0.0, reloaded.TotalPrice())
}

func TestCartLoadsEmptyFromCorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cart":"not a list"}`), 0o600))

	cart := NewCart(OpenStore(path))

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.TotalPrice())
}
