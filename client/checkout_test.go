package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhouse/models"
)

func TestCheckoutSubmitsCartAndClears(t *testing.T) {
	var got models.CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusCreated, "Order created", models.Order{
			ID: 42, TotalAmount: 12.0, Status: "pending",
		})
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "access-1", RefreshToken: "refresh-1"})

	cart := NewCart(store)
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4.5}, 2)
	cart.AddItem(Product{ID: 2, Name: "Espresso", Price: 3}, 1)

	c := New(srv.URL, store)
	order, err := c.Checkout(context.Background(), cart, "no sugar")
	require.NoError(t, err)

	assert.Equal(t, 42, order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "no sugar", got.Notes)
	require.Len(t, got.Items, 2)
	assert.Equal(t, models.CheckoutItemRequest{CoffeeID: 1, Quantity: 2}, got.Items[0])
	assert.Equal(t, models.CheckoutItemRequest{CoffeeID: 2, Quantity: 1}, got.Items[1])

	assert.Empty(t, cart.Items(), "a successful checkout empties the cart")
	assert.Empty(t, NewCart(OpenStore(store.path)).Items())
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, "Coffee not found or unavailable", nil)
	}))
	defer srv.Close()

	store := newTestStore(t)
	saveSession(store, Session{AccessToken: "access-1", RefreshToken: "refresh-1"})

	cart := NewCart(store)
	cart.AddItem(Product{ID: 1, Name: "Latte", Price: 4.5}, 2)

	c := New(srv.URL, store)
	_, err := c.Checkout(context.Background(), cart, "")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Len(t, cart.Items(), 1, "a failed checkout keeps the cart intact")
}

func TestCheckoutEmptyCart(t *testing.T) {
	store := newTestStore(t)
	c := New("http://unused", store)

	_, err := c.Checkout(context.Background(), NewCart(store), "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
