package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"brewhouse/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Checkout submits the current cart as an order through the authenticated
// request path and returns the created order. The cart is cleared only
// after the backend accepts the order, so a failed checkout keeps the
// selection intact.
func (c *Client) Checkout(ctx context.Context, cart *Cart, notes string) (*models.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.CheckoutRequest{Notes: notes}
	for _, item := range items {
		req.Items = append(req.Items, models.CheckoutItemRequest{
			CoffeeID: item.Product.ID,
			Quantity: item.Quantity,
		})
	}

	resp, err := c.Do(ctx, http.MethodPost, "/api/orders", req)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(resp.Data, &order); err != nil {
		return nil, err
	}

	cart.Clear()
	return &order, nil
}
