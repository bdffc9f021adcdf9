package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"brewhouse/config"
	"brewhouse/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type OrderController struct{}

// CreateOrder godoc
// @Summary Create order
// @Description Submit a cart snapshot as a new order. Totals are recomputed
// @Description from current coffee prices, never trusted from the client.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Order must contain at least one item"})
		return
	}

	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}
	defer tx.Rollback(ctx)

	items := []models.OrderItem{}
	total := 0.0
	for _, item := range req.Items {
		var name string
		var price float64
		err := tx.QueryRow(ctx,
			"SELECT name, price FROM coffees WHERE id=$1 AND is_active=true",
			item.CoffeeID).Scan(&name, &price)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Coffee %d not available", item.CoffeeID)})
			return
		}

		items = append(items, models.OrderItem{
			CoffeeID:   item.CoffeeID,
			CoffeeName: name,
			Quantity:   item.Quantity,
			Price:      price,
		})
		total += price * float64(item.Quantity)
	}

	now := time.Now()
	var orderID int
	err = tx.QueryRow(ctx,
		"INSERT INTO orders (user_id, total_amount, status, notes, created_at, updated_at) VALUES ($1,$2,'pending',$3,$4,$5) RETURNING id",
		userID, total, req.Notes, now, now).Scan(&orderID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	for i := range items {
		items[i].OrderID = orderID
		err = tx.QueryRow(ctx,
			"INSERT INTO order_items (order_id, coffee_id, quantity, price) VALUES ($1,$2,$3,$4) RETURNING id",
			orderID, items[i].CoffeeID, items[i].Quantity, items[i].Price).Scan(&items[i].ID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	order := models.Order{
		ID:          orderID,
		UserID:      userID,
		TotalAmount: total,
		Status:      "pending",
		Notes:       orderNotes(req.Notes),
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if email := c.GetString("user_email"); email != "" {
		go sendOrderConfirmation(email, order)
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created", "data": order})
}

func orderNotes(notes string) *string {
	if notes == "" {
		return nil
	}
	return &notes
}

func sendOrderConfirmation(email string, order models.Order) {
	svc, err := models.NewEmailService()
	if err != nil {
		return
	}
	if err := svc.SendOrderConfirmation(email, &order); err != nil {
		log.Printf("Failed to send order confirmation for order %d: %v", order.ID, err)
	}
}

// GetMyOrders godoc
// @Summary Get order history
// @Description Get the caller's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /api/orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	page, limit, offset := getPaginationParams(c, 10)

	var total int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE user_id=$1", userID).Scan(&total)

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, user_id, total_amount, status, notes, created_at, updated_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    orders,
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.PaginationResponse
// @Router /api/admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	status := c.Query("status")
	search := c.Query("search")

	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		where = append(where, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		where = append(where, fmt.Sprintf("CAST(id AS TEXT) LIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders"+whereClause, args...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := fmt.Sprintf(
		"SELECT id, user_id, total_amount, status, notes, created_at, updated_at FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    orders,
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get order details with line items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var order models.Order
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, user_id, total_amount, status, notes, created_at, updated_at FROM orders WHERE id=$1",
		id).Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT oi.id, oi.order_id, oi.coffee_id, COALESCE(cf.name, ''), oi.quantity, oi.price
		 FROM order_items oi LEFT JOIN coffees cf ON oi.coffee_id = cf.id
		 WHERE oi.order_id=$1 ORDER BY oi.id`, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order items"})
		return
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		rows.Scan(&item.ID, &item.OrderID, &item.CoffeeID, &item.CoffeeName, &item.Quantity, &item.Price)
		order.Items = append(order.Items, item)
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Status Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidOrderStatus(req.Status) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3", req.Status, time.Now(), id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated"})
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Order counts and revenue summary (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/admin/dashboard [get]
func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	ctx := context.Background()

	var totalOrders, pendingOrders, totalUsers int
	var totalRevenue float64

	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&totalOrders)
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE status='pending'").Scan(&pendingOrders)
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&totalUsers)
	config.DB.QueryRow(ctx, "SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status='completed'").Scan(&totalRevenue)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"total_orders":   totalOrders,
			"pending_orders": pendingOrders,
			"total_users":    totalUsers,
			"total_revenue":  totalRevenue,
		},
	})
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
