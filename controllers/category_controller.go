package controllers

import (
	"context"
	"strconv"
	"time"

	"brewhouse/config"
	"brewhouse/models"
	"brewhouse/repositories"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	coffeeRepo *repositories.CoffeeRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{
		coffeeRepo: repositories.NewCoffeeRepository(),
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.coffeeRepo.GetAllCategories()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create new category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	var exists int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM categories WHERE LOWER(name)=LOWER($1)", req.Name).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category already exists"})
		return
	}

	var id int
	var createdAt time.Time
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO categories (name, is_active, created_at) VALUES ($1, true, $2) RETURNING id, created_at",
		req.Name, time.Now()).Scan(&id, &createdAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Category created",
		"data":    models.Category{ID: id, Name: req.Name, IsActive: true, CreatedAt: createdAt},
	})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Update category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		"UPDATE categories SET name=$1 WHERE id=$2", req.Name, id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated"})
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Delete category (Admin). Fails when coffees still reference it.
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var inUse int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM coffees WHERE category_id=$1 AND is_active=true", id).Scan(&inUse)
	if inUse > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category still has active coffees"})
		return
	}

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM categories WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted"})
}
