package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"brewhouse/config"
	"brewhouse/libs"
	"brewhouse/models"
	"brewhouse/services"
	"brewhouse/utils"

	"github.com/gin-gonic/gin"
)

type CoffeeController struct {
	coffeeService *services.CoffeeService
}

func NewCoffeeController() *CoffeeController {
	return &CoffeeController{
		coffeeService: services.NewCoffeeService(),
	}
}

func coffeeCacheKey(page, limit int, search string) string {
	return fmt.Sprintf("coffees_list_p%d_l%d_s%s", page, limit, search)
}

func invalidateCoffeeCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "coffees_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllCoffees godoc
// @Summary Get all coffees
// @Description Get paginated list of coffees, optionally filtered by name
// @Tags Coffees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by coffee name"
// @Success 200 {object} models.PaginationResponse
// @Router /api/coffees [get]
func (ctrl *CoffeeController) GetAllCoffees(c *gin.Context) {
	page, limit, _ := getPaginationParams(c, 10)
	search := c.Query("search")

	cacheKey := coffeeCacheKey(page, limit, search)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	resp, err := ctrl.coffeeService.GetAllCoffees(page, limit, search)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve coffees"})
		return
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(resp)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, resp)
}

// GetCoffeeByID godoc
// @Summary Get coffee by ID
// @Description Get coffee details
// @Tags Coffees
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/coffees/{id} [get]
func (ctrl *CoffeeController) GetCoffeeByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	coffee, err := ctrl.coffeeService.GetCoffeeByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Coffee not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Coffee retrieved", "data": coffee})
}

// CreateCoffee godoc
// @Summary Create coffee
// @Description Create new coffee (Admin)
// @Tags Admin - Coffees
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Coffee name"
// @Param description formData string false "Description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Price"
// @Param image formData file false "Coffee image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/coffees [post]
func (ctrl *CoffeeController) CreateCoffee(c *gin.Context) {
	var req models.CreateCoffeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name, category_id, and a positive price are required"})
		return
	}

	if imageURL, ok := ctrl.handleImageUpload(c); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	coffee, err := ctrl.coffeeService.CreateCoffee(req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create coffee: " + err.Error()})
		return
	}

	invalidateCoffeeCache()

	c.JSON(201, gin.H{"success": true, "message": "Coffee created successfully", "data": coffee})
}

// UpdateCoffee godoc
// @Summary Update coffee
// @Description Update coffee (Admin)
// @Tags Admin - Coffees
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/coffees/{id} [patch]
func (ctrl *CoffeeController) UpdateCoffee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateCoffeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if imageURL, ok := ctrl.handleImageUpload(c); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	coffee, err := ctrl.coffeeService.UpdateCoffee(id, req)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	invalidateCoffeeCache()

	c.JSON(200, gin.H{"success": true, "message": "Coffee updated successfully", "data": coffee})
}

// DeleteCoffee godoc
// @Summary Delete coffee
// @Description Deactivate coffee (Admin)
// @Tags Admin - Coffees
// @Security BearerAuth
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/coffees/{id} [delete]
func (ctrl *CoffeeController) DeleteCoffee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid coffee ID"})
		return
	}

	if err := ctrl.coffeeService.DeleteCoffee(id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	invalidateCoffeeCache()

	c.JSON(200, gin.H{"success": true, "message": "Coffee deleted"})
}

// handleImageUpload saves an optional multipart image. Returns ok=false when
// no file was sent; aborts the request with a 400 when the file is rejected.
func (ctrl *CoffeeController) handleImageUpload(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	localPath, err := utils.UploadFile(c, file, "coffees")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		c.Abort()
		return "", false
	}

	if url, err := libs.OffloadImage(localPath); err == nil {
		return url, true
	}

	return "/uploads/" + localPath, true
}
