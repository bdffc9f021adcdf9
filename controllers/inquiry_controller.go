package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"brewhouse/config"
	"brewhouse/models"

	"github.com/gin-gonic/gin"
)

type InquiryController struct{}

// CreateInquiry godoc
// @Summary Submit inquiry
// @Description Submit a contact-form inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body models.InquiryRequest true "Inquiry Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/inquiries [post]
func (ctrl *InquiryController) CreateInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name, email and message are required"})
		return
	}

	inquiry := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO inquiries (name, email, subject, message, created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at",
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, time.Now()).Scan(&inquiry.ID, &inquiry.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to submit inquiry"})
		return
	}

	go notifyInquiry(inquiry)

	c.JSON(201, gin.H{"success": true, "message": "Inquiry submitted", "data": inquiry})
}

func notifyInquiry(inquiry models.Inquiry) {
	svc, err := models.NewEmailService()
	if err != nil {
		return
	}
	if err := svc.SendInquiryNotification(&inquiry); err != nil {
		log.Printf("Failed to send inquiry notification %d: %v", inquiry.ID, err)
	}
}

// GetAllInquiries godoc
// @Summary Get all inquiries
// @Description Get paginated list of inquiries (Admin)
// @Tags Admin - Inquiries
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /api/inquiries [get]
func (ctrl *InquiryController) GetAllInquiries(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	var total int
	config.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM inquiries").Scan(&total)

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, email, COALESCE(subject, ''), message, created_at FROM inquiries ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve inquiries"})
		return
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		var inq models.Inquiry
		rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Subject, &inq.Message, &inq.CreatedAt)
		inquiries = append(inquiries, inq)
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Inquiries retrieved",
		"data": inquiries, "meta": paginationMeta(page, limit, total),
	})
}

// DeleteInquiry godoc
// @Summary Delete inquiry
// @Description Delete inquiry (Admin)
// @Tags Admin - Inquiries
// @Security BearerAuth
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/inquiries/{id} [delete]
func (ctrl *InquiryController) DeleteInquiry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM inquiries WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Inquiry not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Inquiry deleted"})
}
