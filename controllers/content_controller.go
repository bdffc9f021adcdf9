package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"brewhouse/config"
	"brewhouse/libs"
	"brewhouse/models"
	"brewhouse/utils"

	"github.com/gin-gonic/gin"
)

// ContentController serves the storefront content resources: team members,
// blog posts, testimonials, services, hero slides and facts. Lists are
// public, writes are admin-only.
type ContentController struct{}

func contentImageUpload(c *gin.Context, field, subDir string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", false
	}

	localPath, err := utils.UploadFile(c, file, subDir)
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

// removeOldImage drops the previously stored image once a row has been
// updated to a new one, or deleted. Failures only leak a file.
func removeOldImage(oldURL, newURL string) {
	if oldURL == "" || oldURL == newURL {
		return
	}
	if err := libs.RemoveImage(oldURL); err != nil {
		log.Printf("Failed to remove stored image: %v", err)
	}
}

// --- Team members ---

// @Summary Get team members
// @Tags Content
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /api/team-members [get]
func (ctrl *ContentController) GetTeamMembers(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	var total int
	config.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM team_members").Scan(&total)

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, role, COALESCE(photo_url, ''), created_at, updated_at FROM team_members ORDER BY id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve team members"})
		return
	}
	defer rows.Close()

	members := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		rows.Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.CreatedAt, &m.UpdatedAt)
		members = append(members, m)
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Team members retrieved",
		"data": members, "meta": paginationMeta(page, limit, total),
	})
}

// @Summary Create team member
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/team-members [post]
func (ctrl *ContentController) CreateTeamMember(c *gin.Context) {
	var req models.TeamMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name and role are required"})
		return
	}

	if photoURL, ok := contentImageUpload(c, "photo", "team"); ok {
		req.PhotoURL = photoURL
	} else if c.IsAborted() {
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO team_members (name, role, photo_url, created_at, updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		req.Name, req.Role, req.PhotoURL, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create team member"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Team member created",
		"data": models.TeamMember{ID: id, Name: req.Name, Role: req.Role, PhotoURL: req.PhotoURL, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update team member
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} models.Response
// @Router /api/team-members/{id} [patch]
func (ctrl *ContentController) UpdateTeamMember(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.TeamMember
	err := config.DB.QueryRow(context.Background(),
		"SELECT name, role, COALESCE(photo_url, '') FROM team_members WHERE id=$1",
		id).Scan(&existing.Name, &existing.Role, &existing.PhotoURL)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Team member not found"})
		return
	}

	name := c.DefaultPostForm("name", existing.Name)
	role := c.DefaultPostForm("role", existing.Role)
	photoURL := existing.PhotoURL
	if url, ok := contentImageUpload(c, "photo", "team"); ok {
		photoURL = url
	} else if c.IsAborted() {
		return
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE team_members SET name=$1, role=$2, photo_url=$3, updated_at=$4 WHERE id=$5",
		name, role, photoURL, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update team member"})
		return
	}

	removeOldImage(existing.PhotoURL, photoURL)

	c.JSON(200, gin.H{"success": true, "message": "Team member updated"})
}

// @Summary Delete team member
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} models.Response
// @Router /api/team-members/{id} [delete]
func (ctrl *ContentController) DeleteTeamMember(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var photoURL string
	err := config.DB.QueryRow(context.Background(),
		"DELETE FROM team_members WHERE id=$1 RETURNING COALESCE(photo_url, '')",
		id).Scan(&photoURL)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Team member not found"})
		return
	}

	removeOldImage(photoURL, "")

	c.JSON(200, gin.H{"success": true, "message": "Team member deleted"})
}

// --- Blog posts ---

// @Summary Get blog posts
// @Tags Content
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by title"
// @Success 200 {object} models.PaginationResponse
// @Router /api/blog-posts [get]
func (ctrl *ContentController) GetBlogPosts(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	search := c.Query("search")

	countQuery := "SELECT COUNT(*) FROM blog_posts"
	listQuery := "SELECT id, title, body, COALESCE(image_url, ''), COALESCE(author, ''), created_at, updated_at FROM blog_posts"
	args := []interface{}{}
	if search != "" {
		countQuery += " WHERE LOWER(title) LIKE LOWER($1)"
		listQuery += " WHERE LOWER(title) LIKE LOWER($1) ORDER BY created_at DESC LIMIT $2 OFFSET $3"
		args = append(args, "%"+search+"%", limit, offset)
	} else {
		listQuery += " ORDER BY created_at DESC LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}

	var total int
	if search != "" {
		config.DB.QueryRow(context.Background(), countQuery, args[0]).Scan(&total)
	} else {
		config.DB.QueryRow(context.Background(), countQuery).Scan(&total)
	}

	rows, err := config.DB.Query(context.Background(), listQuery, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve blog posts"})
		return
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		rows.Scan(&p.ID, &p.Title, &p.Body, &p.ImageURL, &p.Author, &p.CreatedAt, &p.UpdatedAt)
		posts = append(posts, p)
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Blog posts retrieved",
		"data": posts, "meta": paginationMeta(page, limit, total),
	})
}

// @Summary Create blog post
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/blog-posts [post]
func (ctrl *ContentController) CreateBlogPost(c *gin.Context) {
	var req models.BlogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Title (min 3 chars) and body are required"})
		return
	}

	if imageURL, ok := contentImageUpload(c, "image", "blog"); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO blog_posts (title, body, image_url, author, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id",
		req.Title, req.Body, req.ImageURL, req.Author, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create blog post"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Blog post created",
		"data": models.BlogPost{ID: id, Title: req.Title, Body: req.Body, ImageURL: req.ImageURL, Author: req.Author, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update blog post
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} models.Response
// @Router /api/blog-posts/{id} [patch]
func (ctrl *ContentController) UpdateBlogPost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.BlogPost
	err := config.DB.QueryRow(context.Background(),
		"SELECT title, body, COALESCE(image_url, ''), COALESCE(author, '') FROM blog_posts WHERE id=$1",
		id).Scan(&existing.Title, &existing.Body, &existing.ImageURL, &existing.Author)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Blog post not found"})
		return
	}

	title := c.DefaultPostForm("title", existing.Title)
	body := c.DefaultPostForm("body", existing.Body)
	author := c.DefaultPostForm("author", existing.Author)
	imageURL := existing.ImageURL
	if url, ok := contentImageUpload(c, "image", "blog"); ok {
		imageURL = url
	} else if c.IsAborted() {
		return
	}

	if len(title) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Title must be at least 3 characters"})
		return
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE blog_posts SET title=$1, body=$2, image_url=$3, author=$4, updated_at=$5 WHERE id=$6",
		title, body, imageURL, author, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update blog post"})
		return
	}

	removeOldImage(existing.ImageURL, imageURL)

	c.JSON(200, gin.H{"success": true, "message": "Blog post updated"})
}

// @Summary Delete blog post
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} models.Response
// @Router /api/blog-posts/{id} [delete]
func (ctrl *ContentController) DeleteBlogPost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var imageURL string
	err := config.DB.QueryRow(context.Background(),
		"DELETE FROM blog_posts WHERE id=$1 RETURNING COALESCE(image_url, '')",
		id).Scan(&imageURL)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Blog post not found"})
		return
	}

	removeOldImage(imageURL, "")

	c.JSON(200, gin.H{"success": true, "message": "Blog post deleted"})
}

// --- Testimonials ---

// @Summary Get testimonials
// @Tags Content
// @Produce json
// @Success 200 {object} models.PaginationResponse
// @Router /api/testimonials [get]
func (ctrl *ContentController) GetTestimonials(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	var total int
	config.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM testimonials").Scan(&total)

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, author, quote, rating, created_at, updated_at FROM testimonials ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve testimonials"})
		return
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		rows.Scan(&t.ID, &t.Author, &t.Quote, &t.Rating, &t.CreatedAt, &t.UpdatedAt)
		testimonials = append(testimonials, t)
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Testimonials retrieved",
		"data": testimonials, "meta": paginationMeta(page, limit, total),
	})
}

// @Summary Create testimonial
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/testimonials [post]
func (ctrl *ContentController) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Author, quote and rating (1-5) are required"})
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO testimonials (author, quote, rating, created_at, updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		req.Author, req.Quote, req.Rating, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create testimonial"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Testimonial created",
		"data": models.Testimonial{ID: id, Author: req.Author, Quote: req.Quote, Rating: req.Rating, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update testimonial
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} models.Response
// @Router /api/testimonials/{id} [patch]
func (ctrl *ContentController) UpdateTestimonial(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Author, quote and rating (1-5) are required"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		"UPDATE testimonials SET author=$1, quote=$2, rating=$3, updated_at=$4 WHERE id=$5",
		req.Author, req.Quote, req.Rating, time.Now(), id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Testimonial not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Testimonial updated"})
}

// @Summary Delete testimonial
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} models.Response
// @Router /api/testimonials/{id} [delete]
func (ctrl *ContentController) DeleteTestimonial(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM testimonials WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Testimonial not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Testimonial deleted"})
}

// --- Services ---

// @Summary Get services
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/services [get]
func (ctrl *ContentController) GetServices(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, title, description, COALESCE(icon, ''), created_at, updated_at FROM services ORDER BY id")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve services"})
		return
	}
	defer rows.Close()

	servicesList := []models.ShopService{}
	for rows.Next() {
		var s models.ShopService
		rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.CreatedAt, &s.UpdatedAt)
		servicesList = append(servicesList, s)
	}

	c.JSON(200, gin.H{"success": true, "message": "Services retrieved", "data": servicesList})
}

// @Summary Create service
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/services [post]
func (ctrl *ContentController) CreateService(c *gin.Context) {
	var req models.ShopServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Title and description are required"})
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO services (title, description, icon, created_at, updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		req.Title, req.Description, req.Icon, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create service"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Service created",
		"data": models.ShopService{ID: id, Title: req.Title, Description: req.Description, Icon: req.Icon, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update service
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Response
// @Router /api/services/{id} [patch]
func (ctrl *ContentController) UpdateService(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.ShopServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Title and description are required"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		"UPDATE services SET title=$1, description=$2, icon=$3, updated_at=$4 WHERE id=$5",
		req.Title, req.Description, req.Icon, time.Now(), id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Service not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Service updated"})
}

// @Summary Delete service
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Response
// @Router /api/services/{id} [delete]
func (ctrl *ContentController) DeleteService(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM services WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Service not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Service deleted"})
}

// --- Hero slides ---

// @Summary Get hero slides
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/hero-slides [get]
func (ctrl *ContentController) GetHeroSlides(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, title, COALESCE(subtitle, ''), COALESCE(image_url, ''), sort_order, created_at, updated_at FROM hero_slides ORDER BY sort_order, id")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve hero slides"})
		return
	}
	defer rows.Close()

	slides := []models.HeroSlide{}
	for rows.Next() {
		var s models.HeroSlide
		rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
		slides = append(slides, s)
	}

	c.JSON(200, gin.H{"success": true, "message": "Hero slides retrieved", "data": slides})
}

// @Summary Create hero slide
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/hero-slides [post]
func (ctrl *ContentController) CreateHeroSlide(c *gin.Context) {
	var req models.HeroSlideRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Title is required"})
		return
	}

	if imageURL, ok := contentImageUpload(c, "image", "hero"); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO hero_slides (title, subtitle, image_url, sort_order, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id",
		req.Title, req.Subtitle, req.ImageURL, req.SortOrder, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create hero slide"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Hero slide created",
		"data": models.HeroSlide{ID: id, Title: req.Title, Subtitle: req.Subtitle, ImageURL: req.ImageURL, SortOrder: req.SortOrder, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update hero slide
// @Tags Admin - Content
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Hero slide ID"
// @Success 200 {object} models.Response
// @Router /api/hero-slides/{id} [patch]
func (ctrl *ContentController) UpdateHeroSlide(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.HeroSlide
	err := config.DB.QueryRow(context.Background(),
		"SELECT title, COALESCE(subtitle, ''), COALESCE(image_url, ''), sort_order FROM hero_slides WHERE id=$1",
		id).Scan(&existing.Title, &existing.Subtitle, &existing.ImageURL, &existing.SortOrder)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Hero slide not found"})
		return
	}

	title := c.DefaultPostForm("title", existing.Title)
	subtitle := c.DefaultPostForm("subtitle", existing.Subtitle)
	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sort_order", strconv.Itoa(existing.SortOrder)))
	imageURL := existing.ImageURL
	if url, ok := contentImageUpload(c, "image", "hero"); ok {
		imageURL = url
	} else if c.IsAborted() {
		return
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE hero_slides SET title=$1, subtitle=$2, image_url=$3, sort_order=$4, updated_at=$5 WHERE id=$6",
		title, subtitle, imageURL, sortOrder, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update hero slide"})
		return
	}

	removeOldImage(existing.ImageURL, imageURL)

	c.JSON(200, gin.H{"success": true, "message": "Hero slide updated"})
}

// @Summary Delete hero slide
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Hero slide ID"
// @Success 200 {object} models.Response
// @Router /api/hero-slides/{id} [delete]
func (ctrl *ContentController) DeleteHeroSlide(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var imageURL string
	err := config.DB.QueryRow(context.Background(),
		"DELETE FROM hero_slides WHERE id=$1 RETURNING COALESCE(image_url, '')",
		id).Scan(&imageURL)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Hero slide not found"})
		return
	}

	removeOldImage(imageURL, "")

	c.JSON(200, gin.H{"success": true, "message": "Hero slide deleted"})
}

// --- Facts ---

// @Summary Get facts
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/facts [get]
func (ctrl *ContentController) GetFacts(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, label, value, created_at, updated_at FROM facts ORDER BY id")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve facts"})
		return
	}
	defer rows.Close()

	facts := []models.Fact{}
	for rows.Next() {
		var f models.Fact
		rows.Scan(&f.ID, &f.Label, &f.Value, &f.CreatedAt, &f.UpdatedAt)
		facts = append(facts, f)
	}

	c.JSON(200, gin.H{"success": true, "message": "Facts retrieved", "data": facts})
}

// @Summary Create fact
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/facts [post]
func (ctrl *ContentController) CreateFact(c *gin.Context) {
	var req models.FactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Label and value are required"})
		return
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO facts (label, value, created_at, updated_at) VALUES ($1,$2,$3,$4) RETURNING id",
		req.Label, req.Value, now, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create fact"})
		return
	}

	c.JSON(201, gin.H{
		"success": true, "message": "Fact created",
		"data": models.Fact{ID: id, Label: req.Label, Value: req.Value, CreatedAt: now, UpdatedAt: now},
	})
}

// @Summary Update fact
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Fact ID"
// @Success 200 {object} models.Response
// @Router /api/facts/{id} [patch]
func (ctrl *ContentController) UpdateFact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.FactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Label and value are required"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		"UPDATE facts SET label=$1, value=$2, updated_at=$3 WHERE id=$4",
		req.Label, req.Value, time.Now(), id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Fact not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Fact updated"})
}

// @Summary Delete fact
// @Tags Admin - Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Fact ID"
// @Success 200 {object} models.Response
// @Router /api/facts/{id} [delete]
func (ctrl *ContentController) DeleteFact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	tag, err := config.DB.Exec(context.Background(), "DELETE FROM facts WHERE id=$1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Fact not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Fact deleted"})
}
