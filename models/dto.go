package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=3"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=3"`
	Role     string `json:"role" binding:"required,oneof=customer admin"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateCoffeeRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,min=3"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" form:"image_url"`
}

type UpdateCoffeeRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id"`
	Price       float64 `json:"price" form:"price"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

type CheckoutItemRequest struct {
	CoffeeID int `json:"coffee_id" binding:"required"`
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes string                `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TeamMemberRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Role     string `json:"role" form:"role" binding:"required"`
	PhotoURL string `json:"photo_url" form:"photo_url"`
}

type BlogPostRequest struct {
	Title    string `json:"title" form:"title" binding:"required,min=3"`
	Body     string `json:"body" form:"body" binding:"required"`
	ImageURL string `json:"image_url" form:"image_url"`
	Author   string `json:"author" form:"author"`
}

type TestimonialRequest struct {
	Author string `json:"author" binding:"required"`
	Quote  string `json:"quote" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

type ShopServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"`
}

type HeroSlideRequest struct {
	Title     string `json:"title" form:"title" binding:"required"`
	Subtitle  string `json:"subtitle" form:"subtitle"`
	ImageURL  string `json:"image_url" form:"image_url"`
	SortOrder int    `json:"sort_order" form:"sort_order"`
}

type FactRequest struct {
	Label string `json:"label" binding:"required"`
	Value int    `json:"value" binding:"required"`
}

type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
