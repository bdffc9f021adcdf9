package routes

import (
	"brewhouse/controllers"
	"brewhouse/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	coffeeCtrl := controllers.NewCoffeeController()
	categoryCtrl := controllers.NewCategoryController()
	orderCtrl := &controllers.OrderController{}
	contentCtrl := &controllers.ContentController{}
	inquiryCtrl := &controllers.InquiryController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh-token", authCtrl.RefreshToken)

	// public storefront reads
	api.GET("/coffees", coffeeCtrl.GetAllCoffees)
	api.GET("/coffees/:id", coffeeCtrl.GetCoffeeByID)
	api.GET("/categories", categoryCtrl.GetCategories)
	api.GET("/team-members", contentCtrl.GetTeamMembers)
	api.GET("/blog-posts", contentCtrl.GetBlogPosts)
	api.GET("/testimonials", contentCtrl.GetTestimonials)
	api.GET("/services", contentCtrl.GetServices)
	api.GET("/hero-slides", contentCtrl.GetHeroSlides)
	api.GET("/facts", contentCtrl.GetFacts)
	api.POST("/inquiries", inquiryCtrl.CreateInquiry)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
	}

	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/admin/dashboard", orderCtrl.GetDashboard)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/coffees", coffeeCtrl.CreateCoffee)
		admin.PATCH("/coffees/:id", coffeeCtrl.UpdateCoffee)
		admin.DELETE("/coffees/:id", coffeeCtrl.DeleteCoffee)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/admin/orders", orderCtrl.GetAllOrders)
		admin.GET("/admin/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/admin/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/team-members", contentCtrl.CreateTeamMember)
		admin.PATCH("/team-members/:id", contentCtrl.UpdateTeamMember)
		admin.DELETE("/team-members/:id", contentCtrl.DeleteTeamMember)

		admin.POST("/blog-posts", contentCtrl.CreateBlogPost)
		admin.PATCH("/blog-posts/:id", contentCtrl.UpdateBlogPost)
		admin.DELETE("/blog-posts/:id", contentCtrl.DeleteBlogPost)

		admin.POST("/testimonials", contentCtrl.CreateTestimonial)
		admin.PATCH("/testimonials/:id", contentCtrl.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", contentCtrl.DeleteTestimonial)

		admin.POST("/services", contentCtrl.CreateService)
		admin.PATCH("/services/:id", contentCtrl.UpdateService)
		admin.DELETE("/services/:id", contentCtrl.DeleteService)

		admin.POST("/hero-slides", contentCtrl.CreateHeroSlide)
		admin.PATCH("/hero-slides/:id", contentCtrl.UpdateHeroSlide)
		admin.DELETE("/hero-slides/:id", contentCtrl.DeleteHeroSlide)

		admin.POST("/facts", contentCtrl.CreateFact)
		admin.PATCH("/facts/:id", contentCtrl.UpdateFact)
		admin.DELETE("/facts/:id", contentCtrl.DeleteFact)

		admin.GET("/inquiries", inquiryCtrl.GetAllInquiries)
		admin.DELETE("/inquiries/:id", inquiryCtrl.DeleteInquiry)
	}

	router.Static("/uploads", "./uploads")
}
