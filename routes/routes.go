package routes

import (
	"goodsoil/config"
	"goodsoil/controllers"
	"goodsoil/middleware"
	"goodsoil/models"
	"goodsoil/repositories"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	emailService, err := models.NewEmailService()
	if err != nil {
		emailService = nil
	}

	cartService := services.NewCartService(repositories.NewCartRepository())
	orderStore := repositories.NewOrderRepository()
	orderService := services.NewOrderService(orderStore)
	paymentService := services.NewPaymentService(orderStore, config.AppConfig.RazorpayKeySecret)

	authCtrl := controllers.NewAuthController(emailService)
	userCtrl := controllers.NewUserController()
	productCtrl := controllers.NewProductController(repositories.NewProductRepository())
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService, emailService)
	paymentCtrl := controllers.NewPaymentController(paymentService, emailService)
	blogCtrl := controllers.NewBlogController()
	newsletterCtrl := controllers.NewNewsletterController(emailService)
	gardenPlanCtrl := controllers.NewGardenPlanController()
	contactCtrl := controllers.NewContactController(emailService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/forgot-password", authCtrl.ForgotPassword)
		api.POST("/reset-password", authCtrl.ResetPassword)

		api.GET("/products", productCtrl.GetProducts)
		api.GET("/products/:id", productCtrl.GetProduct)
		api.GET("/blog_posts", blogCtrl.GetPosts)
		api.GET("/blog_posts/:id", blogCtrl.GetPost)

		api.POST("/subscribe-discount", newsletterCtrl.Subscribe)
		api.POST("/garden-plan-submission", gardenPlanCtrl.Submit)
		api.POST("/contact-message", contactCtrl.Submit)
	}

	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/user/profile", userCtrl.GetProfile)
		auth.PUT("/user/profile/update", userCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/add", cartCtrl.AddItem)
		auth.PUT("/cart/update-item", cartCtrl.UpdateItem)
		auth.DELETE("/cart/remove-item/:productId", cartCtrl.RemoveItem)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/:orderId", orderCtrl.GetOrder)

		auth.POST("/create-razorpay-order", paymentCtrl.CreateRazorpayOrder)
		auth.POST("/verify-razorpay-payment", paymentCtrl.VerifyRazorpayPayment)
	}
}
