package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopmart/controllers"
	"shopmart/middleware"
	"shopmart/repositories"
	"shopmart/services"
)

func SetupRoutes(router *gin.Engine) {
	authService := services.NewAuthService()
	userService := services.NewUserService()
	productService := services.NewProductService()
	reviewService := services.NewReviewService()
	cartService := services.NewCartService(
		repositories.NewCartRepository(),
		repositories.NewProductRepository(),
		false,
	)

	authCtrl := controllers.NewAuthController(authService)
	userCtrl := controllers.NewUserController(userService)
	productCtrl := controllers.NewProductController(productService, userService)
	reviewCtrl := controllers.NewReviewController(reviewService)
	cartCtrl := controllers.NewCartController(cartService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/signup", authCtrl.Signup)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.POST("/auth/verify", authCtrl.SendVerificationOTP)
	router.POST("/auth/verify-otp", authCtrl.VerifyOTP)
	router.POST("/auth/reset-otp", authCtrl.SendResetOTP)
	router.POST("/auth/verify-reset-otp", authCtrl.VerifyResetOTP)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)
	router.GET("/auth/google", authCtrl.GoogleLogin)
	router.GET("/auth/google/callback", authCtrl.GoogleCallback)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/categories", productCtrl.GetCategories)
	router.GET("/products/category/:category", productCtrl.GetProductsByCategory)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/cart/add", cartCtrl.AddToCart)
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/reduce", cartCtrl.ReduceQuantity)
		auth.POST("/cart/remove", cartCtrl.RemoveFromCart)

		auth.GET("/reviews", reviewCtrl.GetMyReviews)
		auth.POST("/reviews", reviewCtrl.AddReview)
		auth.PUT("/reviews/:id", reviewCtrl.UpdateReview)
		auth.DELETE("/reviews/:id", reviewCtrl.DeleteReview)

		auth.GET("/users/me", userCtrl.GetProfile)
		auth.POST("/users/me/avatar", userCtrl.UploadAvatar)
		auth.GET("/users/me/addresses", userCtrl.ListAddresses)
		auth.POST("/users/me/addresses", userCtrl.AddAddress)
		auth.PUT("/users/me/addresses/:id", userCtrl.UpdateAddress)
		auth.DELETE("/users/me/addresses/:id", userCtrl.DeleteAddress)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", productCtrl.GetSellerProducts)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/images", productCtrl.UploadProductImage)
	}
}
