package router

import (
	"github.com/gin-gonic/gin"
	"github.com/urbanmaid/urbanmaid-app/controllers"
	"github.com/urbanmaid/urbanmaid-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	helperCtrl := controllers.NewHelperController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	bookingCtrl := controllers.NewBookingController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Kategori & helper bisa dilihat tanpa login
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/categories/:category_name", categoryCtrl.GetHelpersByCategory)
	r.GET("/categories/:category_name/helpers/:helper_id", categoryCtrl.GetCategoryHelper)

	r.POST("/helpers/register", helperCtrl.RegisterHelper)
	r.GET("/helpers/:helper_id", helperCtrl.GetHelperProfile)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/admin/users", userCtrl.GetAllUsers)

		// BOOKING LIFECYCLE
		auth.GET("/booking/create/:helper_id", bookingCtrl.GetBookingForm)
		auth.POST("/booking/create", bookingCtrl.CreateBooking)
		auth.GET("/booking/confirmation/:booking_id", bookingCtrl.GetConfirmation)
		auth.GET("/booking/my-bookings", bookingCtrl.ListUserBookings)
		auth.POST("/booking/cancel/:booking_id", bookingCtrl.CancelBooking)
	}

	return r
}
