package routes

import (
	"net/http"
	"time"

	profileRepo "servana/database/repository/profile"
	"servana/handlers"
	"servana/middleware"
	"servana/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	api := r.Group("/api")
	{
		api.POST("/customers/register", roleParam(models.RoleCustomer, hb.RegisterHandler))
		api.POST("/customers/login", hb.SignInHandler)
		api.POST("/providers/register", roleParam(models.RoleProvider, hb.RegisterHandler))
		api.POST("/providers/login", hb.SignInHandler)

		// Provider directory is public.
		api.GET("/providers", hb.ListProvidersHandler)
		api.GET("/reviews/:providerID", hb.ListProviderReviewsHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(profiles))
		api.POST("/auth/signout", hb.SignOutHandler)
		api.GET("/profiles", hb.ListProfilesHandler)
		api.GET("/profiles/:id", hb.GetProfileHandler)
		api.PATCH("/profiles/:id", hb.UpdateProfileHandler)
	}
}

// roleParam pins the :role path parameter so register routes share one handler.
func roleParam(role string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "role", Value: role})
		next(c)
	}
}

// RegisterTaskRoutes registers the customer's task endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	api := r.Group("/api/tasks")
	{
		api.Use(middleware.JWTAuthMiddleware(profiles))
		api.POST("", hb.CreateTaskHandler)
		api.GET("", hb.ListTasksHandler)
		api.GET("/:id", hb.GetTaskHandler)
		api.PATCH("/:id", hb.UpdateTaskHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(profiles))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/stats", hb.BookingStatsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingStatusHandler)
	}
}

// RegisterReviewRoutes registers the rating endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(profiles))
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.CreateReviewHandler)
	}
}

// RegisterAIRoutes registers classification, follow-up and matching endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	api := r.Group("/api/ai")
	{
		api.GET("/health", hb.AIHealthHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(profiles))
		api.POST("/classify", hb.ClassifyHandler)
		api.POST("/followups", hb.FollowUpsHandler)
		api.POST("/match", hb.MatchHandler)
	}
}

// RegisterPaymentRoutes registers checkout plus the mock payment pages.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	r.POST("/api/checkout", middleware.JWTAuthMiddleware(profiles), hb.CheckoutHandler)

	// The paywall pages are opened in a plain browser tab with no auth header.
	r.GET("/pay/:bookingID", hb.PayPageHandler)
	r.GET("/pay/success/:bookingID", hb.PaySuccessHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Servana"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, profiles profileRepo.ProfileRepository) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb, profiles)
	RegisterTaskRoutes(r, hb, profiles)
	RegisterBookingRoutes(r, hb, profiles)
	RegisterReviewRoutes(r, hb, profiles)
	RegisterAIRoutes(r, hb, profiles)
	RegisterPaymentRoutes(r, hb, profiles)
	RegisterHealthRoute(r)
}
