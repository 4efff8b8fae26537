package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct so routes can be
// registered from a single place.
type HandlerBundle struct {
	// Account endpoints
	RegisterHandler      gin.HandlerFunc
	SignInHandler        gin.HandlerFunc
	SignOutHandler       gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	ListProfilesHandler  gin.HandlerFunc
	ListProvidersHandler gin.HandlerFunc

	// Task endpoints
	CreateTaskHandler gin.HandlerFunc
	ListTasksHandler  gin.HandlerFunc
	GetTaskHandler    gin.HandlerFunc
	UpdateTaskHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	BookingStatsHandler        gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler        gin.HandlerFunc
	ListProviderReviewsHandler gin.HandlerFunc

	// Intelligence endpoints
	ClassifyHandler  gin.HandlerFunc
	FollowUpsHandler gin.HandlerFunc
	MatchHandler     gin.HandlerFunc
	AIHealthHandler  gin.HandlerFunc

	// Payment endpoints
	CheckoutHandler   gin.HandlerFunc
	PayPageHandler    gin.HandlerFunc
	PaySuccessHandler gin.HandlerFunc
}
