package routes

import (
	"time"

	"nestly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handler sets the router wires up.
type HandlerBundle struct {
	Provider *handlers.ProviderHandler
	Matching *handlers.MatchingHandler
	Booking  *handlers.BookingHandler
}

// RegisterProviderRoutes registers sitter profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Provider.RegisterProvider)
		api.GET("", hb.Provider.GetAllProviders)
		api.GET("/id/:id", hb.Provider.GetProviderByID)
		api.PUT("/update/:id", hb.Provider.UpdateProvider)
		api.DELETE("/delete/:id", hb.Provider.DeleteProvider)
		api.PUT("/availability/:id", hb.Provider.SetAvailability)
	}
}

// RegisterMatchingRoutes registers the sitter-matching endpoint.
func RegisterMatchingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/match")
	{
		api.POST("", hb.Matching.SmartMatches)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("/check", hb.Booking.CheckEligibility)
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("/id/:id", hb.Booking.GetBooking)
		bookingGroup.GET("/user/:userId", hb.Booking.GetUserBookings)
		bookingGroup.PATCH("/id/:id/status", hb.Booking.UpdateBookingStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb)
	RegisterMatchingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
