package routes

import (
	"net/http"
	"time"

	"furytails/handlers"
	"furytails/middleware"
	"furytails/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking queue and its lifecycle
// actions.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	{
		bookings.GET("", hb.Booking.ListPendingHandler)
		bookings.GET("/pending", hb.Booking.ListPendingHandler)
		bookings.GET("/approved", hb.Booking.ListApprovedHandler)
		bookings.GET("/reports", hb.Booking.ListReportsHandler)
		bookings.GET("/:id", hb.Booking.GetBookingHandler)
		bookings.GET("/:id/charge", hb.Booking.GetChargeHandler)
		bookings.POST("/:id/accept", hb.Booking.AcceptBookingHandler)
		bookings.POST("/:id/reject", hb.Booking.RejectBookingHandler)
		bookings.POST("/:id/checkin", hb.Booking.CheckInBookingHandler)
		bookings.POST("/:id/checkout", hb.Booking.CheckoutBookingHandler)
		bookings.POST("/:id/extend", hb.Booking.ExtendBookingHandler)
	}
}

// RegisterSalesRoutes registers the sales report endpoints.
func RegisterSalesRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	sales := api.Group("/sales")
	{
		sales.GET("", hb.Sales.ListSalesHandler)
		sales.GET("/summary", hb.Sales.SalesSummaryHandler)
	}
}

// RegisterFeedingRoutes registers the feeding report endpoints.
func RegisterFeedingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	feeding := api.Group("/feeding")
	{
		feeding.GET("", hb.Feeding.ListFeedingHandler)
		feeding.GET("/:id", hb.Feeding.GetFeedingHandler)
	}
}

// RegisterUserRoutes registers the roster, pets and session endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/session", hb.User.GetSessionHandler)
	api.GET("/pets", hb.User.ListPetsHandler)
	users := api.Group("/users")
	{
		users.GET("", hb.User.ListUsersHandler)
		users.GET("/:id", hb.User.GetUserHandler)
	}
}

// RegisterDashboardRoutes registers the live counters endpoint.
func RegisterDashboardRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/dashboard/stats", hb.Dashboard.StatsHandler)
}

// RegisterDialogRoutes registers the dialog manager endpoints.
func RegisterDialogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	dialogs := api.Group("/dialogs")
	{
		dialogs.POST("", hb.Dialog.OpenDialogHandler)
		dialogs.GET("/current", hb.Dialog.CurrentDialogHandler)
		dialogs.POST("/:id/resolve", hb.Dialog.ResolveDialogHandler)
		dialogs.DELETE("/:id", hb.Dialog.DismissDialogHandler)
	}
}

// RegisterStorageRoutes registers document upload endpoints.
func RegisterStorageRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	uploads := api.Group("/uploads")
	{
		uploads.POST("/:kind", hb.Storage.UploadFileHandler)
		uploads.GET("/:kind/url", hb.Storage.GetDownloadURLHandler)
		uploads.DELETE("", hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	// Every console endpoint sits behind the admin gate.
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware())
	api.Use(middleware.AdminAuthMiddleware(hb.UserSvc))

	RegisterBookingRoutes(api, hb)
	RegisterSalesRoutes(api, hb)
	RegisterFeedingRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterDashboardRoutes(api, hb)
	RegisterDialogRoutes(api, hb)
	RegisterStorageRoutes(api, hb)
}
