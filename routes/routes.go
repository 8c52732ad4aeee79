package routes

import (
	"net/http"
	"time"

	"washly/handlers"
	"washly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers the shared booking-context endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.GET("", hb.Session.GetSession)
		api.POST("/profile", hb.Session.SetProfile)
		api.PUT("/location", hb.Session.SetLocation)
		api.PUT("/vehicle", hb.Session.SetVehicle)
		api.PUT("/wash-type", hb.Session.SetWashType)
		api.GET("/quote", hb.Session.GetQuote)
		api.POST("/reset", hb.Session.Reset)
	}
}

// RegisterMatchingRoutes registers all endpoints for the matching flow.
func RegisterMatchingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/matching")
	{
		api.POST("/flows", hb.Matching.StartFlow)
		api.GET("/flows/:flowID", hb.Matching.GetFlow)
		api.POST("/flows/:flowID/select", hb.Matching.SelectWasher)
		api.POST("/flows/:flowID/confirm", hb.Matching.ConfirmFlow)
		api.DELETE("/flows/:flowID", hb.Matching.CancelFlow)
	}
	r.GET("/api/washers/nearby", hb.Matching.NearbyWashers)
}

// RegisterWalletRoutes registers wallet endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wallet")
	{
		api.GET("", hb.Wallet.GetWallet)
		api.PUT("/visibility", hb.Wallet.SetVisibility)
		api.POST("/recharge", hb.Wallet.Recharge)
		api.POST("/withdraw", hb.Wallet.Withdraw)
		api.GET("/transactions", hb.Wallet.GetTransactions)
	}
}

// RegisterActivityRoutes registers booking-history endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.GET("", hb.Activity.GetActivities)
		api.PUT("/:id/rating", hb.Activity.RateActivity)
	}
}

// RegisterLocationRoutes registers geocoding and recent-location endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locations")
	{
		api.GET("/search", hb.Location.Search)
		api.GET("/reverse", hb.Location.Reverse)
		api.GET("/recent", hb.Location.GetRecent)
		api.POST("/recent", hb.Location.AddRecent)
		api.DELETE("/recent", hb.Location.ClearRecent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, hb)
	RegisterMatchingRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
}
