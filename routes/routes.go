package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tour-backend/controllers"
	"tour-backend/middleware"
	"tour-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route tree.
func SetupRouter(
	pc *controllers.PackageController,
	bc *controllers.BookingController,
	ac *controllers.AuthController,
	authSvc *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authSvc)

	api := r.Group("/api")
	{
		packages := api.Group("/packages")
		{
			packages.GET("", pc.ListPackages)
			packages.GET("/:id", pc.GetPackageDetail)
			packages.GET("/:id/book", bc.BookingForm)
			packages.POST("/:id/book", bc.CreateBooking)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("/:id/confirmation", bc.BookingConfirmation)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		api.GET("/search", pc.SearchPackages)
		api.GET("/my-bookings", requireAuth, bc.MyBookings)

		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/site", controllers.GetSiteSettings)
			settings.PUT("/site", controllers.UpdateSiteSettings)
		}
	}

	return r
}
