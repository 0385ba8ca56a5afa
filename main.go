package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tour-backend/config"
	"tour-backend/controllers"
	"tour-backend/routes"
	"tour-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// The weather key is read once at startup. Missing key is not fatal:
	// weather is best-effort enrichment and every lookup degrades to
	// "no weather data".
	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherKey == "" {
		log.Println("OPENWEATHER_API_KEY not set; weather enrichment disabled")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Services
	packageService := services.NewPackageService(db)
	bookingService := services.NewBookingService(db)
	authService := services.NewAuthService(db)
	weatherService := services.NewWeatherService(weatherKey)

	// Controllers
	packageController := controllers.NewPackageController(packageService, weatherService)
	bookingController := controllers.NewBookingController(bookingService, packageService)
	authController := controllers.NewAuthController(authService)

	router := routes.SetupRouter(packageController, bookingController, authController, authService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
