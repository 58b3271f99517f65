package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"badgecv_api/internal/api"
	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common/security"
	"badgecv_api/internal/domain/repository"
	"badgecv_api/internal/platform/config"
	"badgecv_api/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize JWT
	jwt := security.NewJWT(cfg.JWTKey, cfg.TokenExp)

	// 3. Initialize Database
	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer database.Close(client)
	log.Println("Database connected.")

	// 4. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(db)
	badgeRepo := repository.NewMongoBadgeRepository(db)
	resumeRepo := repository.NewMongoResumeRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, jwt, cfg.BcryptCost)
	badgeService := service.NewBadgeService(badgeRepo)
	resumeService := service.NewResumeService(resumeRepo)
	analyticsService := service.NewAnalyticsService(badgeRepo, resumeRepo)
	recommendationService := service.NewRecommendationService(badgeRepo)

	// 6. Seed demo data
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := badgeService.SeedDemoBadge(seedCtx); err != nil {
		log.Printf("Could not seed demo badge: %v", err)
	}
	seedCancel()

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(jwt, authService, badgeService, resumeService, analyticsService, recommendationService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
