// Command main is the entry point for the Launchbase backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchbase/internal/config"
	"launchbase/internal/seed"
	"launchbase/internal/server"
	"launchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A missing store is not fatal: the process still serves, and handlers
	// that need the store report it unavailable.
	var st store.Store
	mongoStore, err := store.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Printf("Store connection failed: %v", err)
	} else {
		st = mongoStore
		if err := seed.EnsureBlogPosts(ctx, st); err != nil {
			log.Printf("Demo content seeding failed: %v", err)
		}
	}

	srv := server.NewServer(cfg, st)

	app := fiber.New(fiber.Config{
		AppName: "SaaS Starter API",
	})

	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if mongoStore != nil {
			if err := mongoStore.Disconnect(shutdownCtx); err != nil {
				log.Printf("Store disconnect error: %v", err)
			}
		}
	}()

	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
