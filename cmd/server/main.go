package main

import (
	"HealthBook/cache"
	"HealthBook/config"
	"HealthBook/database"
	"HealthBook/repositories"
	"HealthBook/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), database.OptionsFromConfig(cfg))
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Initialize the optional cache
	var store repositories.Cache
	if cfg.Redis.Enabled() {
		client, err := database.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Fatalf("failed to initialize Redis client: %v", err)
		}
		defer client.Close()

		c, err := cache.NewCache(client)
		if err != nil {
			log.Fatalf("failed to initialize cache: %v", err)
		}
		// The store may have been reseeded since these entries were written.
		for _, pattern := range []string{repositories.DoctorCachePattern, repositories.AppointmentCachePattern} {
			if err := c.DeleteAll(context.Background(), pattern); err != nil {
				log.Printf("Failed to clear cache keys %s: %v", pattern, err)
			}
		}
		database.LogRedisPool(client)
		store = c
	} else {
		log.Println("REDIS_URL not set; serving without cache")
	}

	handler := routes.SetupRoutes(db, routes.OptionsFromConfig(cfg, store))

	// Configure and start the server
	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Server is running on http://localhost%s/", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}
