package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"listinghub/internal/admin"
	"listinghub/internal/config"
	"listinghub/internal/events"
	"listinghub/internal/listing"
	"listinghub/internal/tasks"
	"listinghub/internal/usage"
)

func main() {
	cfg := config.Load()

	store, closeStore, err := usage.OpenStore(cfg.Store)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("store close error: %v", err)
		}
	}()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := events.NewHub()
	router.GET("/ws", events.WSHandler(hub))

	gate := usage.NewGate(store, cfg.Usage.DailyLimit)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": cfg.Store.Backend})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// A cheap counter read proves the backend is reachable.
		if _, err := store.Count(ctx, gate.DayKey(), "readiness@probe.local"); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"store_error": err.Error(),
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"store":      "ok",
			"ws_clients": stats.WSClients,
		})
	})

	// Listing generation (public, email-gated)
	listingHandler := listing.NewHandler(gate, hub)
	listingHandler.RegisterRoutes(router.Group("/listing"))
	router.GET("/plan", listing.PlanHandler(gate))

	// Task extraction (public)
	tasksHandler := tasks.NewHandler(tasks.NewExtractor())
	tasksHandler.RegisterRoutes(router.Group("/tasks"))

	// Operator routes (token protected)
	tokens := admin.TokenService{
		Secret:   []byte(cfg.Admin.Secret),
		Issuer:   cfg.Admin.Issuer,
		Duration: cfg.Admin.TokenTTL,
	}
	adminGroup := router.Group("/admin")
	adminGroup.Use(admin.Middleware(tokens))
	admin.NewHandler(store).RegisterRoutes(adminGroup)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
