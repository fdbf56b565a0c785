package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Domenick1991/oneservice/api"
	"github.com/Domenick1991/oneservice/config"
	"github.com/Domenick1991/oneservice/docs"
	"github.com/Domenick1991/oneservice/internal/service/booking"
	"github.com/Domenick1991/oneservice/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const greeting = "This is the server of One Service"

// HealthCheck reports whether the document store is reachable.
type HealthCheck func(ctx context.Context) error

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("One Service is running on port %s", cfg.HTTP.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen http %s: %w", srv.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewHandler wires the resource routes, the health check and the API docs
// into one engine and opens it to every origin.
func NewHandler(serviceSvc catalog.ServiceUseCase, bookingSvc booking.BookingUseCase, health HealthCheck) http.Handler {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, greeting)
	})
	engine.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				log.Printf("health check failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/docs/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", docs.OpenAPI)
	})
	engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json"))))

	api.NewServiceHandler(serviceSvc).Register(engine)
	api.NewBookingHandler(bookingSvc).Register(engine)

	return cors.AllowAll().Handler(engine)
}
