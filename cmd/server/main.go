package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"user-directory-api/internal/config"
	"user-directory-api/internal/middleware"
	"user-directory-api/pkg/lambda"
	"user-directory-api/pkg/server"
)

// Local development server. Serves the same dispatch pipeline the Lambda
// entrypoint runs, without the API Gateway stage prefix, plus a readiness
// probe for the attached stores.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := buildContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimiter(50, 100))

	router.GET("/health/ready", readinessHandler(container))

	// Everything else goes through the same dispatcher the Lambda runs.
	// The synthetic "local" stage segment stands in for the gateway prefix.
	router.NoRoute(func(c *gin.Context) {
		body := []byte{}
		if c.Request.Body != nil {
			raw, rerr := c.GetRawData()
			if rerr == nil {
				body = raw
			}
		}

		resp := container.Router.Dispatch(c.Request.Context(), &lambda.Request{
			Method:  c.Request.Method,
			RawPath: "/local" + c.Request.URL.Path,
			Body:    body,
		})

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, "application/json", resp.Body)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on port %s (store: %s)", cfg.Port, storeMode())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}

// buildContainer picks the store backend: in-memory unless STORE=dynamo
func buildContainer(cfg *config.Config) (*server.Container, error) {
	if storeMode() == "dynamo" {
		return server.NewContainer(context.Background(), cfg)
	}
	return server.NewLocalContainer(cfg), nil
}

func storeMode() string {
	return config.GetEnv("STORE", "memory")
}

func readinessHandler(container *server.Container) gin.HandlerFunc {
	type dependencyStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		deps := make(map[string]dependencyStatus)
		healthy := true

		if container.StorePinger != nil {
			if err := container.StorePinger.Ping(ctx); err != nil {
				deps["record_store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
				healthy = false
			} else {
				deps["record_store"] = dependencyStatus{Status: "ok"}
			}
		}

		if container.ObjectStore != nil {
			if err := container.ObjectStore.Ping(ctx); err != nil {
				deps["object_store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
				healthy = false
			} else {
				deps["object_store"] = dependencyStatus{Status: "ok"}
			}
		}

		status := "ok"
		httpStatus := http.StatusOK
		if !healthy {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
