package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"tablechef/internal/api"
	"tablechef/internal/catalog"
	"tablechef/internal/config"
	"tablechef/internal/models"
	"tablechef/internal/monitoring"
	"tablechef/internal/orders"
	"tablechef/internal/review"
	"tablechef/internal/ws"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := monitoring.NewMetrics(registry)

	model := initializeLLM(cfg)
	reviewer := review.NewClient(model, cfg.Review.Model, metrics)

	cat := catalog.NewStore(models.SeedMenu())
	ord := orders.NewStore()
	hub := ws.NewHub()

	server := api.NewServer(cat, ord, reviewer, hub, metrics)

	go startMetricsServer(cfg.Server.MetricsPort, registry)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// initializeLLM builds the review model from the environment credential.
// When the credential is absent the service runs with review in degraded
// mode; that is not an error.
func initializeLLM(cfg *config.Config) llms.Model {
	apiKey := config.APIKey()
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, dietary review runs in fallback mode")
		return nil
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(cfg.Review.Model),
	}
	if cfg.Review.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.Review.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		log.Printf("Failed to initialize review model, running in fallback mode: %v", err)
		return nil
	}
	return model
}

func startMetricsServer(port int, registry *prometheus.Registry) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
