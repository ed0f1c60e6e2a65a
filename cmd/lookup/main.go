package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zip2mp/internal/lookup/handler"
	"zip2mp/internal/lookup/service"
	"zip2mp/internal/lookup/validator"
	"zip2mp/pkg/config"
	"zip2mp/pkg/events"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/metrics"
	"zip2mp/pkg/middleware"
)

func main() {
	cfg := config.Load("lookup")
	log := cfg.Log
	log.Info("Starting representative lookup service")

	m := metrics.New()
	publisher := initPublisher(cfg, log)
	if publisher != nil {
		defer publisher.Close()
	}

	lookupService := service.New(cfg, m)
	server := setupHTTPServer(cfg, lookupService, publisher, m, log)

	run(cfg, server, log)
}

func initPublisher(cfg *config.Config, log *logger.Logger) *events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("Lookup event publishing disabled (no brokers configured)")
		return nil
	}

	publisher, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Fatal("Failed to create lookup event publisher", "error", err)
	}
	log.Info("Lookup event publishing enabled", "topic", cfg.KafkaTopic)
	return publisher
}

func setupHTTPServer(
	cfg *config.Config,
	lookupService service.LookupService,
	publisher *events.Publisher,
	m *metrics.Metrics,
	log *logger.Logger,
) *http.Server {
	router := httprouter.New()

	reqValidator := validator.NewRequestValidator(log)
	lookupHandler := handler.NewLookupHandler(lookupService, reqValidator, publisher, m, log)
	lookupHandler.RegisterRoutes(router)

	healthHandler := handler.NewHealthHandler(log)
	healthHandler.RegisterRoutes(router)

	// Middleware order: Recovery, Logging, CORS, Timeout, then the router.
	var apiHandler http.Handler = router
	apiHandler = middleware.RequestTimeout(cfg.RequestTimeout)(apiHandler)
	apiHandler = middleware.CORS(cfg.CORSAllowedOrigins)(apiHandler)
	apiHandler = middleware.RequestLogging(log)(apiHandler)
	apiHandler = middleware.Recovery(log)(apiHandler)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Info("HTTP server configured", "port", cfg.Port)
	return server
}

func run(cfg *config.Config, server *http.Server, log *logger.Logger) {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)
		gracefulShutdown(cfg, server, log)
	}
}

func gracefulShutdown(cfg *config.Config, server *http.Server, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		if err := server.Close(); err != nil {
			log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	log.Info("Server stopped gracefully")
}
