package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcshop/internal/application/shop"
	"pcshop/internal/config"
	"pcshop/internal/domain/pc"
	httptransport "pcshop/internal/infrastructure/http"
	"pcshop/internal/infrastructure/id"
	"pcshop/internal/infrastructure/memory"
	"pcshop/internal/infrastructure/observability/oteltrace"
	"pcshop/internal/infrastructure/observability/prometrics"
	"pcshop/internal/infrastructure/observability/telemetry"
	"pcshop/internal/infrastructure/observability/zaplogger"
	"pcshop/internal/observability"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.New()
	if path := getenvDefault("CONFIG_FILE", "config.yaml"); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.LoadFile(path); err != nil {
				panic(err)
			}
		}
	}

	logger := zaplogger.New(
		observability.F("service", cfg.Service),
		observability.F("env", cfg.Env),
	)
	if syncer, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	metrics := prometrics.New(cfg.Service, "")
	counters := map[observability.MetricKey]observability.Counter{
		observability.MUsecaseRequests: metrics.Counter(
			string(observability.MUsecaseRequests),
			"Total number of use case invocations.",
			"use_case", "outcome",
		),
		observability.MHTTPRequests: metrics.Counter(
			string(observability.MHTTPRequests),
			"Total number of HTTP requests.",
			"method", "route", "status",
		),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MUsecaseDuration: metrics.Histogram(
			string(observability.MUsecaseDuration),
			"Duration of use case execution in seconds.",
			nil,
			"use_case",
		),
		observability.MHTTPRequestDuration: metrics.Histogram(
			string(observability.MHTTPRequestDuration),
			"Duration of HTTP request handling in seconds.",
			nil,
			"method", "route", "status",
		),
	}
	tel := telemetry.New(oteltrace.New(cfg.Service), logger, counters, histograms)

	customers := memory.NewCustomerRegistry()
	cards := memory.NewCardRegistry()
	factory := pc.NewCustomFactory()

	catalog := make(map[string]*pc.PresetModel, len(cfg.Catalog))
	for _, seed := range cfg.Catalog {
		preset, err := pc.NewPresetModel(seed.Name, seed.Manufacturer, seed.Parts)
		if err != nil {
			logger.Error("catalog_seed_invalid",
				observability.F("model", seed.Name),
				observability.F("error", err.Error()),
			)
			os.Exit(1)
		}
		catalog[preset.ModelName()] = preset
	}
	logger.Info("catalog_loaded", observability.F("presets", len(catalog)))

	shopService := shop.NewService(id.NewUUIDGenerator(), tel)
	handler := httptransport.NewHandler(customers, cards, factory, catalog, shopService)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", httptransport.ObservabilityMiddleware(tel)(handler.Router()))

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http_server_start",
			observability.F("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error",
				observability.F("error", err.Error()),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error",
			observability.F("error", err.Error()),
		)
	} else {
		logger.Info("http_server_stopped")
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
