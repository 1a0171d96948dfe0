package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/nfc-card-relay/internal/adapter"
	"github.com/MKhiriev/nfc-card-relay/internal/config"
	"github.com/MKhiriev/nfc-card-relay/internal/handler"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/MKhiriev/nfc-card-relay/internal/server"
	"github.com/MKhiriev/nfc-card-relay/internal/service"
	"github.com/MKhiriev/nfc-card-relay/internal/tracing"
	"github.com/MKhiriev/nfc-card-relay/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("nfc-card-relay")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.TraceSpans {
		tracerProvider := tracing.NewTracerProvider(log)
		otel.SetTracerProvider(tracerProvider)
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				log.Err(err).Msg("error shutting down tracer provider")
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	relayMetrics := metrics.New(registry)
	relayMetrics.SetBuildInfo(buildInfo)

	cardAdapter, err := adapter.NewHTTPCardLookupAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating card lookup adapter")
	}

	services := service.NewServices(adapter.WithMetrics(cardAdapter, relayMetrics), relayMetrics, log)

	handlers, err := handler.NewHandlers(services, relayMetrics, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
