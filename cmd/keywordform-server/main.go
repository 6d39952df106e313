package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/text/language"

	"github.com/goliatone/go-keywordform/internal/config"
	"github.com/goliatone/go-keywordform/internal/logging"
	"github.com/goliatone/go-keywordform/internal/server"
	"github.com/goliatone/go-keywordform/pkg/contract"
	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/renderers/vanilla"
	"github.com/goliatone/go-keywordform/pkg/transport"
	"github.com/goliatone/go-keywordform/pkg/view"
)

func main() {
	configPath := flag.String("config", "", "config file (optional)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := logging.New(cfg.Logger)

	opts := []transport.Option{
		transport.WithTimeout(cfg.Service.Timeout),
		transport.WithUserAgent(cfg.Service.UserAgent),
		transport.WithLogger(logging.Component(logger, "transport")),
	}
	if cfg.Service.ValidateContract {
		validator, err := contract.New(ctx)
		if err != nil {
			log.Fatalf("Failed to load service contract: %v", err)
		}
		opts = append(opts, transport.WithResponseValidator(validator))
	}
	client, err := transport.New(cfg.Service.BaseURL, opts...)
	if err != nil {
		log.Fatalf("Failed to configure transport: %v", err)
	}

	catalog, err := locations.Default()
	if cfg.LocationsFile != "" {
		catalog, err = locations.Load(cfg.LocationsFile)
	}
	if err != nil {
		log.Fatalf("Failed to load locations: %v", err)
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Fatalf("Invalid locale: %v", err)
	}

	renderer, err := vanilla.New()
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := server.New(server.Deps{
		Transport:  client,
		Catalog:    catalog,
		Renderer:   renderer,
		Logger:     logging.Component(logger, "http"),
		Registry:   registry,
		Health:     client,
		ViewOpts:   []view.Option{view.WithLocale(tag)},
		SessionTTL: cfg.Server.SessionTTL,
	})
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Str("service", client.BaseURL()).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
