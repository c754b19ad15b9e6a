// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the family service API that provides a RESTful API for managing
// the members of a single family.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"goa.design/clue/health"
	"golang.org/x/sync/errgroup"

	"github.com/linuxfoundation/lfx-v2-family-service/cmd/family-api/service"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/log"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		port       = flag.String("p", "", "listening port, overrides PORT")
		bind       = flag.String("bind", "", "interface to bind on, '*' for all")
		configFile = flag.String("config", os.Getenv(constants.EnvConfigFile), "optional YAML configuration file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	log.InitStructureLogConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err, log.PriorityCritical())
		return 1
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *bind != "" {
		cfg.Bind = *bind
	}

	otelConfig := utils.OTelConfigFromEnv()
	otelShutdown, err := utils.SetupOTelSDKWithConfig(ctx, otelConfig)
	if err != nil {
		slog.ErrorContext(ctx, "error setting up OpenTelemetry SDK", "error", err, log.PriorityCritical())
		return 1
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("error shutting down OpenTelemetry SDK", "error", err)
		}
	}()

	store := service.MemberStorage(ctx, cfg.FamilyName)

	messaging, err := service.MessagePublisher(ctx, cfg.MessagingSource, cfg.NATS)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize message publisher", "error", err, log.PriorityCritical())
		return 1
	}
	defer func() {
		if err := messaging.Close(); err != nil {
			slog.Error("error closing message publisher", "error", err)
		}
	}()

	familyService := service.NewFamilyService(
		service.MemberReaderOrchestrator(store),
		service.MemberWriterOrchestrator(store, messaging.Publisher),
	)

	checker := health.NewChecker(append([]health.Pinger{store}, messaging.Pingers...)...)

	srv := &http.Server{
		Addr:              cfg.listenAddr(),
		Handler:           newHTTPHandler(familyService, checker, otelConfig.MetricsExporter == utils.OTelExporterPrometheus),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runHTTPServer(gctx, srv)
	})

	slog.InfoContext(ctx, "family service started",
		"addr", srv.Addr,
		"last_name", store.LastName(),
		"messaging_source", cfg.MessagingSource,
	)

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "HTTP server failed", "error", err, log.PriorityCritical())
		return 1
	}

	slog.InfoContext(ctx, "exited")
	return 0
}
