// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oleg-github-collab/KooKooha/internal/config"
	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/db/jsondb"
	"github.com/oleg-github-collab/KooKooha/internal/db/kvdb"
	"github.com/oleg-github-collab/KooKooha/internal/i18n"
	"github.com/oleg-github-collab/KooKooha/internal/server"
	"github.com/oleg-github-collab/KooKooha/internal/status"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to TOML config file, empty for built-in defaults")
		addr        = flag.String("addr", "", "server address, overrides the config file")
		dbStr       = flag.String("db", "", "database connection string, overrides the config file")
		otlpAddr    = flag.String("otlp-grpc", "", "otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "", "log level, overrides the config file")
		staticDir   = flag.String("static-dir", "", "path to static directory, overrides the embedded one")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("unable to load config", "file", *configFile, "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbStr != "" {
		cfg.DB.URL = *dbStr
	}
	if *otlpAddr != "" {
		cfg.Server.OTLPAddr = *otlpAddr
	}
	if *logLevelArg != "" {
		cfg.Server.LogLevel = *logLevelArg
	}
	if *staticDir != "" {
		cfg.Server.StaticDir = *staticDir
	}

	var logLevel slog.Level
	levelErr := logLevel.UnmarshalText([]byte(cfg.Server.LogLevel))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if levelErr != nil {
		logger.Error("unable to parse log level", "level-input", cfg.Server.LogLevel, "error", levelErr)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", cfg.Server.Addr)
	logger.Info("otlp/gRPC", "address", cfg.Server.OTLPAddr, "service", cfg.Server.ServiceName)
	logger.Info("lens backend", "address", cfg.Lens.BaseURL, "pricing-authority", cfg.Pricing.Authority)

	if cfg.Server.OTLPAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, cfg.Server.OTLPAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		// Set up a trace exporter
		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	var (
		translationStore db.TranslationStore
		leadStore        db.LeadStore
	)

	switch cfg.DBScheme() {
	case "kvdb":
		bdb, err := bolt.Open(cfg.DBPath(), 0600, nil)
		if err != nil {
			logger.Error("could not open database", "path", cfg.DBPath(), "error", err)
			os.Exit(1)
		}
		defer bdb.Close()

		translationStore, err = kvdb.NewTranslationStore(bdb)
		if err != nil {
			logger.Error("could not initialize translation bucket", "error", err)
			os.Exit(1)
		}
		leadStore, err = kvdb.NewLeadStore(bdb)
		if err != nil {
			logger.Error("could not initialize lead bucket", "error", err)
			os.Exit(1)
		}
	case "jsondb":
		path := cfg.DBPath()
		translationStore, err = jsondb.NewTranslationStore(path + "/translations.json")
		if err != nil {
			logger.Error("could not initialize translation store", "path", path, "error", err)
			os.Exit(1)
		}
		leadStore, err = jsondb.NewLeadStore(path + "/leads.json")
		if err != nil {
			logger.Error("could not initialize lead store", "path", path, "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("unknown storage backend", "type", cfg.DBScheme())
		os.Exit(1)
	}

	if err := i18n.SeedDefaults(context.Background(), translationStore); err != nil {
		logger.Error("could not seed default translations", "error", err)
		os.Exit(1)
	}

	if cfg.Server.StatusAddr != "" {
		go func() {
			st := status.NewStatus(logger.WithGroup("status"), cfg.Server.StatusAddr, translationStore)
			if err := st.ServeHTTP(); err != nil {
				logger.Error("status listener failed", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewServer(cfg, translationStore, leadStore),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
