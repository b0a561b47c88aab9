// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

// Package status serves the operational endpoints on a separate
// listener, away from the public site.
package status

import (
	"log/slog"
	"net/http"

	sloghttp "github.com/samber/slog-http"

	"github.com/oleg-github-collab/KooKooha/internal/db"
)

type Status struct {
	logger  *slog.Logger
	address string
	tStore  db.TranslationStore
	routes  map[string]http.Handler
}

func NewStatus(
	logger *slog.Logger,
	address string,
	tStore db.TranslationStore,
) *Status {
	return &Status{
		logger:  logger,
		address: address,
		tStore:  tStore,
	}
}

func (s *Status) ServeHTTP() error {
	mux := http.NewServeMux()

	loggerMW := sloghttp.NewWithConfig(
		s.logger, sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
		},
	)

	s.routes = s.addRoutes()
	registerRoutes(mux, s.routes)

	srv := &http.Server{
		Addr:    s.address,
		Handler: loggerMW(mux),
	}

	s.logger.Info("status listening on", "address", s.address)
	return srv.ListenAndServe()
}
