// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package status

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
)

func (s *Status) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readyz reports ready once the translation store answers.
func (s *Status) readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := s.tStore.ListLanguages(ctx); err != nil {
		s.logger.ErrorContext(ctx, "store not ready", "error", err)
		http.Error(w, "store not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Status) buildinfo(w http.ResponseWriter, r *http.Request) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		http.Error(w, "no build info", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"go":      info.GoVersion,
		"path":    info.Main.Path,
		"version": info.Main.Version,
	}); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode build info", "error", err)
	}
}
