// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package status

import (
	"net/http"
)

// register provided routes to http.ServerMux
func registerRoutes(
	mux *http.ServeMux,
	routes map[string]http.Handler,
) {
	for route, handler := range routes {
		mux.Handle(route, handler)
	}
}

func (s *Status) addRoutes() map[string]http.Handler {
	routes := make(map[string]http.Handler)

	routes["GET /healthz"] = http.HandlerFunc(s.healthz)
	routes["GET /readyz"] = http.HandlerFunc(s.readyz)
	routes["GET /buildinfo"] = http.HandlerFunc(s.buildinfo)

	return routes
}
