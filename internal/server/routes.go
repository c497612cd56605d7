package server

import (
	"net/http"
	"strings"
)

// RouteDoc describes one mounted API route. The list is served from
// /api/routes so the dashboard (and curl) can discover the surface.
type RouteDoc struct {
	Methods []string `json:"methods"`
	Pattern string   `json:"pattern"`
	Summary string   `json:"summary,omitempty"`
}

type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// handle mounts h on mux and records it in the registry. methods is a
// comma-separated list like "GET,POST".
func handle(mux *http.ServeMux, rr *RouteRegistry, pattern, methods, summary string, h http.HandlerFunc) {
	rr.Add(RouteDoc{
		Methods: strings.Split(methods, ","),
		Pattern: pattern,
		Summary: summary,
	})
	mux.HandleFunc(pattern, h)
}
