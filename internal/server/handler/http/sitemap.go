package http

import (
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Endpoint is one entry of the sitemap.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type sitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// paramPattern strips regexp constraints: {id:[0-9]+} -> {id}.
var paramPattern = regexp.MustCompile(`\{(\w+):[^}]+\}`)

// Sitemap lists every method/path pair registered on routes, sorted by
// path and then method.
func Sitemap(routes chi.Routes) ([]Endpoint, error) {
	endpoints := make([]Endpoint, 0)
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := paramPattern.ReplaceAllString(route, "{$1}")
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		endpoints = append(endpoints, Endpoint{Method: method, Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})
	return endpoints, nil
}

// sitemapHandler serves GET / with the routes registered on routes.
func sitemapHandler(routes chi.Routes, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoints, err := Sitemap(routes)
		if err != nil {
			writeError(w, r, logger, err, "")
			return
		}
		writeJSON(w, http.StatusOK, sitemapResponse{Endpoints: endpoints})
	}
}
