package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/piggytree/piggytree/internal/resolver"
	"github.com/piggytree/piggytree/internal/store"
)

// Server is the HTTP facade over the entry store and the player resolver.
type Server struct {
	port   int
	server *http.Server
}

// Options tunes optional server behavior.
type Options struct {
	StaticDir     string
	EnableMetrics bool
}

// NewServer wires routes, middleware and handlers into an http.Server.
func NewServer(port int, entries *store.EntryStore, res *resolver.Resolver, opts Options) *Server {
	router := newRouter(NewHandler(entries, res), opts)

	return &Server{
		port: port,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

func newRouter(handler *Handler, opts Options) *mux.Router {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	if opts.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/lookup-player", handler.LookupPlayer).Methods("POST")
	api.HandleFunc("/entries", handler.GetEntries).Methods("GET")
	api.HandleFunc("/entries", handler.SaveEntry).Methods("POST")
	api.HandleFunc("/entries/{id:[0-9]+}", handler.DeleteEntry).Methods("DELETE")
	api.HandleFunc("/export-csv", handler.ExportCSV).Methods("GET")
	api.HandleFunc("/categories", handler.GetCategories).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")

	// Preflight requests are matched here and answered by the CORS
	// middleware; mux middleware only runs on matched routes.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	// Front-end assets
	if opts.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir)))
	}

	return router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
