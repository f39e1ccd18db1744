package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danhquyen2004/Block-Blast/pkg/api/handlers"
	"github.com/danhquyen2004/Block-Blast/pkg/api/middleware"
	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port           int
	TLS            *TLSConfig
	SessionManager *game.SessionManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.SessionManager),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter registers the game routes.
func NewRouter(manager *game.SessionManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)

	r.HandleFunc("/shapes", handlers.HandleListShapes(manager.Catalog())).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/players/{playerID}/games", handlers.HandleNewGame(manager)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/players/{playerID}/games/resume", handlers.HandleResumeGame(manager)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/players/{playerID}/best-score", handlers.HandleBestScore(manager)).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/games/{sessionID}", handlers.HandleGetSession(manager)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games/{sessionID}", handlers.HandleDeleteSession(manager)).Methods(http.MethodDelete)
	r.HandleFunc("/games/{sessionID}/preview", handlers.HandlePreview(manager)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/games/{sessionID}/place", handlers.HandlePlace(manager)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/games/{sessionID}/events", handlers.HandleEvents(manager)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games/{sessionID}/ws", handlers.HandleSessionSocket(manager)).Methods(http.MethodGet)

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
