// Package web is the HTTP surface of the server: route registration, the
// navigation gate, session cookies, and the JSON handlers.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/daycompass/internal/logging"
	"github.com/dmitrijs2005/daycompass/internal/server/config"
	"github.com/dmitrijs2005/daycompass/internal/server/services"
)

// Server wires HTTP endpoints to services.
type Server struct {
	mux       *http.ServeMux
	logger    logging.Logger
	cfg       *config.Config
	users     *services.UserService
	settings  *services.SettingsService
	wizard    *services.WizardService
	dashboard *services.DashboardService
	storage   *services.StorageService
}

// NewServer assembles routes with dependencies.
func NewServer(logger logging.Logger, cfg *config.Config,
	users *services.UserService, settings *services.SettingsService,
	wizard *services.WizardService, dashboard *services.DashboardService,
	storage *services.StorageService) *Server {

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger.With("module", "web"),
		cfg:       cfg,
		users:     users,
		settings:  settings,
		wizard:    wizard,
		dashboard: dashboard,
		storage:   storage,
	}
	s.register()
	return s
}

// register lays out the two route groups. The health probe and the session
// API sit outside the navigation gate: they must work before a session
// exists. API routes carry their own auth check; every page route goes
// through the gate.
func (s *Server) register() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/refresh", s.handleRefresh)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	s.mux.HandleFunc("GET /api/setup", s.requireAuth(s.handleSetup))
	s.mux.HandleFunc("POST /api/setup", s.requireAuth(s.handleSaveStep))
	s.mux.HandleFunc("PUT /api/settings", s.requireAuth(s.handleSaveSettings))
	s.mux.HandleFunc("POST /api/uploads", s.requireAuth(s.handleSignUpload))
	s.mux.HandleFunc("GET /api/uploads/url", s.requireAuth(s.handleSignDownload))
	s.mux.HandleFunc("POST /api/inbox", s.requireAuth(s.handleAddInboxItem))
	s.mux.HandleFunc("POST /api/vision", s.requireAuth(s.handleAddVisionTile))
	s.mux.HandleFunc("POST /api/goals", s.requireAuth(s.handleAddGoal))
	s.mux.HandleFunc("POST /api/habits", s.requireAuth(s.handleAddHabit))

	pages := http.NewServeMux()
	pages.HandleFunc("GET /{$}", s.handleRoot)
	pages.HandleFunc("GET /today", s.handleToday)
	pages.HandleFunc("GET /vision", s.handleVision)
	pages.HandleFunc("GET /inbox", s.handleInbox)
	pages.HandleFunc("GET /wizard/{step}", s.handleWizardStep)
	pages.HandleFunc("GET /login", s.handlePublicPage("login"))
	pages.HandleFunc("GET /signup", s.handlePublicPage("signup"))
	pages.HandleFunc("GET /reset-password", s.handlePublicPage("reset-password"))

	s.mux.Handle("/", s.gated(pages))
}

// ServeHTTP delegates to the underlying mux, with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.logger.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddr,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.cfg.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
