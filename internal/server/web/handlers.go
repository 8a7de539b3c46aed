package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/daycompass/internal/common"
	"github.com/dmitrijs2005/daycompass/internal/server/gate"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
	"github.com/dmitrijs2005/daycompass/internal/server/wizard"
)

// --- pages ---

// handleRoot converges every "where do I go" decision onto
// gate.LandingRedirect. Anonymous visitors go to the login page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())
	if !info.Session.Present() {
		http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
		return
	}

	var st *gate.OnboardingState
	if info.Settings != nil {
		st = &gate.OnboardingState{
			Completed:      info.Settings.OnboardingCompleted,
			DefaultLanding: info.Settings.DefaultLanding,
		}
	}
	http.Redirect(w, r, gate.LandingRedirect(st), http.StatusSeeOther)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	tz := ""
	if info.Settings != nil {
		tz = info.Settings.Timezone
	}
	view, err := s.dashboard.Today(r.Context(), info.Session.UserID, tz)
	if err != nil {
		s.logger.Error(r.Context(), "today view failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleVision(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	tiles, err := s.dashboard.Vision(r.Context(), info.Session.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "vision view failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tiles": tiles})
}

func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	items, err := s.dashboard.Inbox(r.Context(), info.Session.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "inbox view failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWizardStep(w http.ResponseWriter, r *http.Request) {
	step := r.PathValue("step")
	n, err := strconv.Atoi(step)
	if err != nil || n < 0 || n >= wizard.StepCount {
		writeError(w, http.StatusNotFound, "unknown step")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"step":  step,
		"label": wizard.StepLabel(n),
	})
}

func (s *Server) handlePublicPage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"page": page})
	}
}

// --- session API ---

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, pair, err := s.users.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error(r.Context(), "signup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	setSessionCookies(w, pair, s.cfg.AccessTokenValidityDuration, s.cfg.RefreshTokenValidityDuration, s.cookieOptions())
	writeJSON(w, http.StatusCreated, map[string]string{"id": user.ID, "email": user.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	pair, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	setSessionCookies(w, pair, s.cfg.AccessTokenValidityDuration, s.cfg.RefreshTokenValidityDuration, s.cookieOptions())
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(common.RefreshTokenCookieName)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusUnauthorized, "no refresh token")
		return
	}

	pair, err := s.users.RefreshToken(r.Context(), c.Value)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			clearSessionCookies(w, s.cookieOptions())
			writeError(w, http.StatusUnauthorized, "refresh token rejected")
			return
		}
		s.logger.Error(r.Context(), "refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	setSessionCookies(w, pair, s.cfg.AccessTokenValidityDuration, s.cfg.RefreshTokenValidityDuration, s.cookieOptions())
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(common.RefreshTokenCookieName); err == nil && c.Value != "" {
		if err := s.users.Logout(r.Context(), c.Value); err != nil {
			s.logger.Warn(r.Context(), "logout cleanup failed", "error", err)
		}
	}
	clearSessionCookies(w, s.cookieOptions())
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- setup and settings API ---

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	p, err := s.wizard.Setup(r.Context(), info.Session.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "setup projection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type saveStepRequest struct {
	StepID    string `json:"stepId"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleSaveStep(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req saveStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StepID == "" {
		writeError(w, http.StatusBadRequest, "stepId is required")
		return
	}

	if err := s.wizard.SaveStep(r.Context(), info.Session.UserID, req.StepID, req.Completed); err != nil {
		s.logger.Error(r.Context(), "save step failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type saveSettingsRequest struct {
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	DefaultLanding      string `json:"defaultLanding"`
	Timezone            string `json:"timezone"`
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req saveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	settings := &models.Settings{
		UserID:              info.Session.UserID,
		OnboardingCompleted: req.OnboardingCompleted,
		DefaultLanding:      req.DefaultLanding,
		Timezone:            req.Timezone,
	}
	if err := s.settings.Save(r.Context(), settings); err != nil {
		s.logger.Error(r.Context(), "save settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- storage API ---

type signUploadRequest struct {
	ContentType string `json:"contentType"`
}

func (s *Server) handleSignUpload(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req signUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	key, url, err := s.storage.SignUpload(r.Context(), info.Session.UserID, req.ContentType)
	if err != nil {
		if errors.Is(err, common.ErrorUnsupportedContentType) {
			writeError(w, http.StatusUnsupportedMediaType, "unsupported content type")
			return
		}
		s.logger.Error(r.Context(), "upload signing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

func (s *Server) handleSignDownload(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	url, err := s.storage.SignDownload(r.Context(), info.Session.UserID, key)
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		s.logger.Error(r.Context(), "download signing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// --- content API ---

type addInboxItemRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleAddInboxItem(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req addInboxItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	item, err := s.dashboard.AddInboxItem(r.Context(), info.Session.UserID, req.Content)
	if err != nil {
		s.logger.Error(r.Context(), "add inbox item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

type addVisionTileRequest struct {
	Title    string `json:"title"`
	ImageKey string `json:"imageKey"`
	Position int    `json:"position"`
}

func (s *Server) handleAddVisionTile(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req addVisionTileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	tile := &models.VisionTile{
		UserID:   info.Session.UserID,
		Title:    req.Title,
		ImageKey: req.ImageKey,
		Position: req.Position,
	}
	created, err := s.dashboard.AddVisionTile(r.Context(), tile)
	if err != nil {
		s.logger.Error(r.Context(), "add vision tile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type addGoalRequest struct {
	Title   string `json:"title"`
	Area    string `json:"area"`
	DueDate string `json:"dueDate"`
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req addGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	goal := &models.Goal{
		UserID:  info.Session.UserID,
		Title:   req.Title,
		Area:    req.Area,
		DueDate: req.DueDate,
	}
	created, err := s.dashboard.AddGoal(r.Context(), goal)
	if err != nil {
		s.logger.Error(r.Context(), "add goal failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type addHabitRequest struct {
	Title    string `json:"title"`
	Weekdays string `json:"weekdays"`
}

func (s *Server) handleAddHabit(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())

	var req addHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	habit := &models.Habit{
		UserID:   info.Session.UserID,
		Title:    req.Title,
		Weekdays: req.Weekdays,
	}
	created, err := s.dashboard.AddHabit(r.Context(), habit)
	if err != nil {
		s.logger.Error(r.Context(), "add habit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
