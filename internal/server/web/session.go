package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/daycompass/internal/common"
	"github.com/dmitrijs2005/daycompass/internal/server/gate"
	"github.com/dmitrijs2005/daycompass/internal/server/services"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string // should usually be empty for __Host- cookies
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/" // required for __Host-
	}
	if !o.HttpOnly {
		o.HttpOnly = true // secure default
	}
	return o
}

// setSessionCookies writes both session cookies for a freshly minted token
// pair. Called on signup, login, and every refresh rotation, so a rotated
// pair always reaches the client in the same response.
func setSessionCookies(w http.ResponseWriter, pair *services.TokenPair, accessTTL, refreshTTL time.Duration, opts CookieOptions) {
	opts = opts.normalize()
	now := time.Now()

	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    pair.AccessToken,
		Path:     opts.Path,
		Domain:   opts.Domain,
		Expires:  now.Add(accessTTL),
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     common.RefreshTokenCookieName,
		Value:    pair.RefreshToken,
		Path:     opts.Path,
		Domain:   opts.Domain,
		Expires:  now.Add(refreshTTL),
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// clearSessionCookies removes both session cookies from the client.
func clearSessionCookies(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()
	for _, name := range []string{common.AccessTokenCookieName, common.RefreshTokenCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     opts.Path,
			Domain:   opts.Domain,
			MaxAge:   -1,
			HttpOnly: opts.HttpOnly,
			Secure:   opts.Secure,
			SameSite: opts.SameSite,
		})
	}
}

// resolveSession establishes the caller's identity exactly once per request.
// It tries the access token cookie first; if that is missing or no longer
// valid it falls back to the refresh token, rotating it and rewriting both
// cookies on the response. Any failure yields the zero Session: downstream
// code treats the request as unauthenticated, it never sees an error.
func (s *Server) resolveSession(w http.ResponseWriter, r *http.Request) gate.Session {
	if c, err := r.Cookie(common.AccessTokenCookieName); err == nil && c.Value != "" {
		if userID, err := s.users.UserIDFromAccessToken(c.Value); err == nil {
			return gate.Session{UserID: userID}
		}
	}

	c, err := r.Cookie(common.RefreshTokenCookieName)
	if err != nil || c.Value == "" {
		return gate.Session{}
	}

	pair, err := s.users.RefreshToken(r.Context(), c.Value)
	if err != nil {
		s.logger.Warn(r.Context(), "refresh token rejected", "error", err)
		return gate.Session{}
	}
	userID, err := s.users.UserIDFromAccessToken(pair.AccessToken)
	if err != nil {
		return gate.Session{}
	}

	setSessionCookies(w, pair, s.cfg.AccessTokenValidityDuration, s.cfg.RefreshTokenValidityDuration, s.cookieOptions())
	return gate.Session{UserID: userID}
}

func (s *Server) cookieOptions() CookieOptions {
	return CookieOptions{
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
