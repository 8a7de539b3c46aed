package web

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/daycompass/internal/server/gate"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type requestContextKey string

const contextKeyRequestInfo requestContextKey = "dc-request-info"

// requestInfo is what the gate resolved for this request: the identity and,
// for authenticated page requests, the settings row (nil when absent or the
// store was unreachable).
type requestInfo struct {
	Session  gate.Session
	Settings *models.Settings
}

func withRequestInfo(ctx context.Context, info requestInfo) context.Context {
	return context.WithValue(ctx, contextKeyRequestInfo, info)
}

func requestInfoFromContext(ctx context.Context) requestInfo {
	if v, ok := ctx.Value(contextKeyRequestInfo).(requestInfo); ok {
		return v
	}
	return requestInfo{}
}

// gated applies the navigation state machine to page requests. Identity is
// resolved once, the route is classified, onboarding state is looked up only
// when the decision depends on it, and redirects are 303 so the browser
// always re-requests with GET. A settings read failure is logged and treated
// as "no settings": the user lands in the wizard rather than on an error
// page.
func (s *Server) gated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.resolveSession(w, r)
		class := gate.Classify(r.URL.Path)

		var settings *models.Settings
		var st *gate.OnboardingState
		if sess.Present() && (class == gate.RouteProtected || class == gate.RouteRoot) {
			var err error
			settings, err = s.settings.Lookup(r.Context(), sess.UserID)
			if err != nil {
				s.logger.Error(r.Context(), "settings lookup failed", "error", err, "path", r.URL.Path)
				settings = nil
			}
			if settings != nil {
				st = &gate.OnboardingState{
					Completed:      settings.OnboardingCompleted,
					DefaultLanding: settings.DefaultLanding,
				}
			}
		}

		d := gate.Decide(sess, class, st)
		if d.Action == gate.Redirect {
			http.Redirect(w, r, d.Target, http.StatusSeeOther)
			return
		}

		ctx := withRequestInfo(r.Context(), requestInfo{Session: sess, Settings: settings})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth guards API routes: a valid session is required, but onboarding
// completion is not. API callers get a 401 instead of a navigation redirect.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.resolveSession(w, r)
		if !sess.Present() {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := withRequestInfo(r.Context(), requestInfo{Session: sess})
		next(w, r.WithContext(ctx))
	}
}
