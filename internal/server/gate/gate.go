// Package gate holds the per-request access-control decision: route
// classification, the authentication/onboarding state machine, and the root
// landing redirect. Everything here is a pure, total function over snapshot
// inputs; the HTTP layer feeds it a resolved session and an onboarding state
// and applies the resulting decision.
package gate

import "strings"

// Well-known redirect targets.
const (
	LoginPath       = "/login"
	RootPath        = "/"
	WizardPrefix    = "/wizard"
	WizardStartPath = "/wizard/0"
	TodayPath       = "/today"
	VisionPath      = "/vision"
	InboxPath       = "/inbox"
)

// publicPrefixes is the fixed set of route prefixes reachable without a
// session. Matching is case-sensitive and prefix-based.
var publicPrefixes = []string{"/login", "/signup", "/reset-password"}

// RouteClass tags a request path.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteRoot
	RouteWizard
	RouteProtected
)

func (c RouteClass) String() string {
	switch c {
	case RoutePublic:
		return "public"
	case RouteRoot:
		return "root"
	case RouteWizard:
		return "wizard"
	default:
		return "protected"
	}
}

// Classify maps a request path to its RouteClass. Precedence is fixed:
// public prefixes first, then exact root, then the wizard prefix, else
// protected.
func Classify(path string) RouteClass {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return RoutePublic
		}
	}
	if path == RootPath {
		return RouteRoot
	}
	if strings.HasPrefix(path, WizardPrefix) {
		return RouteWizard
	}
	return RouteProtected
}

// Session is the per-request authenticated identity. A zero value means
// unauthenticated.
type Session struct {
	UserID string
}

func (s Session) Present() bool { return s.UserID != "" }

// OnboardingState is the gate's view of the settings row. A nil
// *OnboardingState (row absent or store unreachable) must be treated
// identically to Completed=false by all callers.
type OnboardingState struct {
	Completed      bool
	DefaultLanding string
}

// Action says what to do with the request.
type Action int

const (
	Allow Action = iota
	Redirect
)

// Decision is the sole output of the gate; ephemeral, per request.
type Decision struct {
	Action Action
	Target string
}

func allow() Decision                 { return Decision{Action: Allow} }
func redirect(target string) Decision { return Decision{Action: Redirect, Target: target} }

// Decide runs the access-control state machine for one request snapshot.
//
// Unauthenticated requests reach public and wizard routes, and the root
// (root performs its own redirect downstream); everything else bounces to
// /login. Authenticated requests are pushed off public routes back to the
// root, always reach the wizard (it is the completion mechanism), and reach
// protected routes only once onboarding is complete — otherwise they are
// sent to the first wizard step.
func Decide(sess Session, class RouteClass, st *OnboardingState) Decision {
	if !sess.Present() {
		if class == RouteProtected {
			return redirect(LoginPath)
		}
		return allow()
	}

	switch class {
	case RoutePublic:
		return redirect(RootPath)
	case RouteWizard, RouteRoot:
		return allow()
	default:
		if st == nil || !st.Completed {
			return redirect(WizardStartPath)
		}
		return allow()
	}
}

// LandingRedirect resolves the root path for an authenticated user: the
// wizard until onboarding is complete, then the configured default landing
// view. Both the root handler and any other "where do I go" surface must use
// this one helper so the two decision points cannot diverge.
func LandingRedirect(st *OnboardingState) string {
	if st == nil || !st.Completed {
		return WizardStartPath
	}
	switch st.DefaultLanding {
	case "vision":
		return VisionPath
	case "inbox":
		return InboxPath
	default:
		return TodayPath
	}
}
