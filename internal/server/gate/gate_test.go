package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want RouteClass
	}{
		{"/login", RoutePublic},
		{"/login/magic-link", RoutePublic},
		{"/signup", RoutePublic},
		{"/signup/confirm/abc", RoutePublic},
		{"/reset-password", RoutePublic},
		{"/reset-password/token/xyz", RoutePublic},
		{"/", RouteRoot},
		{"/wizard", RouteWizard},
		{"/wizard/0", RouteWizard},
		{"/wizard/13", RouteWizard},
		{"/today", RouteProtected},
		{"/vision", RouteProtected},
		{"/inbox", RouteProtected},
		{"/api/settings", RouteProtected},
		{"/Login", RouteProtected}, // case-sensitive
		{"", RouteProtected},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestDecide(t *testing.T) {
	anon := Session{}
	alice := Session{UserID: "u-1"}
	done := &OnboardingState{Completed: true, DefaultLanding: "today"}
	notDone := &OnboardingState{Completed: false}

	tests := []struct {
		name  string
		sess  Session
		class RouteClass
		st    *OnboardingState
		want  Decision
	}{
		{"anon protected redirects to login", anon, RouteProtected, nil, Decision{Redirect, LoginPath}},
		{"anon root allowed through", anon, RouteRoot, nil, Decision{Action: Allow}},
		{"anon public allowed", anon, RoutePublic, nil, Decision{Action: Allow}},
		{"anon wizard allowed", anon, RouteWizard, nil, Decision{Action: Allow}},

		{"authed public redirects to root", alice, RoutePublic, done, Decision{Redirect, RootPath}},
		{"authed public redirects to root even when not onboarded", alice, RoutePublic, nil, Decision{Redirect, RootPath}},
		{"authed wizard always allowed", alice, RouteWizard, nil, Decision{Action: Allow}},
		{"authed wizard allowed when complete", alice, RouteWizard, done, Decision{Action: Allow}},
		{"authed root allowed", alice, RouteRoot, nil, Decision{Action: Allow}},

		{"authed protected no settings row", alice, RouteProtected, nil, Decision{Redirect, WizardStartPath}},
		{"authed protected onboarding incomplete", alice, RouteProtected, notDone, Decision{Redirect, WizardStartPath}},
		{"authed protected onboarding complete", alice, RouteProtected, done, Decision{Action: Allow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.sess, tt.class, tt.st))
		})
	}
}

func TestDecide_Idempotent(t *testing.T) {
	sess := Session{UserID: "u-1"}
	st := &OnboardingState{Completed: false}

	first := Decide(sess, RouteProtected, st)
	second := Decide(sess, RouteProtected, st)

	assert.Equal(t, first, second, "same snapshot must yield same decision")
}

func TestLandingRedirect(t *testing.T) {
	tests := []struct {
		name string
		st   *OnboardingState
		want string
	}{
		{"no settings row goes to wizard", nil, WizardStartPath},
		{"incomplete goes to wizard", &OnboardingState{}, WizardStartPath},
		{"today", &OnboardingState{Completed: true, DefaultLanding: "today"}, TodayPath},
		{"vision", &OnboardingState{Completed: true, DefaultLanding: "vision"}, VisionPath},
		{"inbox", &OnboardingState{Completed: true, DefaultLanding: "inbox"}, InboxPath},
		{"absent landing defaults to today", &OnboardingState{Completed: true}, TodayPath},
		{"unrecognized landing defaults to today", &OnboardingState{Completed: true, DefaultLanding: "garage"}, TodayPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandingRedirect(tt.st))
		})
	}
}
