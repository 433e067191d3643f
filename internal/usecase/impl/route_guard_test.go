package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteGuard_Decide(t *testing.T) {
	guard := NewRouteGuard(newTestConfig())

	tests := []struct {
		name           string
		path           string
		sessionPresent bool
		expected       string
	}{
		{name: "anonymous on protected page", path: "/profile", expected: "/login"},
		{name: "anonymous below protected page", path: "/results/42", expected: "/login"},
		{name: "anonymous on settings", path: "/settings", expected: "/login"},
		{name: "anonymous on lookalike path", path: "/profiles", expected: ""},
		{name: "anonymous on public page", path: "/leaderboard", expected: ""},
		{name: "anonymous on login", path: "/login", expected: ""},
		{name: "signed in on login", path: "/login", sessionPresent: true, expected: "/"},
		{name: "signed in on protected page", path: "/profile", sessionPresent: true, expected: ""},
		{name: "signed in on public page", path: "/leaderboard", sessionPresent: true, expected: ""},
		{name: "signed in on signup", path: "/signup", sessionPresent: true, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Decide(tt.path, tt.sessionPresent)

			assert.Equal(t, tt.expected, decision.Target)
			assert.Equal(t, tt.expected != "", decision.IsRedirect())
		})
	}
}
