package entity

// RouteDecision is the outcome of guarding a page navigation.
type RouteDecision struct {
	Target string // Empty means the navigation is allowed.
}

// Allow lets the navigation through.
func Allow() RouteDecision {
	return RouteDecision{}
}

// RedirectTo sends the navigation to target instead.
func RedirectTo(target string) RouteDecision {
	return RouteDecision{Target: target}
}

// IsRedirect reports whether the navigation must be redirected.
func (d RouteDecision) IsRedirect() bool {
	return d.Target != ""
}
