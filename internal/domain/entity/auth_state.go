package entity

// AuthStatus is the state of a session context.
type AuthStatus string

const (
	AuthStatusLoading       AuthStatus = "loading"
	AuthStatusAuthenticated AuthStatus = "authenticated"
	AuthStatusAnonymous     AuthStatus = "anonymous"
)

// AuthState is a read-only snapshot of a session context.
type AuthState struct {
	Status  AuthStatus
	User    *AuthUser
	Profile *UserProfile // May be nil even when authenticated, if the profile row is missing.
}

// Loading reports whether the initial session check has not finished yet.
func (s AuthState) Loading() bool {
	return s.Status == AuthStatusLoading
}

// Authenticated reports whether a user is signed in.
func (s AuthState) Authenticated() bool {
	return s.Status == AuthStatusAuthenticated && s.User != nil
}

// LoadingState is the initial state, optionally carrying a mirrored profile for first paint.
func LoadingState(mirrored *UserProfile) AuthState {
	return AuthState{Status: AuthStatusLoading, Profile: mirrored}
}

// AnonymousState is the signed-out state.
func AnonymousState() AuthState {
	return AuthState{Status: AuthStatusAnonymous}
}

// AuthenticatedState is the signed-in state.
func AuthenticatedState(user *AuthUser, profile *UserProfile) AuthState {
	return AuthState{Status: AuthStatusAuthenticated, User: user, Profile: profile}
}
