package handler

import (
	"time"

	"zephyr/internal/domain/entity"
)

// --- Request bodies ---

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type signUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type recoveryRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// --- Response bodies ---

// UserResponse is the public view of a provider account.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// ProfileResponse is the public view of a users row.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
}

// AuthStateResponse is the snapshot of a session context.
type AuthStateResponse struct {
	Status  entity.AuthStatus `json:"status"`
	Loading bool              `json:"loading"`
	User    *UserResponse     `json:"user"`
	Profile *ProfileResponse  `json:"profile"`
}

// AccountResponse is returned by login, signup and recovery.
type AccountResponse struct {
	User                 *UserResponse    `json:"user"`
	Profile              *ProfileResponse `json:"profile,omitempty"`
	ConfirmationRequired bool             `json:"confirmation_required,omitempty"`
}

func newUserResponse(user *entity.AuthUser) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Metadata.Username,
	}
}

func newProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	return &ProfileResponse{
		ID:        profile.ID.String(),
		Username:  profile.Username,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt,
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
	}
}

func newAuthStateResponse(state entity.AuthState) AuthStateResponse {
	return AuthStateResponse{
		Status:  state.Status,
		Loading: state.Loading(),
		User:    newUserResponse(state.User),
		Profile: newProfileResponse(state.Profile),
	}
}
