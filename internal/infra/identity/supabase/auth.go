package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type passwordCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

type updateUserRequest struct {
	Password string `json:"password"`
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type sessionResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

// signUpResponse is a session when the project auto-confirms, otherwise the bare user.
type signUpResponse struct {
	sessionResponse
	userResponse
}

// SignInWithPassword signs in with email and password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp sessionResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": {"password"}},
		body:   passwordCredentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "sign in with password")
	}

	return resp.toSession()
}

// SignUp creates an account carrying the username as user metadata.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata entity.UserMetadata) (*service.SignUpResult, error) {
	var resp signUpResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/signup",
		body: signUpRequest{
			Email:    email,
			Password: password,
			Data:     map[string]any{"username": metadata.Username},
		},
	}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "sign up")
	}

	if resp.AccessToken != "" {
		session, err := resp.sessionResponse.toSession()
		if err != nil {
			return nil, err
		}

		return &service.SignUpResult{User: session.User, Session: session}, nil
	}

	// Email confirmation pending: the body is the user itself, or wraps it.
	userResp := &resp.userResponse
	if resp.sessionResponse.User != nil {
		userResp = resp.sessionResponse.User
	}
	user, err := userResp.toAuthUser()
	if err != nil {
		return nil, err
	}

	return &service.SignUpResult{User: user}, nil
}

// SignOut revokes the session behind the access token. A session that is already gone is not an error.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/logout",
		bearerToken: accessToken,
	}, nil)
	if err != nil {
		var authErr *domainerrors.AuthError
		if errors.As(err, &authErr) && isSessionGone(authErr.Status) {
			return nil
		}

		return errors.Wrap(err, "sign out")
	}

	return nil
}

// RequestPasswordReset sends the reset email; the link lands on redirectTo.
func (c *Client) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	query := url.Values{}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}

	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/recover",
		query:  query,
		body:   recoverRequest{Email: email},
	}, nil)
	if err != nil {
		return errors.Wrap(err, "request password reset")
	}

	return nil
}

// UpdatePassword sets a new password for the session owner.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) (*entity.AuthUser, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	var resp userResponse
	err := c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/user",
		body:        updateUserRequest{Password: newPassword},
		bearerToken: accessToken,
	}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "update password")
	}

	return resp.toAuthUser()
}

// GetUser returns the owner of the access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	var resp userResponse
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        "/user",
		bearerToken: accessToken,
	}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}

	return resp.toAuthUser()
}

// RefreshSession exchanges a refresh token for a new session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	var resp sessionResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": {"refresh_token"}},
		body:   refreshRequest{RefreshToken: refreshToken},
	}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "refresh session")
	}

	return resp.toSession()
}

// DeleteUser removes the account with the service role key. A missing account counts as deleted.
func (c *Client) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if c.serviceRoleKey == "" {
		return errors.New("supabase service role key is not configured")
	}

	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/admin/users/" + userID.String(),
		admin:  true,
	}, nil)
	if err != nil {
		var authErr *domainerrors.AuthError
		if errors.As(err, &authErr) && authErr.Status == http.StatusNotFound {
			return nil
		}

		return errors.Wrap(err, "delete user")
	}

	return nil
}

func isSessionGone(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusNotFound
}

func (r *sessionResponse) toSession() (*entity.Session, error) {
	if r.AccessToken == "" || r.User == nil {
		return nil, errors.New("identity provider returned an incomplete session")
	}

	user, err := r.User.toAuthUser()
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
		ExpiresIn:    r.ExpiresIn,
		User:         user,
	}
	switch {
	case r.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(r.ExpiresAt, 0)
	case r.ExpiresIn > 0:
		session.ExpiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}

	return session, nil
}

func (r *userResponse) toAuthUser() (*entity.AuthUser, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, errors.Wrap(err, "identity provider returned an invalid user id")
	}

	user := &entity.AuthUser{ID: id, Email: r.Email}
	if username, ok := r.UserMetadata["username"].(string); ok {
		user.Metadata.Username = username
	}

	return user, nil
}
