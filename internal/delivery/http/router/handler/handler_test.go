package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zephyr/config"
	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/delivery/http/cookie"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	mockUsecase "zephyr/internal/mocks/usecase"
	"zephyr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		App: &config.AppConfig{URL: "http://localhost:3000"},
		Session: &config.SessionConfig{
			AccessCookie:  "sb-access-token",
			RefreshCookie: "sb-refresh-token",
		},
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return env
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func cookieValues(rec *httptest.ResponseRecorder) map[string]string {
	result := make(map[string]string)
	for _, ck := range rec.Result().Cookies() {
		result[ck.Name] = ck.Value
	}

	return result
}

func newAuthHandlerFixture(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	h, uc, _ := newAuthHandlerWithContexts(t)

	return h, uc
}

func newAuthHandlerWithContexts(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockUsecase.MockSessionContextFactory) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	contexts := mockUsecase.NewMockSessionContextFactory(t)

	return NewAuthHandler(AuthHandlerParams{
		Auth:     uc,
		Contexts: contexts,
		Jar:      cookie.NewJar(newTestConfig()),
		Logger:   newDiscardLogger(),
	}), uc, contexts
}

// withClient tags the request of c with a browser client id, as IdentifyClient does.
func withClient(c echo.Context, clientID string) {
	c.SetRequest(c.Request().WithContext(deliverycontext.WithClientID(c.Request().Context(), clientID)))
}

func testAccount() (*entity.AuthUser, *entity.UserProfile) {
	id := uuid.New()
	user := &entity.AuthUser{ID: id, Email: "a@x.com", Metadata: entity.UserMetadata{Username: "alice"}}
	profile := &entity.UserProfile{ID: id, Username: "alice", Email: "a@x.com", CreatedAt: time.Now().UTC()}

	return user, profile
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets cookies and returns the account", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		user, profile := testAccount()
		session := &entity.Session{AccessToken: "access", RefreshToken: "refresh", User: user}
		uc.EXPECT().Login(mock.Anything, usecase.LoginInput{Identifier: "alice", Password: "longenough1"}).
			Return(&usecase.LoginOutput{Session: session, Profile: profile}, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"identifier":"alice","password":"longenough1"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var account AccountResponse
		decodeEnvelope(t, rec, &account)
		assert.Equal(t, user.ID.String(), account.User.ID)
		require.NotNil(t, account.Profile)
		assert.Equal(t, "alice", account.Profile.Username)

		cookies := cookieValues(rec)
		assert.Equal(t, "access", cookies["sb-access-token"])
		assert.Equal(t, "refresh", cookies["sb-refresh-token"])
	})

	t.Run("usecase error is returned for the error handler", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUsernameNotFound.WithDetails("bob")).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"identifier":"bob","password":"longenough1"}`)
		err := h.Login(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "USERNAME_NOT_FOUND", appErr.ErrorCode())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newAuthHandlerFixture(t)

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"identifier":`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_SignUp(t *testing.T) {
	body := `{"username":"alice","email":"a@x.com","password":"longenough1","confirm_password":"longenough1"}`
	input := usecase.SignUpInput{Username: "alice", Email: "a@x.com", Password: "longenough1", ConfirmPassword: "longenough1"}

	t.Run("with session", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		user, profile := testAccount()
		uc.EXPECT().SignUp(mock.Anything, input).Return(&usecase.SignUpOutput{
			User:    user,
			Profile: profile,
			Session: &entity.Session{AccessToken: "access", RefreshToken: "refresh", User: user},
		}, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/signup", body)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var account AccountResponse
		decodeEnvelope(t, rec, &account)
		assert.False(t, account.ConfirmationRequired)
		assert.Equal(t, "access", cookieValues(rec)["sb-access-token"])
	})

	t.Run("pending email confirmation", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		user, profile := testAccount()
		uc.EXPECT().SignUp(mock.Anything, input).
			Return(&usecase.SignUpOutput{User: user, Profile: profile}, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/signup", body)
		require.NoError(t, h.SignUp(c))

		var account AccountResponse
		decodeEnvelope(t, rec, &account)
		assert.True(t, account.ConfirmationRequired)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	h, uc := newAuthHandlerFixture(t)
	uc.EXPECT().RequestPasswordReset(mock.Anything, usecase.ForgotPasswordInput{Email: "a@x.com"}).Return(nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/forgot-password", `{"email":"a@x.com"}`)
	require.NoError(t, h.ForgotPassword(c))

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "Password reset link has been sent to your email.", env.Message)
}

func TestAuthHandler_Recovery(t *testing.T) {
	h, uc := newAuthHandlerFixture(t)
	user, _ := testAccount()
	uc.EXPECT().EstablishRecoverySession(mock.Anything, "link-access", "link-refresh").
		Return(&entity.Session{AccessToken: "link-access", RefreshToken: "link-refresh", User: user}, nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/recovery", `{"access_token":"link-access","refresh_token":"link-refresh"}`)
	require.NoError(t, h.Recovery(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "link-access", cookieValues(rec)["sb-access-token"])
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	body := `{"password":"newpassword1","confirm_password":"newpassword1"}`

	t.Run("uses the request session", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		uc.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{
			AccessToken:     "access",
			Password:        "newpassword1",
			ConfirmPassword: "newpassword1",
		}).Return(nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/reset-password", body)
		deliverycontext.SetSession(c, &entity.Session{AccessToken: "access"})
		require.NoError(t, h.ResetPassword(c))

		env := decodeEnvelope(t, rec, nil)
		assert.Equal(t, "Password has been reset successfully.", env.Message)
	})

	t.Run("without a session", func(t *testing.T) {
		h, uc := newAuthHandlerFixture(t)
		uc.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{
			Password:        "newpassword1",
			ConfirmPassword: "newpassword1",
		}).Return(domainerrors.ErrUnauthenticated).Once()

		c, _ := newJSONContext(http.MethodPost, "/auth/reset-password", body)
		err := h.ResetPassword(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	session := &entity.Session{AccessToken: "access"}

	t.Run("clears cookies", func(t *testing.T) {
		h, uc, contexts := newAuthHandlerWithContexts(t)
		contexts.EXPECT().Lookup("").Return(nil).Once()
		uc.EXPECT().Logout(mock.Anything, session).Return(nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		deliverycontext.SetSession(c, session)
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
	})

	t.Run("open stream of the browser signs out", func(t *testing.T) {
		h, _, contexts := newAuthHandlerWithContexts(t)
		oldest := mockUsecase.NewMockSessionContext(t)
		newer := mockUsecase.NewMockSessionContext(t)
		contexts.EXPECT().Lookup("browser-a").Return([]usecase.SessionContext{oldest, newer}).Once()
		oldest.EXPECT().Logout(mock.Anything, session).Return(nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		withClient(c, "browser-a")
		deliverycontext.SetSession(c, session)
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
		newer.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("failure keeps cookies", func(t *testing.T) {
		h, uc, contexts := newAuthHandlerWithContexts(t)
		contexts.EXPECT().Lookup("").Return(nil).Once()
		uc.EXPECT().Logout(mock.Anything, session).
			Return(domainerrors.NewAuthError(http.StatusBadRequest, "", "sign out failed")).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		deliverycontext.SetSession(c, session)
		require.Error(t, h.Logout(c))
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		Auth:     uc,
		Contexts: mockUsecase.NewMockSessionContextFactory(t),
		Logger:   newDiscardLogger(),
	})
	user, profile := testAccount()
	session := &entity.Session{AccessToken: "access", User: user}
	uc.EXPECT().ResolveState(mock.Anything, session).Return(entity.AuthenticatedState(user, profile)).Once()

	c, rec := newJSONContext(http.MethodGet, "/auth/session", "")
	deliverycontext.SetSession(c, session)
	require.NoError(t, h.GetSession(c))

	var state AuthStateResponse
	decodeEnvelope(t, rec, &state)
	assert.Equal(t, entity.AuthStatusAuthenticated, state.Status)
	assert.False(t, state.Loading)
	assert.Equal(t, "a@x.com", state.User.Email)
	assert.Equal(t, "alice", state.Profile.Username)
}

func TestSessionHandler_StreamSession(t *testing.T) {
	factory := mockUsecase.NewMockSessionContextFactory(t)
	sc := mockUsecase.NewMockSessionContext(t)
	h := NewSessionHandler(SessionHandlerParams{
		Auth:     mockUsecase.NewMockAuthUsecase(t),
		Contexts: factory,
		Logger:   newDiscardLogger(),
	})
	user, profile := testAccount()

	states := make(chan entity.AuthState, 2)
	states <- entity.LoadingState(profile)
	states <- entity.AuthenticatedState(user, profile)
	close(states)

	cancelled := false
	factory.EXPECT().Open("browser-a", (*entity.Session)(nil)).Return(sc).Once()
	sc.EXPECT().Subscribe().Return(states, func() { cancelled = true }).Once()
	sc.EXPECT().Close().Return().Once()

	c, rec := newJSONContext(http.MethodGet, "/auth/session/events", "")
	withClient(c, "browser-a")
	require.NoError(t, h.StreamSession(c))

	assert.True(t, cancelled)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.Contains(t, events[0], "event: state\ndata: ")
	assert.Contains(t, events[0], `"status":"loading"`)
	assert.Contains(t, events[0], `"loading":true`)
	assert.Contains(t, events[1], `"status":"authenticated"`)
}

func TestSessionHandler_RefreshSession(t *testing.T) {
	user, profile := testAccount()

	t.Run("refreshes every open stream of the browser", func(t *testing.T) {
		factory := mockUsecase.NewMockSessionContextFactory(t)
		oldest := mockUsecase.NewMockSessionContext(t)
		newer := mockUsecase.NewMockSessionContext(t)
		h := NewSessionHandler(SessionHandlerParams{
			Auth:     mockUsecase.NewMockAuthUsecase(t),
			Contexts: factory,
			Logger:   newDiscardLogger(),
		})
		factory.EXPECT().Lookup("browser-a").Return([]usecase.SessionContext{oldest, newer}).Once()
		oldest.EXPECT().Refresh(mock.Anything).Return(entity.AuthenticatedState(user, profile)).Once()
		newer.EXPECT().Refresh(mock.Anything).Return(entity.AuthenticatedState(user, profile)).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/session/refresh", "")
		withClient(c, "browser-a")
		require.NoError(t, h.RefreshSession(c))

		var state AuthStateResponse
		decodeEnvelope(t, rec, &state)
		assert.Equal(t, entity.AuthStatusAuthenticated, state.Status)
		assert.Equal(t, "alice", state.Profile.Username)
	})

	t.Run("without an open stream resolves the cookie session", func(t *testing.T) {
		factory := mockUsecase.NewMockSessionContextFactory(t)
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewSessionHandler(SessionHandlerParams{Auth: uc, Contexts: factory, Logger: newDiscardLogger()})
		factory.EXPECT().Lookup("browser-a").Return(nil).Once()
		uc.EXPECT().ResolveState(mock.Anything, (*entity.Session)(nil)).Return(entity.AnonymousState()).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/session/refresh", "")
		withClient(c, "browser-a")
		require.NoError(t, h.RefreshSession(c))

		var state AuthStateResponse
		decodeEnvelope(t, rec, &state)
		assert.Equal(t, entity.AuthStatusAnonymous, state.Status)
	})
}

func TestPageHandler(t *testing.T) {
	t.Run("placeholder without upstream", func(t *testing.T) {
		h, err := NewPageHandler(newTestConfig())
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/leaderboard", "")
		require.NoError(t, h.Serve(c))

		var data map[string]string
		decodeEnvelope(t, rec, &data)
		assert.Equal(t, "/leaderboard", data["path"])
	})

	t.Run("proxies to the frontend", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "page:"+r.URL.Path)
		}))
		defer upstream.Close()

		cfg := newTestConfig()
		cfg.App.FrontendUpstream = upstream.URL
		h, err := NewPageHandler(cfg)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/profile", "")
		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "page:/profile", rec.Body.String())
	})

	t.Run("invalid upstream", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.App.FrontendUpstream = "://bad"

		_, err := NewPageHandler(cfg)
		assert.Error(t, err)
	})
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")
	require.NoError(t, HealthCheck(c))

	var data map[string]string
	decodeEnvelope(t, rec, &data)
	assert.Equal(t, "ok", data["status"])
}
