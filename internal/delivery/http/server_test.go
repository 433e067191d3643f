package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zephyr/config"
	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/delivery/http/cookie"
	"zephyr/internal/delivery/http/middleware"
	"zephyr/internal/delivery/http/response"
	"zephyr/internal/delivery/http/router"
	"zephyr/internal/delivery/http/router/handler"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	mockUsecase "zephyr/internal/mocks/usecase"
	"zephyr/internal/usecase"
	"zephyr/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixture struct {
	echo     *echo.Echo
	auth     *mockUsecase.MockAuthUsecase
	contexts *mockUsecase.MockSessionContextFactory
}

func newServerFixture(t *testing.T) *serverFixture {
	cfg := &config.Config{
		App: &config.AppConfig{URL: "http://localhost:3000"},
		Session: &config.SessionConfig{
			AccessCookie:  "sb-access-token",
			RefreshCookie: "sb-refresh-token",
			ClientCookie:  "zephyr-client",
		},
		Routes: &config.RoutesConfig{
			Protected:  []string{"/profile", "/results", "/settings"},
			AuthRoutes: []string{"/login"},
			Login:      "/login",
			Home:       "/",
		},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := mockUsecase.NewMockAuthUsecase(t)
	jar := cookie.NewJar(cfg)
	contexts := mockUsecase.NewMockSessionContextFactory(t)
	pages, err := handler.NewPageHandler(cfg)
	require.NoError(t, err)

	e := newEcho(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				Auth:     auth,
				Contexts: contexts,
				Jar:      jar,
				Logger:   logger,
			}),
			SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
				Auth:     auth,
				Contexts: contexts,
				Logger:   logger,
			}),
			PageHandler: pages,
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
				Auth:   auth,
				Guard:  impl.NewRouteGuard(cfg),
				Jar:    jar,
				Logger: logger,
			}),
		},
	})

	return &serverFixture{echo: e, auth: auth, contexts: contexts}
}

func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_LoginErrorEnvelope(t *testing.T) {
	f := newServerFixture(t)
	f.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Identifier: "", Password: "x"}).
		Return(nil, domainerrors.ErrIdentifierRequired).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"identifier":"","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "IDENTIFIER_REQUIRED", body.Error.Code)
	assert.Equal(t, "Username or email is required", body.Error.Message)
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestServer_PageGuard(t *testing.T) {
	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("signed in user is sent home from login", func(t *testing.T) {
		f := newServerFixture(t)
		session := &entity.Session{AccessToken: "access", User: &entity.AuthUser{ID: uuid.New()}}
		f.auth.EXPECT().LoadSession(mock.Anything, "access", "").
			Return(&usecase.LoadedSession{Session: session}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "access"})
		rec := f.do(req)

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("public page is served", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"path":"/leaderboard"`)
	})
}

func TestServer_LogoutReachesTheBrowsersSessionStream(t *testing.T) {
	f := newServerFixture(t)
	clientID := uuid.NewString()
	session := &entity.Session{AccessToken: "access", User: &entity.AuthUser{ID: uuid.New()}}
	stream := mockUsecase.NewMockSessionContext(t)

	f.auth.EXPECT().LoadSession(mock.Anything, "access", "").
		Return(&usecase.LoadedSession{Session: session}, nil).Once()
	f.contexts.EXPECT().Lookup(clientID).Return([]usecase.SessionContext{stream}).Once()
	stream.EXPECT().Logout(mock.Anything, session).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "access"})
	req.AddCookie(&http.Cookie{Name: "zephyr-client", Value: clientID})
	rec := f.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}
