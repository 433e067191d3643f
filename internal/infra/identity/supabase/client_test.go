package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAnonKey    = "anon-key"
	testServiceKey = "service-role-key"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL+"/", testAnonKey, testServiceKey, 2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func sessionBody(userID uuid.UUID) map[string]any {
	return map[string]any{
		"access_token":  "access-1",
		"token_type":    "bearer",
		"expires_in":    3600,
		"expires_at":    time.Now().Add(time.Hour).Unix(),
		"refresh_token": "refresh-1",
		"user": map[string]any{
			"id":            userID.String(),
			"email":         "a@x.com",
			"user_metadata": map[string]any{"username": "alice"},
		},
	}
}

func TestClient_SignInWithPassword(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

		var body passwordCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, passwordCredentials{Email: "a@x.com", Password: "longenough1"}, body)

		writeJSON(t, w, http.StatusOK, sessionBody(userID))
	})

	session, err := client.SignInWithPassword(context.Background(), "a@x.com", "longenough1")
	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, "alice", session.User.Metadata.Username)
	assert.False(t, session.Expired(time.Now()))
}

func TestClient_SignInWithPassword_ProviderMessageVerbatim(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantCode string
		wantMsg  string
	}{
		{
			name:     "current error shape",
			body:     map[string]any{"code": 400, "error_code": "invalid_credentials", "msg": "Invalid login credentials"},
			wantCode: "invalid_credentials",
			wantMsg:  "Invalid login credentials",
		},
		{
			name:     "oauth error shape",
			body:     map[string]any{"error": "invalid_grant", "error_description": "Email not confirmed"},
			wantCode: "invalid_grant",
			wantMsg:  "Email not confirmed",
		},
		{
			name:     "message only",
			body:     map[string]any{"message": "Invalid API key"},
			wantCode: "AUTH_ERROR",
			wantMsg:  "Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, tt.body)
			})

			session, err := client.SignInWithPassword(context.Background(), "a@x.com", "wrong")
			require.Error(t, err)
			assert.Nil(t, session)

			var authErr *domainerrors.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, http.StatusBadRequest, authErr.HTTPCode())
			assert.Equal(t, tt.wantCode, authErr.ErrorCode())
			assert.Equal(t, tt.wantMsg, authErr.Message())
		})
	}
}

func TestClient_ServerErrorIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.SignInWithPassword(context.Background(), "a@x.com", "longenough1")

	var netErr *domainerrors.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "Something went wrong. Please try again.", netErr.Message())
}

func TestClient_UnreachableIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, testAnonKey, "", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.GetUser(context.Background(), "token")

	var netErr *domainerrors.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client := NewClient(server.URL, testAnonKey, "", 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.SignInWithPassword(context.Background(), "a@x.com", "longenough1")

	var netErr *domainerrors.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestClient_SignUp(t *testing.T) {
	userID := uuid.New()

	t.Run("auto confirmed returns a session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)

			var body signUpRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@x.com", body.Email)
			assert.Equal(t, "alice", body.Data["username"])

			writeJSON(t, w, http.StatusOK, sessionBody(userID))
		})

		result, err := client.SignUp(context.Background(), "a@x.com", "longenough1", entity.UserMetadata{Username: "alice"})
		require.NoError(t, err)
		require.NotNil(t, result.Session)
		assert.Equal(t, userID, result.User.ID)
		assert.Equal(t, "access-1", result.Session.AccessToken)
	})

	t.Run("confirmation pending returns the user only", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"id":            userID.String(),
				"email":         "a@x.com",
				"user_metadata": map[string]any{"username": "alice"},
			})
		})

		result, err := client.SignUp(context.Background(), "a@x.com", "longenough1", entity.UserMetadata{Username: "alice"})
		require.NoError(t, err)
		assert.Nil(t, result.Session)
		assert.Equal(t, userID, result.User.ID)
		assert.Equal(t, "alice", result.User.Metadata.Username)
	})
}

func TestClient_SignOut(t *testing.T) {
	t.Run("sends the user token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/logout", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.SignOut(context.Background(), "user-token"))
	})

	t.Run("session already gone", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{"msg": "invalid JWT"})
		})

		assert.NoError(t, client.SignOut(context.Background(), "expired"))
	})

	t.Run("no token skips the call", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatal("unexpected request")
		})

		assert.NoError(t, client.SignOut(context.Background(), ""))
	})
}

func TestClient_RequestPasswordReset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		assert.Equal(t, "http://localhost:3000/reset-password", r.URL.Query().Get("redirect_to"))

		var body recoverRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body.Email)

		writeJSON(t, w, http.StatusOK, map[string]any{})
	})

	assert.NoError(t, client.RequestPasswordReset(context.Background(), "a@x.com", "http://localhost:3000/reset-password"))
}

func TestClient_UpdatePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("without a session", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatal("unexpected request")
		})

		user, err := client.UpdatePassword(context.Background(), "", "longenough1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("with a recovery session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer recovery-token", r.Header.Get("Authorization"))

			var body updateUserRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "longenough1", body.Password)

			writeJSON(t, w, http.StatusOK, map[string]any{"id": userID.String(), "email": "a@x.com"})
		})

		user, err := client.UpdatePassword(context.Background(), "recovery-token", "longenough1")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
}

func TestClient_RefreshSession(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body refreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-0", body.RefreshToken)

		writeJSON(t, w, http.StatusOK, sessionBody(userID))
	})

	session, err := client.RefreshSession(context.Background(), "refresh-0")
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", session.RefreshToken)
}

func TestClient_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("uses the service role key", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/auth/v1/admin/users/"+userID.String(), r.URL.Path)
			assert.Equal(t, testServiceKey, r.Header.Get("apikey"))
			assert.Equal(t, "Bearer "+testServiceKey, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, map[string]any{})
		})

		assert.NoError(t, client.DeleteUser(context.Background(), userID))
	})

	t.Run("already deleted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]any{"msg": "User not found"})
		})

		assert.NoError(t, client.DeleteUser(context.Background(), userID))
	})

	t.Run("without service role key", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", testAnonKey, "", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

		assert.Error(t, client.DeleteUser(context.Background(), userID))
	})
}
