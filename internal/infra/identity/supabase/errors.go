package supabase

import (
	"encoding/json"
	"net/http"
	"strings"

	domainerrors "zephyr/internal/domain/errors"
)

// errorBody covers the error shapes GoTrue has used across versions.
type errorBody struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// normalizeError turns a non-2xx GoTrue response into an AuthError that keeps the provider message.
func normalizeError(status int, raw []byte) *domainerrors.AuthError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = http.StatusText(status)
		}

		return domainerrors.NewAuthError(status, "", message)
	}

	return domainerrors.NewAuthError(status, body.code(), body.message(status))
}

func (b errorBody) message(status int) string {
	for _, candidate := range []string{b.Msg, b.ErrorDescription, b.Message, b.Error} {
		if candidate != "" {
			return candidate
		}
	}

	return http.StatusText(status)
}

func (b errorBody) code() string {
	if b.ErrorCode != "" {
		return b.ErrorCode
	}

	// Older versions send the status number in code and an OAuth error name in error.
	if code, ok := b.Code.(string); ok && code != "" {
		return code
	}
	if b.Error != "" && b.ErrorDescription != "" {
		return b.Error
	}
	return ""
}
