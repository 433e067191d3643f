// Package cookie stores the provider session and the browser's client id in HttpOnly cookies.
package cookie

import (
	"net/http"
	"time"

	"zephyr/config"
	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// clientMaxAge keeps the client id across sessions; browsers cap cookie lifetimes at 400 days.
const clientMaxAge = 400 * 24 * time.Hour

// Jar reads and writes the access and refresh token cookies.
type Jar struct {
	accessName  string
	refreshName string
	clientName  string
	domain      string
	secure      bool
	maxAge      time.Duration
}

// NewJar builds the jar from the session cookie configuration.
func NewJar(cfg *config.Config) *Jar {
	return &Jar{
		accessName:  cfg.Session.AccessCookie,
		refreshName: cfg.Session.RefreshCookie,
		clientName:  cfg.Session.ClientCookie,
		domain:      cfg.Session.Domain,
		secure:      cfg.Session.Secure,
		maxAge:      cfg.Session.MaxAge,
	}
}

// Read returns the tokens sent by the client. Missing cookies yield empty strings.
func (j *Jar) Read(c echo.Context) (accessToken, refreshToken string) {
	if ck, err := c.Cookie(j.accessName); err == nil {
		accessToken = ck.Value
	}
	if ck, err := c.Cookie(j.refreshName); err == nil {
		refreshToken = ck.Value
	}

	return accessToken, refreshToken
}

// Set writes both session cookies.
func (j *Jar) Set(c echo.Context, session *entity.Session) {
	if session == nil {
		return
	}

	c.SetCookie(j.cookie(j.accessName, session.AccessToken, j.maxAgeSeconds()))
	if session.RefreshToken != "" {
		c.SetCookie(j.cookie(j.refreshName, session.RefreshToken, j.maxAgeSeconds()))
	}
}

// Clear expires both session cookies.
func (j *Jar) Clear(c echo.Context) {
	c.SetCookie(j.cookie(j.accessName, "", -1))
	c.SetCookie(j.cookie(j.refreshName, "", -1))
}

// ClientID returns the browser's client id, or an empty string when the cookie is missing or malformed.
func (j *Jar) ClientID(c echo.Context) string {
	ck, err := c.Cookie(j.clientName)
	if err != nil {
		return ""
	}

	id, err := uuid.Parse(ck.Value)
	if err != nil {
		return ""
	}

	return id.String()
}

// SetClientID writes the client id cookie. It survives logout.
func (j *Jar) SetClientID(c echo.Context, clientID string) {
	c.SetCookie(j.cookie(j.clientName, clientID, int(clientMaxAge/time.Second)))
}

// maxAgeSeconds is zero for browser-session cookies when no lifetime is configured.
func (j *Jar) maxAgeSeconds() int {
	return int(j.maxAge / time.Second)
}

func (j *Jar) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   j.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
