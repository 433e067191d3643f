// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/delivery/http/cookie"
	"zephyr/internal/delivery/http/response"
	"zephyr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgResetLinkSent = "Password reset link has been sent to your email."
	msgPasswordReset = "Password has been reset successfully."
)

// AuthHandler serves the login, signup and password flows.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	contexts usecase.SessionContextFactory
	jar      *cookie.Jar
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx
type AuthHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Contexts usecase.SessionContextFactory
	Jar      *cookie.Jar
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.Auth,
		contexts: params.Contexts,
		jar:      params.Jar,
		logger:   params.Logger,
	}
}

// Login handles the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.Set(c, output.Session)

	return response.Success(c, http.StatusOK, AccountResponse{
		User:    newUserResponse(output.Session.User),
		Profile: newProfileResponse(output.Profile),
	}, "")
}

// SignUp handles the signup form. Without a session the provider is waiting for email confirmation.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Session != nil {
		h.jar.Set(c, output.Session)
	}

	return response.Success(c, http.StatusCreated, AccountResponse{
		User:                 newUserResponse(output.User),
		Profile:              newProfileResponse(output.Profile),
		ConfirmationRequired: output.Session == nil,
	}, "")
}

// ForgotPassword sends the reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, msgResetLinkSent)
}

// Recovery turns the tokens of a reset link into session cookies.
func (h *AuthHandler) Recovery(c echo.Context) error {
	var req recoveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}

	session, err := h.uc.EstablishRecoverySession(c.Request().Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.Set(c, session)

	return response.Success(c, http.StatusOK, AccountResponse{User: newUserResponse(session.User)}, "")
}

// ResetPassword sets a new password for the session owner.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	input := usecase.ResetPasswordInput{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if session := deliverycontext.GetSession(c); session != nil {
		input.AccessToken = session.AccessToken
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, msgPasswordReset)
}

// Logout signs out and clears the cookies. A failed sign-out keeps them.
// When the browser has open session streams, the oldest one signs out and turns Anonymous at once;
// the others follow the browser's SIGNED_OUT event.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	session := deliverycontext.GetSession(c)

	var err error
	if open := h.contexts.Lookup(deliverycontext.GetClientID(ctx)); len(open) > 0 {
		err = open[0].Logout(ctx, session)
	} else {
		err = h.uc.Logout(ctx, session)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.Clear(c)

	return c.NoContent(http.StatusNoContent)
}
