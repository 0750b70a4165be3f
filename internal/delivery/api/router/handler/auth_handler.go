package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exposes the session manager of the browser session.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest is an email or phone sign-in.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Password   string `json:"password" validate:"required"`
}

// ConfirmSignUpRequest carries the code sent after registration.
type ConfirmSignUpRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Code       string `json:"code" validate:"required,max=16"`
}

// FinishRegistrationRequest names a confirmed registration.
type FinishRegistrationRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
}

// SessionView is the public view of the browser session identity.
type SessionView struct {
	Authenticated bool                  `json:"authenticated"`
	IsAdmin       bool                  `json:"isAdmin"`
	User          *entity.AuthUser      `json:"user,omitempty"`
	Attributes    entity.UserAttributes `json:"attributes,omitempty"`
	Email         string                `json:"email,omitempty"`
	LastError     string                `json:"lastError,omitempty"`
}

func newSessionView(sess *entity.Session) *SessionView {
	return &SessionView{
		Authenticated: sess.IsAuthenticated(),
		IsAdmin:       sess.IsAdmin,
		User:          sess.User,
		Attributes:    sess.Attributes,
		Email:         sess.UserEmail(),
		LastError:     sess.LastError,
	}
}

// Login handles the sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req LoginRequest
	if handled, err := bind(c, &req, "login"); handled {
		return err
	}

	result, err := h.authUC.Login(c.Request().Context(), sess, req.Identifier, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CompleteNewPassword answers the forced password change of the last login.
func (h *AuthHandler) CompleteNewPassword(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.NewPasswordInput
	if handled, err := bind(c, &req, "new password"); handled {
		return err
	}

	completed, err := h.authUC.CompleteNewPasswordChallenge(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"completed": completed,
		"session":   newSessionView(sess),
	})
}

// Register handles customer sign-up.
func (h *AuthHandler) Register(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterInput
	if handled, err := bind(c, &req, "registration"); handled {
		return err
	}

	result, err := h.authUC.Register(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ConfirmSignUp submits the sign-up confirmation code.
func (h *AuthHandler) ConfirmSignUp(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req ConfirmSignUpRequest
	if handled, err := bind(c, &req, "confirmation"); handled {
		return err
	}

	complete, err := h.authUC.ConfirmSignUp(c.Request().Context(), sess, req.Identifier, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isSignUpComplete": complete})
}

// FinishRegistration signs in a confirmed customer and creates the profile.
func (h *AuthHandler) FinishRegistration(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req FinishRegistrationRequest
	if handled, err := bind(c, &req, "registration"); handled {
		return err
	}

	profile, err := h.authUC.FinishRegistration(c.Request().Context(), sess, req.Identifier)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Logout signs out globally. Local state is gone even when the provider fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), sess); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionView(sess))
}

// Me re-validates the session and returns its identity.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	h.authUC.CheckAuth(c.Request().Context(), sess)

	return response.Success(c, http.StatusOK, newSessionView(sess))
}

// Token returns a usable access token, or available=false.
func (h *AuthHandler) Token(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	token, ok := h.authUC.GetAuthToken(c.Request().Context(), sess)
	if !ok {
		return response.Success(c, http.StatusOK, map[string]any{"available": false})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"available":   true,
		"accessToken": token,
	})
}

// Identifiers lists identifiers recently used to sign in on this browser.
func (h *AuthHandler) Identifiers(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	identifiers, err := h.authUC.RememberedIdentifiers(c.Request().Context(), sess)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identifiers)
}
