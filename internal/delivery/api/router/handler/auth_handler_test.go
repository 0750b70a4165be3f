package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	t.Helper()

	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()}), authUC
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		sess := guest()
		authUC.EXPECT().Login(mock.Anything, sess, "987654321", "Secret123!").
			Return(&usecase.LoginResult{IsSignedIn: true, Identifier: "+51987654321", NextStep: entity.SignInStepDone}, nil)

		rec := serve(t, h.Login, testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"identifier":"987654321","password":"Secret123!"}`,
			sess:   sess,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeData[usecase.LoginResult](t, rec)
		assert.True(t, result.IsSignedIn)
		assert.Equal(t, "+51987654321", result.Identifier)
	})

	t.Run("temporary password is never echoed", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything, "ana@example.com", "Temp123!").
			Return(&usecase.LoginResult{
				RequiresNewPassword: true,
				Identifier:          "ana@example.com",
				TemporaryPassword:   "Temp123!",
				NextStep:            entity.SignInStepNewPasswordRequired,
			}, nil)

		rec := serve(t, h.Login, testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"identifier":"ana@example.com","password":"Temp123!"}`,
			sess:   guest(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Temp123!")
		assert.Contains(t, rec.Body.String(), `"requiresNewPassword":true`)
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		rec := serve(t, h.Login, testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"identifier":"ana@example.com"}`,
			sess:   guest(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
		assert.Equal(t, map[string]any{"password": "required"}, errInfo.Details)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything, "ana@example.com", "wrong").
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec := serve(t, h.Login, testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"identifier":"ana@example.com","password":"wrong"}`,
			sess:   guest(),
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		rec := serve(t, h.Login, testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"identifier":`,
			sess:   guest(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	})

	t.Run("no session middleware", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		rec := serve(t, h.Login, testRequest{method: http.MethodPost, target: "/api/v1/auth/login"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthHandler_CompleteNewPassword(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	sess := guest()
	authUC.EXPECT().CompleteNewPasswordChallenge(mock.Anything, sess, &usecase.NewPasswordInput{
		Identifier:  "ana@example.com",
		NewPassword: "NewSecret123!",
	}).RunAndReturn(func(_ context.Context, s *entity.Session, _ *usecase.NewPasswordInput) (bool, error) {
		s.User = &entity.AuthUser{UserID: "sub-123", LoginID: "ana@example.com"}

		return true, nil
	})

	rec := serve(t, h.CompleteNewPassword, testRequest{
		method: http.MethodPost,
		target: "/api/v1/auth/new-password",
		body:   `{"identifier":"ana@example.com","newPassword":"NewSecret123!"}`,
		sess:   sess,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[struct {
		Completed bool        `json:"completed"`
		Session   SessionView `json:"session"`
	}](t, rec)
	assert.True(t, data.Completed)
	assert.True(t, data.Session.Authenticated)
	assert.Equal(t, "ana@example.com", data.Session.Email)
}

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	authUC.EXPECT().Register(mock.Anything, mock.Anything, &usecase.RegisterInput{
		Identifier: "ana@example.com",
		Password:   "Secret123!",
		FirstName:  "Ana",
	}).Return(&entity.SignUpResult{
		UserID:   "sub-123",
		NextStep: entity.SignUpNextStep{SignUpStep: entity.SignUpStepConfirm},
	}, nil)

	rec := serve(t, h.Register, testRequest{
		method: http.MethodPost,
		target: "/api/v1/auth/register",
		body:   `{"identifier":"ana@example.com","password":"Secret123!","firstName":"Ana"}`,
		sess:   guest(),
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	result := decodeData[entity.SignUpResult](t, rec)
	assert.False(t, result.IsSignUpComplete)
	assert.Equal(t, entity.SignUpStepConfirm, result.NextStep.SignUpStep)
}

func TestAuthHandler_ConfirmSignUp(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	authUC.EXPECT().ConfirmSignUp(mock.Anything, mock.Anything, "ana@example.com", "123456").Return(true, nil)

	rec := serve(t, h.ConfirmSignUp, testRequest{
		method: http.MethodPost,
		target: "/api/v1/auth/confirm",
		body:   `{"identifier":"ana@example.com","code":"123456"}`,
		sess:   guest(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]bool{"isSignUpComplete": true}, decodeData[map[string]bool](t, rec))
}

func TestAuthHandler_FinishRegistration(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	authUC.EXPECT().FinishRegistration(mock.Anything, mock.Anything, "ana@example.com").
		Return(nil, domainerrors.ErrRegistrationNotFound)

	rec := serve(t, h.FinishRegistration, testRequest{
		method: http.MethodPost,
		target: "/api/v1/auth/finish-registration",
		body:   `{"identifier":"ana@example.com"}`,
		sess:   guest(),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REGISTRATION_NOT_FOUND", decodeError(t, rec).Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		sess := customer()
		authUC.EXPECT().Logout(mock.Anything, sess).RunAndReturn(func(_ context.Context, s *entity.Session) error {
			s.ClearAuth()

			return nil
		})

		rec := serve(t, h.Logout, testRequest{method: http.MethodPost, target: "/api/v1/auth/logout", sess: sess})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeData[SessionView](t, rec).Authenticated)
	})

	t.Run("provider failure is reported", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().Logout(mock.Anything, mock.Anything).Return(domainerrors.ErrIdentityProvider)

		rec := serve(t, h.Logout, testRequest{method: http.MethodPost, target: "/api/v1/auth/logout", sess: customer()})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	sess := admin()
	authUC.EXPECT().CheckAuth(mock.Anything, sess).Return()

	rec := serve(t, h.Me, testRequest{method: http.MethodGet, target: "/api/v1/auth/me", sess: sess})

	assert.Equal(t, http.StatusOK, rec.Code)
	view := decodeData[SessionView](t, rec)
	assert.True(t, view.Authenticated)
	assert.True(t, view.IsAdmin)
	assert.Equal(t, "sub-123", view.User.UserID)
}

func TestAuthHandler_Token(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().GetAuthToken(mock.Anything, mock.Anything).Return("access-token", true)

		rec := serve(t, h.Token, testRequest{method: http.MethodGet, target: "/api/v1/auth/token", sess: customer()})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"available": true, "accessToken": "access-token"}, decodeData[map[string]any](t, rec))
	})

	t.Run("absent", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().GetAuthToken(mock.Anything, mock.Anything).Return("", false)

		rec := serve(t, h.Token, testRequest{method: http.MethodGet, target: "/api/v1/auth/token", sess: guest()})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"available": false}, decodeData[map[string]any](t, rec))
	})
}

func TestAuthHandler_Identifiers(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	authUC.EXPECT().RememberedIdentifiers(mock.Anything, mock.Anything).Return([]string{"+51987654321", "ana@example.com"}, nil)

	rec := serve(t, h.Identifiers, testRequest{method: http.MethodGet, target: "/api/v1/auth/identifiers", sess: guest()})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"+51987654321", "ana@example.com"}, decodeData[[]string](t, rec))
}
