package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var authTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   *authService
	idp       *mockSvc.MockIdentityProvider
	phone     *mockSvc.MockPhoneNormalizer
	inspector *mockSvc.MockTokenInspector
	sealer    *mockSvc.MockSealer
	store     *mockRepo.MockLocalStore
	profiles  *mockUC.MockProfileUsecase
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	idp := mockSvc.NewMockIdentityProvider(t)
	phone := mockSvc.NewMockPhoneNormalizer(t)
	inspector := mockSvc.NewMockTokenInspector(t)
	sealer := mockSvc.NewMockSealer(t)
	store := mockRepo.NewMockLocalStore(t)
	profiles := mockUC.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewAuthService(AuthServiceParams{
		IdentityProvider: idp,
		PhoneNormalizer:  phone,
		TokenInspector:   inspector,
		Sealer:           sealer,
		LocalStore:       store,
		ProfileUsecase:   profiles,
		Logger:           logger,
	}).(*authService)
	srv.now = func() time.Time { return authTestNow }
	srv.newID = func() string { return "rotated-sess" }

	return authServiceFixtures{
		service:   srv,
		idp:       idp,
		phone:     phone,
		inspector: inspector,
		sealer:    sealer,
		store:     store,
		profiles:  profiles,
	}
}

func validTokens(access string) *entity.AuthTokens {
	return &entity.AuthTokens{
		AccessToken:  access,
		IDToken:      "id-" + access,
		RefreshToken: "refresh-token",
		ExpiresAt:    authTestNow.Add(time.Hour),
	}
}

func identifiersJSON(t *testing.T, ids ...string) []byte {
	t.Helper()
	raw, err := json.Marshal(ids)
	require.NoError(t, err)

	return raw
}

// expectEstablish sets up the calls made after a successful sign-in.
func (fx authServiceFixtures) expectEstablish(t *testing.T, ctx context.Context, sessID, loginID, access string, admin bool) {
	fx.idp.EXPECT().GetUser(ctx, access).Return(
		&entity.AuthUser{UserID: "sub-123", Username: "sub-123"},
		entity.UserAttributes{entity.AttrEmail: "ana@example.com", entity.AttrSub: "sub-123"},
		nil,
	)
	fx.inspector.EXPECT().IsAdmin(access).Return(admin)
	fx.store.EXPECT().Get(ctx, publicIdentifiersPrefix+sessID).Return(nil, repository.ErrLocalKeyNotFound)
	fx.store.EXPECT().Set(ctx, publicIdentifiersPrefix+sessID, identifiersJSON(t, loginID)).Return(nil)
}

func TestAuthService_Login_PhoneIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.phone.EXPECT().Normalize("987 654 321").Return("+51987654321", nil)
	fx.idp.EXPECT().SignIn(ctx, "+51987654321", "Secret123!").Return(&entity.SignInResult{
		IsSignedIn: true,
		NextStep:   entity.SignInStepDone,
		Tokens:     validTokens("access-1"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "+51987654321", "access-1", true)

	result, err := fx.service.Login(ctx, sess, " 987 654 321 ", "Secret123!")

	require.NoError(t, err)
	assert.True(t, result.IsSignedIn)
	assert.False(t, result.RequiresNewPassword)
	assert.Equal(t, "+51987654321", result.Identifier)
	require.NotNil(t, sess.User)
	assert.Equal(t, "+51987654321", sess.User.LoginID)
	assert.Equal(t, "ana@example.com", sess.UserEmail())
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "access-1", sess.Tokens.AccessToken)
	assert.Empty(t, sess.LastError)
	assert.Equal(t, "rotated-sess", sess.ID)
	assert.Equal(t, "sess-1", sess.RotatedFrom())
	assert.Equal(t, "sess-1", sess.LocalScope())
}

func TestAuthService_Login_EmailIsNotNormalized(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Secret123!").Return(&entity.SignInResult{
		IsSignedIn: true,
		NextStep:   entity.SignInStepDone,
		Tokens:     validTokens("access-1"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "ana@example.com", "access-1", false)

	result, err := fx.service.Login(ctx, sess, "  ana@example.com ", "Secret123!")

	require.NoError(t, err)
	assert.True(t, result.IsSignedIn)
	assert.False(t, sess.IsAdmin)
	assert.Equal(t, entity.RoleAuthenticated, sess.Role())
}

func TestAuthService_Login_ClearsProfileOfPreviousUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.Profile = &entity.Profile{UserID: "someone-else"}

	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Secret123!").Return(&entity.SignInResult{
		IsSignedIn: true,
		Tokens:     validTokens("access-1"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "ana@example.com", "access-1", false)

	_, err := fx.service.Login(ctx, sess, "ana@example.com", "Secret123!")

	require.NoError(t, err)
	assert.Nil(t, sess.Profile)
}

func TestAuthService_Login_NewPasswordRequired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Temp1234").Return(&entity.SignInResult{
		NextStep:         entity.SignInStepNewPasswordRequired,
		ChallengeSession: "challenge",
	}, nil)
	fx.sealer.EXPECT().Seal([]byte("Temp1234")).Return([]byte("sealed"), nil)

	result, err := fx.service.Login(ctx, sess, "ana@example.com", "Temp1234")

	require.NoError(t, err)
	assert.False(t, result.IsSignedIn)
	assert.True(t, result.RequiresNewPassword)
	assert.Equal(t, "ana@example.com", result.Identifier)
	assert.Equal(t, "Temp1234", result.TemporaryPassword)
	assert.Nil(t, sess.User)
	require.NotNil(t, sess.PendingChallenge)
	assert.Equal(t, []byte("sealed"), sess.PendingChallenge.SealedPassword)
	assert.Equal(t, authTestNow, sess.PendingChallenge.CreatedAt)
}

func TestAuthService_Login_ProviderRejects(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	result, err := fx.service.Login(ctx, sess, "ana@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "login failed")
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), sess.LastError)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthService_Login_InvalidIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	t.Run("blank", func(t *testing.T) {
		sess := entity.NewSession("sess-1", authTestNow, time.Hour)

		_, err := fx.service.Login(ctx, sess, "   ", "whatever")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)
		assert.Equal(t, domainerrors.ErrInvalidIdentifier.Message(), sess.LastError)
	})

	t.Run("phone with letters", func(t *testing.T) {
		sess := entity.NewSession("sess-2", authTestNow, time.Hour)
		fx.phone.EXPECT().Normalize("98x").Return("", errors.New("phone contains non-digit characters"))

		_, err := fx.service.Login(ctx, sess, "98x", "whatever")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)
	})
}

func TestAuthService_CompleteNewPasswordChallenge_UsesSealedPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.PendingChallenge = &entity.PendingChallenge{Identifier: "ana@example.com", SealedPassword: []byte("sealed")}

	fx.sealer.EXPECT().Open([]byte("sealed")).Return([]byte("Temp1234"), nil)
	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Temp1234").Return(&entity.SignInResult{
		NextStep:         entity.SignInStepNewPasswordRequired,
		ChallengeSession: "challenge",
	}, nil)
	fx.idp.EXPECT().RespondToNewPasswordChallenge(ctx, "ana@example.com", "challenge", "NewSecret123").Return(&entity.SignInResult{
		IsSignedIn: true,
		NextStep:   entity.SignInStepDone,
		Tokens:     validTokens("access-2"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "ana@example.com", "access-2", false)

	ok, err := fx.service.CompleteNewPasswordChallenge(ctx, sess, &usecase.NewPasswordInput{NewPassword: "NewSecret123"})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, sess.PendingChallenge)
	assert.True(t, sess.IsAuthenticated())
}

func TestAuthService_CompleteNewPasswordChallenge_NoPendingChallenge(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	ok, err := fx.service.CompleteNewPasswordChallenge(ctx, sess, &usecase.NewPasswordInput{
		Identifier:  "ana@example.com",
		NewPassword: "NewSecret123",
	})

	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrNoPendingChallenge)
	assert.Equal(t, domainerrors.ErrNoPendingChallenge.Message(), sess.LastError)
}

func TestAuthService_CompleteNewPasswordChallenge_NoChallengeOffered(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Temp1234").Return(&entity.SignInResult{
		IsSignedIn: true,
		NextStep:   entity.SignInStepDone,
		Tokens:     validTokens("access-2"),
	}, nil)

	ok, err := fx.service.CompleteNewPasswordChallenge(ctx, sess, &usecase.NewPasswordInput{
		Identifier:        "ana@example.com",
		TemporaryPassword: "Temp1234",
		NewPassword:       "NewSecret123",
	})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthService_Register_EmailWithProfileData(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	input := &usecase.RegisterInput{
		Identifier:     "ana@example.com",
		Password:       "Secret123!",
		FirstName:      "Ana",
		LastName:       "Quispe",
		Phone:          "987654321",
		DocumentNumber: "12345678",
	}

	fx.phone.EXPECT().Normalize("987654321").Return("+51987654321", nil)
	fx.idp.EXPECT().SignUp(ctx, &entity.SignUpRequest{
		Username: "ana@example.com",
		Password: "Secret123!",
		Attributes: entity.UserAttributes{
			entity.AttrEmail:          "ana@example.com",
			entity.AttrPhoneNumber:    "+51987654321",
			entity.AttrGivenName:      "Ana",
			entity.AttrFamilyName:     "Quispe",
			entity.AttrDocumentNumber: "12345678",
		},
	}).Return(&entity.SignUpResult{
		UserID:   "sub-123",
		NextStep: entity.SignUpNextStep{SignUpStep: entity.SignUpStepConfirm},
	}, nil)
	fx.sealer.EXPECT().Seal([]byte("Secret123!")).Return([]byte("sealed"), nil)
	fx.store.EXPECT().
		Set(ctx, "profile_data_sess-1_ana@example.com", mock.AnythingOfType("[]uint8")).
		Run(func(_ context.Context, _ string, value []byte) {
			var pending usecase.PendingRegistration
			require.NoError(t, json.Unmarshal(value, &pending))
			assert.Equal(t, "sub-123", pending.UserID)
			assert.Equal(t, "Ana", pending.FirstName)
			assert.Equal(t, "+51987654321", pending.Phone)
			assert.Equal(t, "ana@example.com", pending.Email)
			assert.Equal(t, []byte("sealed"), pending.SealedPassword)
		}).
		Return(nil)

	result, err := fx.service.Register(ctx, sess, input)

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", sess.PendingSignUp)
	assert.False(t, result.IsSignUpComplete)
	assert.Equal(t, "sub-123", result.UserID)
	assert.Equal(t, entity.SignUpStepConfirm, result.NextStep.SignUpStep)
}

func TestAuthService_Register_PhoneIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.phone.EXPECT().Normalize("1123456789").Return("+5491123456789", nil)
	fx.idp.EXPECT().SignUp(ctx, &entity.SignUpRequest{
		Username:   "+5491123456789",
		Password:   "Secret123!",
		Attributes: entity.UserAttributes{entity.AttrPhoneNumber: "+5491123456789"},
	}).Return(&entity.SignUpResult{UserID: "sub-9"}, nil)
	fx.sealer.EXPECT().Seal([]byte("Secret123!")).Return([]byte("sealed"), nil)
	fx.store.EXPECT().Set(ctx, "profile_data_sess-1_+5491123456789", mock.Anything).Return(nil)

	result, err := fx.service.Register(ctx, sess, &usecase.RegisterInput{Identifier: "1123456789", Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, "sub-9", result.UserID)
}

func TestAuthService_Register_StashFailureIsNotFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().SignUp(ctx, mock.AnythingOfType("*entity.SignUpRequest")).Return(&entity.SignUpResult{UserID: "sub-1"}, nil)
	fx.sealer.EXPECT().Seal([]byte("Secret123!")).Return([]byte("sealed"), nil)
	fx.store.EXPECT().Set(ctx, "profile_data_sess-1_ana@example.com", mock.Anything).Return(errors.New("disk full"))

	result, err := fx.service.Register(ctx, sess, &usecase.RegisterInput{Identifier: "ana@example.com", Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, "sub-1", result.UserID)
	assert.Empty(t, sess.PendingSignUp)
}

func TestAuthService_ConfirmSignUp(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.idp.EXPECT().ConfirmSignUp(ctx, "ana@example.com", "123456").Return(true, nil)
	fx.idp.EXPECT().ConfirmSignUp(ctx, "ana@example.com", "000000").Return(false, domainerrors.ErrInvalidConfirmationCode)

	done, err := fx.service.ConfirmSignUp(ctx, sess, "ana@example.com", " 123456 ")
	require.NoError(t, err)
	assert.True(t, done)

	done, err = fx.service.ConfirmSignUp(ctx, sess, "ana@example.com", "000000")
	assert.False(t, done)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfirmationCode)
	assert.Equal(t, domainerrors.ErrInvalidConfirmationCode.Message(), sess.LastError)
}

func TestAuthService_FinishRegistration_CreatesProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	stash, err := json.Marshal(usecase.PendingRegistration{
		Identifier:     "ana@example.com",
		UserID:         "sub-123",
		FirstName:      "Ana",
		Phone:          "+51987654321",
		Email:          "ana@example.com",
		SealedPassword: []byte("sealed"),
	})
	require.NoError(t, err)

	fx.store.EXPECT().Get(ctx, "profile_data_sess-1_ana@example.com").Return(stash, nil)
	fx.sealer.EXPECT().Open([]byte("sealed")).Return([]byte("Secret123!"), nil)
	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Secret123!").Return(&entity.SignInResult{
		IsSignedIn: true,
		Tokens:     validTokens("access-1"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "ana@example.com", "access-1", false)
	fx.profiles.EXPECT().FetchUserProfile(ctx, sess, true).Return(nil, nil)
	created := &entity.Profile{UserID: "sub-123", FirstName: "Ana"}
	fx.profiles.EXPECT().
		CreateProfile(ctx, sess, mock.MatchedBy(func(in *usecase.ProfileInput) bool {
			return in.FirstName != nil && *in.FirstName == "Ana" &&
				in.LastName == nil &&
				in.Phone != nil && *in.Phone == "+51987654321" &&
				in.Email != nil && *in.Email == "ana@example.com"
		})).
		Return(created, nil)
	fx.store.EXPECT().Delete(ctx, "profile_data_sess-1_ana@example.com").Return(nil)

	sess.PendingSignUp = "ana@example.com"
	profile, err := fx.service.FinishRegistration(ctx, sess, "ana@example.com")

	require.NoError(t, err)
	assert.Same(t, created, profile)
	assert.True(t, sess.IsAuthenticated())
	assert.Empty(t, sess.PendingSignUp)
}

func TestAuthService_FinishRegistration_ReusesExistingProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	stash, err := json.Marshal(usecase.PendingRegistration{Identifier: "ana@example.com", SealedPassword: []byte("sealed")})
	require.NoError(t, err)
	existing := &entity.Profile{UserID: "sub-123"}

	fx.store.EXPECT().Get(ctx, "profile_data_sess-1_ana@example.com").Return(stash, nil)
	fx.sealer.EXPECT().Open([]byte("sealed")).Return([]byte("Secret123!"), nil)
	fx.idp.EXPECT().SignIn(ctx, "ana@example.com", "Secret123!").Return(&entity.SignInResult{
		IsSignedIn: true,
		Tokens:     validTokens("access-1"),
	}, nil)
	fx.expectEstablish(t, ctx, "sess-1", "ana@example.com", "access-1", false)
	fx.profiles.EXPECT().FetchUserProfile(ctx, sess, true).Return(existing, nil)
	fx.store.EXPECT().Delete(ctx, "profile_data_sess-1_ana@example.com").Return(nil)

	profile, err := fx.service.FinishRegistration(ctx, sess, "ana@example.com")

	require.NoError(t, err)
	assert.Same(t, existing, profile)
}

func TestAuthService_FinishRegistration_NoStash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.store.EXPECT().Get(ctx, "profile_data_sess-1_ana@example.com").Return(nil, repository.ErrLocalKeyNotFound)

	profile, err := fx.service.FinishRegistration(ctx, sess, "ana@example.com")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestAuthService_FinishRegistration_OtherBrowserCannotFinish(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := map[string][]byte{}
	fx.store.EXPECT().Set(ctx, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string, value []byte) error {
		stored[key] = value

		return nil
	})
	fx.store.EXPECT().Get(ctx, mock.Anything).RunAndReturn(func(_ context.Context, key string) ([]byte, error) {
		value, ok := stored[key]
		if !ok {
			return nil, repository.ErrLocalKeyNotFound
		}

		return value, nil
	})
	fx.idp.EXPECT().SignUp(ctx, mock.AnythingOfType("*entity.SignUpRequest")).Return(&entity.SignUpResult{UserID: "sub-v"}, nil)
	fx.sealer.EXPECT().Seal([]byte("VictimPass1!")).Return([]byte("sealed"), nil)

	victim := entity.NewSession("victim", authTestNow, time.Hour)
	_, err := fx.service.Register(ctx, victim, &usecase.RegisterInput{Identifier: "victim@example.com", Password: "VictimPass1!"})
	require.NoError(t, err)

	other := entity.NewSession("other", authTestNow, time.Hour)
	profile, err := fx.service.FinishRegistration(ctx, other, "victim@example.com")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
	assert.False(t, other.IsAuthenticated())
	assert.Contains(t, stored, "profile_data_victim_victim@example.com")
	fx.idp.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	fx.sealer.AssertNotCalled(t, "Open", mock.Anything)
}

func signedInSession(access string) *entity.Session {
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.User = &entity.AuthUser{UserID: "sub-123", Username: "sub-123", LoginID: "ana@example.com"}
	sess.Attributes = entity.UserAttributes{entity.AttrEmail: "ana@example.com"}
	sess.Tokens = validTokens(access)
	sess.IsAdmin = true
	sess.Profile = &entity.Profile{UserID: "sub-123"}

	return sess
}

func (fx authServiceFixtures) expectClearProfile(sess *entity.Session) {
	fx.profiles.EXPECT().ClearProfile(sess).Run(func(s *entity.Session) { s.ClearProfile() })
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("access-1")

	fx.idp.EXPECT().SignOut(ctx, "access-1").Return(nil)
	fx.store.EXPECT().Delete(ctx, "public_identifiers_sess-1").Return(nil)
	fx.expectClearProfile(sess)

	err := fx.service.Logout(ctx, sess)

	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsAdmin)
	assert.Nil(t, sess.Tokens)
	assert.Nil(t, sess.Profile)
}

func TestAuthService_Logout_ProviderFailureStillClearsState(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("access-1")

	fx.idp.EXPECT().SignOut(ctx, "access-1").Return(domainerrors.ErrIdentityProvider)
	fx.store.EXPECT().Delete(ctx, "public_identifiers_sess-1").Return(nil)
	fx.expectClearProfile(sess)

	err := fx.service.Logout(ctx, sess)

	assert.ErrorIs(t, err, domainerrors.ErrIdentityProvider)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.Profile)
	assert.Equal(t, domainerrors.ErrIdentityProvider.Message(), sess.LastError)
}

func TestAuthService_Logout_ExpiredProviderSessionIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("access-1")

	fx.idp.EXPECT().SignOut(ctx, "access-1").Return(service.ErrNoSession)
	fx.store.EXPECT().Delete(ctx, "public_identifiers_sess-1").Return(nil)
	fx.expectClearProfile(sess)

	require.NoError(t, fx.service.Logout(ctx, sess))
	assert.Empty(t, sess.LastError)
}

func TestAuthService_CheckAuth_NoSessionClearsState(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.Profile = &entity.Profile{UserID: "stale"}
	sess.IsAdmin = true
	fx.expectClearProfile(sess)

	fx.service.CheckAuth(ctx, sess)

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsAdmin)
	assert.Nil(t, sess.Profile)
	assert.Empty(t, sess.LastError)
}

func TestAuthService_CheckAuth_ValidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("access-1")
	sess.IsAdmin = false

	fx.idp.EXPECT().GetUser(ctx, "access-1").Return(
		&entity.AuthUser{UserID: "sub-123", Username: "sub-123"},
		entity.UserAttributes{entity.AttrEmail: "new@example.com"},
		nil,
	)
	fx.inspector.EXPECT().IsAdmin("access-1").Return(true)

	fx.service.CheckAuth(ctx, sess)

	assert.True(t, sess.IsAuthenticated())
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "ana@example.com", sess.User.LoginID)
	assert.Equal(t, "new@example.com", sess.UserEmail())
	assert.NotNil(t, sess.Profile)
}

func TestAuthService_CheckAuth_RefreshesExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("old-access")
	sess.Tokens.ExpiresAt = authTestNow.Add(-time.Minute)

	fx.idp.EXPECT().RefreshSession(ctx, "sub-123", "refresh-token").Return(validTokens("new-access"), nil)
	fx.inspector.EXPECT().IsAdmin("new-access").Return(false)
	fx.idp.EXPECT().GetUser(ctx, "new-access").Return(
		&entity.AuthUser{UserID: "sub-123", Username: "sub-123"},
		entity.UserAttributes{entity.AttrEmail: "ana@example.com"},
		nil,
	)

	fx.service.CheckAuth(ctx, sess)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "new-access", sess.Tokens.AccessToken)
	assert.False(t, sess.IsAdmin)
}

func TestAuthService_CheckAuth_RejectedTokenAndFailedRefresh(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := signedInSession("access-1")

	fx.idp.EXPECT().GetUser(ctx, "access-1").Return(nil, nil, service.ErrNoSession)
	fx.idp.EXPECT().RefreshSession(ctx, "sub-123", "refresh-token").Return(nil, service.ErrNoSession)
	fx.expectClearProfile(sess)

	fx.service.CheckAuth(ctx, sess)

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsAdmin)
	assert.Nil(t, sess.Profile)
	assert.Empty(t, sess.LastError)
}

func TestAuthService_GetAuthToken(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		fx := createTestAuthService(t)

		token, ok := fx.service.GetAuthToken(ctx, entity.NewSession("s", authTestNow, time.Hour))

		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		token, ok := fx.service.GetAuthToken(ctx, signedInSession("access-1"))

		assert.True(t, ok)
		assert.Equal(t, "access-1", token)
	})

	t.Run("expired token refreshed", func(t *testing.T) {
		fx := createTestAuthService(t)
		sess := signedInSession("old-access")
		sess.Tokens.ExpiresAt = authTestNow
		fx.idp.EXPECT().RefreshSession(ctx, "sub-123", "refresh-token").Return(validTokens("new-access"), nil)
		fx.inspector.EXPECT().IsAdmin("new-access").Return(true)

		token, ok := fx.service.GetAuthToken(ctx, sess)

		assert.True(t, ok)
		assert.Equal(t, "new-access", token)
	})

	t.Run("refresh failure is absent, not an error", func(t *testing.T) {
		fx := createTestAuthService(t)
		sess := signedInSession("old-access")
		sess.Tokens.ExpiresAt = authTestNow.Add(-time.Hour)
		fx.idp.EXPECT().RefreshSession(ctx, "sub-123", "refresh-token").Return(nil, errors.New("network down"))

		token, ok := fx.service.GetAuthToken(ctx, sess)

		assert.False(t, ok)
		assert.Empty(t, token)
	})
}

func TestAuthService_RememberedIdentifiers_MostRecentFirst(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	existing := identifiersJSON(t, "a@x.com", "b@x.com", "ana@example.com", "c@x.com", "d@x.com")
	fx.store.EXPECT().Get(ctx, "public_identifiers_sess-1").Return(existing, nil)
	fx.store.EXPECT().
		Set(ctx, "public_identifiers_sess-1", identifiersJSON(t, "ana@example.com", "a@x.com", "b@x.com", "c@x.com", "d@x.com")).
		Return(nil)

	fx.service.remember(ctx, sess, "ana@example.com")

	fx.store.EXPECT().Get(ctx, "public_identifiers_sess-2").Return(nil, repository.ErrLocalKeyNotFound)
	ids, err := fx.service.RememberedIdentifiers(ctx, entity.NewSession("sess-2", authTestNow, time.Hour))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAuthService_RememberedIdentifiers_Capped(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	fx.store.EXPECT().Get(ctx, "public_identifiers_sess-1").
		Return(identifiersJSON(t, "1@x.com", "2@x.com", "3@x.com", "4@x.com", "5@x.com"), nil)
	fx.store.EXPECT().
		Set(ctx, "public_identifiers_sess-1", identifiersJSON(t, "new@x.com", "1@x.com", "2@x.com", "3@x.com", "4@x.com")).
		Return(nil)

	fx.service.remember(ctx, sess, "new@x.com")
}
