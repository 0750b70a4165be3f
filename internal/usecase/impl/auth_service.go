package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pendingRegistrationPrefix = "profile_data_"
	publicIdentifiersPrefix   = "public_identifiers_"
	maxRememberedIdentifiers  = 5
)

// authService implements the AuthUsecase interface.
type authService struct {
	idp       service.IdentityProvider
	phone     service.PhoneNormalizer
	inspector service.TokenInspector
	sealer    service.Sealer
	store     repository.LocalStore
	profiles  usecase.ProfileUsecase
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	PhoneNormalizer  service.PhoneNormalizer
	TokenInspector   service.TokenInspector
	Sealer           service.Sealer
	LocalStore       repository.LocalStore
	ProfileUsecase   usecase.ProfileUsecase
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		idp:       params.IdentityProvider,
		phone:     params.PhoneNormalizer,
		inspector: params.TokenInspector,
		sealer:    params.Sealer,
		store:     params.LocalStore,
		profiles:  params.ProfileUsecase,
		logger:    params.Logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeIdentifier trims emails and converts phone-style identifiers to E.164.
func (srv *authService) normalizeIdentifier(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", domainerrors.ErrInvalidIdentifier
	}
	if entity.IsEmailIdentifier(identifier) {
		return identifier, nil
	}

	normalized, err := srv.phone.Normalize(identifier)
	if err != nil {
		return "", domainerrors.ErrInvalidIdentifier.WithDetails(err.Error())
	}

	return normalized, nil
}

// Login signs in with an email or phone identifier.
func (srv *authService) Login(ctx context.Context, sess *entity.Session, identifier, password string) (*usecase.LoginResult, error) {
	sess.LastError = ""

	username, err := srv.normalizeIdentifier(identifier)
	if err != nil {
		return nil, fail(sess, err, "login failed")
	}

	result, err := srv.idp.SignIn(ctx, username, password)
	if err != nil {
		srv.log(ctx).Info("Sign-in rejected", slog.String("identifier", username), slog.Any("error", err))

		return nil, fail(sess, err, "login failed")
	}

	if result.NextStep == entity.SignInStepNewPasswordRequired {
		sealed, err := srv.sealer.Seal([]byte(password))
		if err != nil {
			return nil, fail(sess, err, "login failed")
		}
		sess.PendingChallenge = &entity.PendingChallenge{
			Identifier:     username,
			SealedPassword: sealed,
			CreatedAt:      srv.now(),
		}

		return &usecase.LoginResult{
			RequiresNewPassword: true,
			Identifier:          username,
			TemporaryPassword:   password,
			NextStep:            result.NextStep,
		}, nil
	}

	if !result.IsSignedIn {
		return &usecase.LoginResult{Identifier: username, NextStep: result.NextStep}, nil
	}

	if err := srv.establish(ctx, sess, username, result.Tokens); err != nil {
		return nil, fail(sess, err, "login failed")
	}
	srv.remember(ctx, sess, username)

	return &usecase.LoginResult{
		IsSignedIn: true,
		Identifier: username,
		NextStep:   entity.SignInStepDone,
	}, nil
}

// CompleteNewPasswordChallenge re-submits the sign-in and answers the forced
// password change. It reports false for any outcome other than a completed sign-in.
func (srv *authService) CompleteNewPasswordChallenge(ctx context.Context, sess *entity.Session, input *usecase.NewPasswordInput) (bool, error) {
	sess.LastError = ""

	var username string
	if strings.TrimSpace(input.Identifier) == "" && sess.PendingChallenge != nil {
		username = sess.PendingChallenge.Identifier
	} else {
		normalized, err := srv.normalizeIdentifier(input.Identifier)
		if err != nil {
			return false, fail(sess, err, "password change failed")
		}
		username = normalized
	}

	tempPassword := input.TemporaryPassword
	if tempPassword == "" {
		pending := sess.PendingChallenge
		if pending == nil || pending.Identifier != username {
			return false, fail(sess, domainerrors.ErrNoPendingChallenge, "password change failed")
		}
		plain, err := srv.sealer.Open(pending.SealedPassword)
		if err != nil {
			srv.log(ctx).Warn("Pending challenge could not be unsealed", slog.Any("error", err))

			return false, fail(sess, domainerrors.ErrNoPendingChallenge, "password change failed")
		}
		tempPassword = string(plain)
	}

	result, err := srv.idp.SignIn(ctx, username, tempPassword)
	if err != nil {
		return false, fail(sess, err, "password change failed")
	}
	if result.NextStep != entity.SignInStepNewPasswordRequired {
		return false, nil
	}

	confirmed, err := srv.idp.RespondToNewPasswordChallenge(ctx, username, result.ChallengeSession, input.NewPassword)
	if err != nil {
		return false, fail(sess, err, "password change failed")
	}
	if !confirmed.IsSignedIn {
		return false, nil
	}

	if err := srv.establish(ctx, sess, username, confirmed.Tokens); err != nil {
		return false, fail(sess, err, "password change failed")
	}
	srv.remember(ctx, sess, username)

	return true, nil
}

// Register signs up a new account and stashes the data needed to finish the
// registration once the account is confirmed.
func (srv *authService) Register(ctx context.Context, sess *entity.Session, input *usecase.RegisterInput) (*entity.SignUpResult, error) {
	sess.LastError = ""

	username, err := srv.normalizeIdentifier(input.Identifier)
	if err != nil {
		return nil, fail(sess, err, "registration failed")
	}

	attributes := entity.UserAttributes{}
	isEmail := entity.IsEmailIdentifier(username)
	if isEmail {
		attributes[entity.AttrEmail] = username
	} else {
		attributes[entity.AttrPhoneNumber] = username
	}

	var phone string
	if strings.TrimSpace(input.Phone) != "" {
		phone, err = srv.phone.Normalize(input.Phone)
		if err != nil {
			return nil, fail(sess, domainerrors.ErrValidationFailed.WithDetails("invalid phone: "+err.Error()), "registration failed")
		}
		if isEmail {
			attributes[entity.AttrPhoneNumber] = phone
		}
	}
	if v := optional(input.FirstName); v != nil {
		attributes[entity.AttrGivenName] = *v
	}
	if v := optional(input.LastName); v != nil {
		attributes[entity.AttrFamilyName] = *v
	}
	if v := optional(input.DocumentNumber); v != nil {
		attributes[entity.AttrDocumentNumber] = *v
	}

	result, err := srv.idp.SignUp(ctx, &entity.SignUpRequest{
		Username:   username,
		Password:   input.Password,
		Attributes: attributes,
	})
	if err != nil {
		return nil, fail(sess, err, "registration failed")
	}

	// The account exists at the provider from here on; a lost stash only
	// disables FinishRegistration.
	if err := srv.stashRegistration(ctx, sess, username, phone, isEmail, input, result.UserID); err != nil {
		srv.log(ctx).Error("Failed to stash pending registration",
			slog.String("identifier", username),
			slog.Any("error", err),
		)
	} else {
		sess.PendingSignUp = username
	}

	return result, nil
}

// pendingRegistrationKey scopes the stash to the browser that registered.
func pendingRegistrationKey(sess *entity.Session, username string) string {
	return pendingRegistrationPrefix + sess.LocalScope() + "_" + username
}

func (srv *authService) stashRegistration(ctx context.Context, sess *entity.Session, username, phone string, isEmail bool, input *usecase.RegisterInput, userID string) error {
	sealed, err := srv.sealer.Seal([]byte(input.Password))
	if err != nil {
		return errors.Wrap(err, "seal password")
	}

	pending := usecase.PendingRegistration{
		Identifier:     username,
		UserID:         userID,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Phone:          phone,
		DocumentNumber: strings.TrimSpace(input.DocumentNumber),
		SealedPassword: sealed,
	}
	if isEmail {
		pending.Email = username
	} else if pending.Phone == "" {
		pending.Phone = username
	}

	raw, err := json.Marshal(pending)
	if err != nil {
		return errors.Wrap(err, "encode pending registration")
	}

	return srv.store.Set(ctx, pendingRegistrationKey(sess, username), raw)
}

// ConfirmSignUp submits the emailed or texted confirmation code.
func (srv *authService) ConfirmSignUp(ctx context.Context, sess *entity.Session, identifier, code string) (bool, error) {
	sess.LastError = ""

	username, err := srv.normalizeIdentifier(identifier)
	if err != nil {
		return false, fail(sess, err, "sign-up confirmation failed")
	}

	complete, err := srv.idp.ConfirmSignUp(ctx, username, strings.TrimSpace(code))
	if err != nil {
		return false, fail(sess, err, "sign-up confirmation failed")
	}

	return complete, nil
}

// FinishRegistration signs in a confirmed account with the stashed credentials
// and creates its profile from the stashed fields.
func (srv *authService) FinishRegistration(ctx context.Context, sess *entity.Session, identifier string) (*entity.Profile, error) {
	sess.LastError = ""

	username, err := srv.normalizeIdentifier(identifier)
	if err != nil {
		return nil, fail(sess, err, "finish registration failed")
	}

	// Registrations made from another browser are invisible here.
	key := pendingRegistrationKey(sess, username)
	raw, err := srv.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLocalKeyNotFound) {
			return nil, fail(sess, domainerrors.ErrRegistrationNotFound, "finish registration failed")
		}

		return nil, fail(sess, err, "finish registration failed")
	}

	var pending usecase.PendingRegistration
	if err := json.Unmarshal(raw, &pending); err != nil || pending.Identifier != username {
		return nil, fail(sess, domainerrors.ErrRegistrationNotFound.WithDetails("corrupt pending registration"), "finish registration failed")
	}
	password, err := srv.sealer.Open(pending.SealedPassword)
	if err != nil {
		return nil, fail(sess, domainerrors.ErrRegistrationNotFound.WithDetails("pending credentials unreadable"), "finish registration failed")
	}

	result, err := srv.Login(ctx, sess, username, string(password))
	if err != nil {
		return nil, err
	}
	if !result.IsSignedIn {
		return nil, fail(sess, domainerrors.ErrIdentityProvider.WithDetails("sign-in after registration stopped at "+string(result.NextStep)), "finish registration failed")
	}

	profile, err := srv.profiles.FetchUserProfile(ctx, sess, true)
	if err != nil {
		return nil, fail(sess, err, "finish registration failed")
	}
	if profile == nil {
		email := pending.Email
		if email == "" {
			email = sess.UserEmail()
		}
		profile, err = srv.profiles.CreateProfile(ctx, sess, &usecase.ProfileInput{
			FirstName:      optional(pending.FirstName),
			LastName:       optional(pending.LastName),
			DocumentNumber: optional(pending.DocumentNumber),
			Phone:          optional(pending.Phone),
			Email:          optional(email),
		})
		if err != nil {
			return nil, fail(sess, err, "finish registration failed")
		}
	}

	if err := srv.store.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete pending registration", slog.String("identifier", username), slog.Any("error", err))
	}
	sess.PendingSignUp = ""

	return profile, nil
}

// Logout signs out globally at the provider. Local state is cleared even when
// the provider call fails; that error is still recorded and returned.
func (srv *authService) Logout(ctx context.Context, sess *entity.Session) error {
	var signOutErr error
	if sess.Tokens != nil && sess.Tokens.AccessToken != "" {
		if err := srv.idp.SignOut(ctx, sess.Tokens.AccessToken); err != nil && !errors.Is(err, service.ErrNoSession) {
			signOutErr = err
		}
	}

	srv.forget(ctx, sess)
	sess.ClearAuth()
	srv.profiles.ClearProfile(sess)

	if signOutErr != nil {
		return fail(sess, signOutErr, "logout failed")
	}
	sess.LastError = ""

	return nil
}

// CheckAuth revalidates the session against the provider. Having no session is
// an ordinary outcome: state is cleared and nothing is reported.
func (srv *authService) CheckAuth(ctx context.Context, sess *entity.Session) {
	if sess.Tokens == nil || sess.Tokens.AccessToken == "" {
		srv.clearIdentity(sess)

		return
	}

	refreshed := false
	if sess.Tokens.IsExpired(srv.now()) {
		if !srv.refresh(ctx, sess) {
			srv.clearIdentity(sess)

			return
		}
		refreshed = true
	}

	user, attributes, err := srv.idp.GetUser(ctx, sess.Tokens.AccessToken)
	if errors.Is(err, service.ErrNoSession) && !refreshed && srv.refresh(ctx, sess) {
		user, attributes, err = srv.idp.GetUser(ctx, sess.Tokens.AccessToken)
	}
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			srv.log(ctx).Warn("Auth check failed, clearing session", slog.Any("error", err))
		}
		srv.clearIdentity(sess)

		return
	}

	if sess.User != nil && sess.User.LoginID != "" {
		user.LoginID = sess.User.LoginID
	} else if user.LoginID == "" {
		user.LoginID = user.Username
	}
	sess.User = user
	sess.Attributes = attributes
	sess.IsAdmin = srv.inspector.IsAdmin(sess.Tokens.AccessToken)
}

// GetAuthToken returns a usable access token, refreshing an expired one.
// Failures yield ("", false) rather than an error.
func (srv *authService) GetAuthToken(ctx context.Context, sess *entity.Session) (string, bool) {
	if sess.Tokens == nil || sess.Tokens.AccessToken == "" {
		return "", false
	}
	if !sess.Tokens.IsExpired(srv.now()) {
		return sess.Tokens.AccessToken, true
	}
	if !srv.refresh(ctx, sess) {
		return "", false
	}

	return sess.Tokens.AccessToken, true
}

// RememberedIdentifiers lists the identifiers recently used on this browser, newest first.
func (srv *authService) RememberedIdentifiers(ctx context.Context, sess *entity.Session) ([]string, error) {
	raw, err := srv.store.Get(ctx, publicIdentifiersPrefix+sess.LocalScope())
	if err != nil {
		if errors.Is(err, repository.ErrLocalKeyNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to read remembered identifiers")
	}

	var identifiers []string
	if err := json.Unmarshal(raw, &identifiers); err != nil {
		return []string{}, nil
	}

	return identifiers, nil
}

// establish fetches the signed-in user and stores it with its tokens. The
// session id is rotated so an id known before sign-in never carries the tokens.
func (srv *authService) establish(ctx context.Context, sess *entity.Session, loginID string, tokens *entity.AuthTokens) error {
	if tokens == nil || tokens.AccessToken == "" {
		return domainerrors.ErrIdentityProvider.WithDetails("sign-in completed without tokens")
	}

	user, attributes, err := srv.idp.GetUser(ctx, tokens.AccessToken)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return domainerrors.ErrIdentityProvider.WithDetails("fresh access token rejected")
		}

		return err
	}
	user.LoginID = loginID

	if sess.Profile != nil && sess.Profile.UserID != user.UserID {
		sess.ClearProfile()
	}
	sess.Rotate(srv.newID())
	sess.User = user
	sess.Attributes = attributes
	sess.Tokens = tokens
	sess.PendingChallenge = nil
	sess.IsAdmin = srv.inspector.IsAdmin(tokens.AccessToken)
	sess.LastError = ""

	return nil
}

// refresh exchanges the refresh token once. It reports whether fresh tokens are in place.
func (srv *authService) refresh(ctx context.Context, sess *entity.Session) bool {
	if !sess.Tokens.CanRefresh() || sess.User == nil {
		return false
	}

	tokens, err := srv.idp.RefreshSession(ctx, sess.User.Username, sess.Tokens.RefreshToken)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))
		}

		return false
	}

	sess.Tokens = tokens
	sess.IsAdmin = srv.inspector.IsAdmin(tokens.AccessToken)

	return true
}

func (srv *authService) clearIdentity(sess *entity.Session) {
	sess.ClearAuth()
	srv.profiles.ClearProfile(sess)
}

// remember keeps the identifier in the browser's public identifier list.
// Failures only cost the convenience, so they are logged.
func (srv *authService) remember(ctx context.Context, sess *entity.Session, identifier string) {
	identifiers, err := srv.RememberedIdentifiers(ctx, sess)
	if err != nil {
		srv.log(ctx).Warn("Failed to load remembered identifiers", slog.Any("error", err))
		identifiers = nil
	}

	identifiers = slices.DeleteFunc(identifiers, func(s string) bool { return s == identifier })
	identifiers = append([]string{identifier}, identifiers...)
	if len(identifiers) > maxRememberedIdentifiers {
		identifiers = identifiers[:maxRememberedIdentifiers]
	}

	raw, err := json.Marshal(identifiers)
	if err != nil {
		return
	}
	if err := srv.store.Set(ctx, publicIdentifiersPrefix+sess.LocalScope(), raw); err != nil {
		srv.log(ctx).Warn("Failed to remember identifier", slog.Any("error", err))
	}
}

func (srv *authService) forget(ctx context.Context, sess *entity.Session) {
	if err := srv.store.Delete(ctx, publicIdentifiersPrefix+sess.LocalScope()); err != nil {
		srv.log(ctx).Warn("Failed to clear remembered identifiers", slog.Any("error", err))
	}
}
