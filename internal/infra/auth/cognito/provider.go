// Package cognito adapts the Amazon Cognito user pool API to the IdentityProvider domain service.
package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userPoolAPI is the subset of the Cognito client the provider calls.
type userPoolAPI interface {
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	RespondToAuthChallenge(ctx context.Context, params *cip.RespondToAuthChallengeInput, optFns ...func(*cip.Options)) (*cip.RespondToAuthChallengeOutput, error)
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	GlobalSignOut(ctx context.Context, params *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
	GetUser(ctx context.Context, params *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
}

type provider struct {
	api          userPoolAPI
	clientID     string
	clientSecret string
	logger       *slog.Logger
	now          func() time.Time
}

// Params holds dependencies for the Cognito provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the Cognito client from the default AWS credential chain.
func New(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Cognito
	if cfg == nil || cfg.ClientID == "" {
		return nil, errors.New("cognito client id must be provided")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newProvider(client, cfg.ClientID, cfg.ClientSecret, params.Logger), nil
}

func newProvider(api userPoolAPI, clientID, clientSecret string, logger *slog.Logger) *provider {
	return &provider{
		api:          api,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
		now:          time.Now,
	}
}

// SignIn starts a USER_PASSWORD_AUTH sign-in.
func (p *provider) SignIn(ctx context.Context, username, password string) (*entity.SignInResult, error) {
	params := map[string]string{
		"USERNAME": username,
		"PASSWORD": password,
	}
	p.addSecretHash(params, username)

	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, translateError(err)
	}

	return p.signInResult(out.ChallengeName, out.Session, out.AuthenticationResult), nil
}

// RespondToNewPasswordChallenge answers NEW_PASSWORD_REQUIRED.
func (p *provider) RespondToNewPasswordChallenge(ctx context.Context, username, challengeSession, newPassword string) (*entity.SignInResult, error) {
	responses := map[string]string{
		"USERNAME":     username,
		"NEW_PASSWORD": newPassword,
	}
	p.addSecretHash(responses, username)

	out, err := p.api.RespondToAuthChallenge(ctx, &cip.RespondToAuthChallengeInput{
		ChallengeName:      types.ChallengeNameTypeNewPasswordRequired,
		ClientId:           aws.String(p.clientID),
		Session:            aws.String(challengeSession),
		ChallengeResponses: responses,
	})
	if err != nil {
		return nil, translateError(err)
	}

	return p.signInResult(out.ChallengeName, out.Session, out.AuthenticationResult), nil
}

// SignUp registers a new account.
func (p *provider) SignUp(ctx context.Context, req *entity.SignUpRequest) (*entity.SignUpResult, error) {
	attrs := make([]types.AttributeType, 0, len(req.Attributes))
	for name, value := range req.Attributes {
		attrs = append(attrs, types.AttributeType{Name: aws.String(name), Value: aws.String(value)})
	}

	out, err := p.api.SignUp(ctx, &cip.SignUpInput{
		ClientId:       aws.String(p.clientID),
		Username:       aws.String(req.Username),
		Password:       aws.String(req.Password),
		SecretHash:     p.secretHashPtr(req.Username),
		UserAttributes: attrs,
	})
	if err != nil {
		return nil, translateError(err)
	}

	result := &entity.SignUpResult{
		IsSignUpComplete: out.UserConfirmed,
		UserID:           aws.ToString(out.UserSub),
		NextStep:         entity.SignUpNextStep{SignUpStep: entity.SignUpStepDone},
	}
	if !out.UserConfirmed {
		result.NextStep.SignUpStep = entity.SignUpStepConfirm
	}
	if d := out.CodeDeliveryDetails; d != nil {
		result.NextStep.CodeDeliveryDetails = &entity.CodeDeliveryDetails{
			DeliveryMedium: string(d.DeliveryMedium),
			Destination:    aws.ToString(d.Destination),
			AttributeName:  aws.ToString(d.AttributeName),
		}
	}

	return result, nil
}

// ConfirmSignUp submits the confirmation code.
func (p *provider) ConfirmSignUp(ctx context.Context, username, code string) (bool, error) {
	_, err := p.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		SecretHash:       p.secretHashPtr(username),
	})
	if err != nil {
		return false, translateError(err)
	}

	return true, nil
}

// SignOut revokes every token of the user.
func (p *provider) SignOut(ctx context.Context, accessToken string) error {
	if _, err := p.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{AccessToken: aws.String(accessToken)}); err != nil {
		return translateSessionError(err)
	}

	return nil
}

// GetUser returns the user behind an access token.
func (p *provider) GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, entity.UserAttributes, error) {
	out, err := p.api.GetUser(ctx, &cip.GetUserInput{AccessToken: aws.String(accessToken)})
	if err != nil {
		return nil, nil, translateSessionError(err)
	}

	attrs := make(entity.UserAttributes, len(out.UserAttributes))
	for _, attr := range out.UserAttributes {
		attrs[aws.ToString(attr.Name)] = aws.ToString(attr.Value)
	}

	user := &entity.AuthUser{
		UserID:   attrs.Get(entity.AttrSub),
		Username: aws.ToString(out.Username),
	}

	return user, attrs, nil
}

// RefreshSession runs REFRESH_TOKEN_AUTH. The provider does not rotate the
// refresh token, so the presented one is carried over.
func (p *provider) RefreshSession(ctx context.Context, username, refreshToken string) (*entity.AuthTokens, error) {
	params := map[string]string{"REFRESH_TOKEN": refreshToken}
	p.addSecretHash(params, username)

	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeRefreshTokenAuth,
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, translateSessionError(err)
	}
	if out.AuthenticationResult == nil {
		return nil, service.ErrNoSession
	}

	return p.tokens(out.AuthenticationResult, refreshToken), nil
}

func (p *provider) signInResult(challenge types.ChallengeNameType, session *string, auth *types.AuthenticationResultType) *entity.SignInResult {
	switch {
	case auth != nil:
		return &entity.SignInResult{
			IsSignedIn: true,
			NextStep:   entity.SignInStepDone,
			Tokens:     p.tokens(auth, ""),
		}
	case challenge == types.ChallengeNameTypeNewPasswordRequired:
		return &entity.SignInResult{
			NextStep:         entity.SignInStepNewPasswordRequired,
			ChallengeSession: aws.ToString(session),
		}
	default:
		p.logger.Warn("Unsupported sign-in challenge", slog.String("challenge", string(challenge)))

		return &entity.SignInResult{
			NextStep:         entity.SignInStepUnsupportedChallenge,
			ChallengeSession: aws.ToString(session),
		}
	}
}

func (p *provider) tokens(auth *types.AuthenticationResultType, refreshFallback string) *entity.AuthTokens {
	refresh := aws.ToString(auth.RefreshToken)
	if refresh == "" {
		refresh = refreshFallback
	}

	return &entity.AuthTokens{
		AccessToken:  aws.ToString(auth.AccessToken),
		IDToken:      aws.ToString(auth.IdToken),
		RefreshToken: refresh,
		ExpiresAt:    p.now().Add(time.Duration(auth.ExpiresIn) * time.Second),
	}
}

// secretHash is Base64(HMAC_SHA256(clientSecret, username + clientID)), required
// by app clients that have a secret.
func (p *provider) secretHash(username string) string {
	mac := hmac.New(sha256.New, []byte(p.clientSecret))
	mac.Write([]byte(username + p.clientID))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (p *provider) secretHashPtr(username string) *string {
	if p.clientSecret == "" {
		return nil
	}

	return aws.String(p.secretHash(username))
}

func (p *provider) addSecretHash(params map[string]string, username string) {
	if p.clientSecret != "" {
		params["SECRET_HASH"] = p.secretHash(username)
	}
}

// translateError maps user pool exceptions to domain errors, keeping the provider message as details.
func translateError(err error) error {
	var (
		notAuthorized *types.NotAuthorizedException
		userNotFound  *types.UserNotFoundException
		notConfirmed  *types.UserNotConfirmedException
		exists        *types.UsernameExistsException
		mismatch      *types.CodeMismatchException
		expired       *types.ExpiredCodeException
		badPassword   *types.InvalidPasswordException
		limit         *types.LimitExceededException
		tooMany       *types.TooManyRequestsException
		badParam      *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &notAuthorized), errors.As(err, &userNotFound):
		return domainerrors.ErrInvalidCredentials.WithDetails(err.Error())
	case errors.As(err, &notConfirmed):
		return domainerrors.ErrUserNotConfirmed.WithDetails(err.Error())
	case errors.As(err, &exists):
		return domainerrors.ErrUserAlreadyExists.WithDetails(err.Error())
	case errors.As(err, &mismatch), errors.As(err, &expired):
		return domainerrors.ErrInvalidConfirmationCode.WithDetails(err.Error())
	case errors.As(err, &badPassword):
		return domainerrors.ErrPasswordPolicy.WithDetails(err.Error())
	case errors.As(err, &limit), errors.As(err, &tooMany):
		return domainerrors.ErrRateLimited.WithDetails(err.Error())
	case errors.As(err, &badParam):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	default:
		return errors.Wrap(domainerrors.ErrIdentityProvider.WithDetails(err.Error()), "cognito request failed")
	}
}

// translateSessionError treats rejected tokens as the expected no-session outcome.
func translateSessionError(err error) error {
	var (
		notAuthorized *types.NotAuthorizedException
		userNotFound  *types.UserNotFoundException
	)
	if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
		return service.ErrNoSession
	}

	return translateError(err)
}
