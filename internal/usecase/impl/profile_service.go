package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/schema"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchUserProfile returns the cached profile unless forceRefresh is set or
// nothing is cached. Guests get (nil, nil) and an empty cache.
func (srv *profileService) FetchUserProfile(ctx context.Context, sess *entity.Session, forceRefresh bool) (*entity.Profile, error) {
	if !sess.IsAuthenticated() {
		sess.ClearProfile()

		return nil, nil
	}
	if sess.Profile != nil && !forceRefresh {
		return sess.Profile, nil
	}

	userID := sess.UserID()
	if userID == "" {
		return nil, fail(sess, domainerrors.ErrUnauthenticated.WithDetails("session user has no id"), "fetch profile")
	}

	var profiles []*entity.Profile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		profiles, err = factory.ProfileRepo().ListByUserID(ctx, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Error al cargar perfil",
			slog.String("user_id", userID),
			slog.String("login_id", sess.User.LoginID),
			slog.Bool("force_refresh", forceRefresh),
			slog.Any("error", err),
		)

		return nil, fail(sess, domainerrors.ErrProfileLoadFailed.WithDetails(err.Error()), "fetch profile")
	}

	if len(profiles) == 0 {
		sess.ClearProfile()

		return nil, nil
	}
	if len(profiles) > 1 {
		srv.log(ctx).Warn("Multiple profiles for one user, using the oldest",
			slog.String("user_id", userID),
			slog.Int("count", len(profiles)),
		)
	}

	sess.Profile = profiles[0]

	return sess.Profile, nil
}

// CreateProfile stores a profile owned by the signed-in identity.
func (srv *profileService) CreateProfile(ctx context.Context, sess *entity.Session, input *usecase.ProfileInput) (*entity.Profile, error) {
	if err := authorize(sess, schema.ModelProfile, schema.OpCreate, false); err != nil {
		return nil, fail(sess, err, "create profile")
	}

	now := srv.now().UTC()
	profile := &entity.Profile{
		UserID:    sess.UserID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfileInput(profile, input)
	if profile.Email == "" {
		profile.Email = sess.UserEmail()
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.ProfileRepo().Create(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.String("user_id", profile.UserID), slog.Any("error", err))

		return nil, fail(sess, domainerrors.ErrProfileCreateFailed.WithDetails(err.Error()), "create profile")
	}

	sess.Profile = profile

	return profile, nil
}

// UpdateProfile applies the provided fields to the cached profile.
func (srv *profileService) UpdateProfile(ctx context.Context, sess *entity.Session, input *usecase.ProfileInput) (*entity.Profile, error) {
	if sess.Profile == nil {
		return nil, fail(sess, domainerrors.ErrNoProfileLoaded, "update profile")
	}
	isOwner := sess.UserID() != "" && sess.Profile.UserID == sess.UserID()
	if err := authorize(sess, schema.ModelProfile, schema.OpUpdate, isOwner); err != nil {
		return nil, fail(sess, err, "update profile")
	}

	updated := *sess.Profile
	applyProfileInput(&updated, input)
	updated.UpdatedAt = srv.now().UTC()

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.ProfileRepo().Update(ctx, &updated)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			sess.ClearProfile()

			return nil, fail(sess, domainerrors.ErrProfileNotFound, "update profile")
		}
		srv.log(ctx).Error("Failed to update profile", slog.String("profile_id", updated.ID.String()), slog.Any("error", err))

		return nil, fail(sess, domainerrors.ErrProfileUpdateFailed.WithDetails(err.Error()), "update profile")
	}

	sess.Profile = &updated

	return sess.Profile, nil
}

// ClearProfile drops the cached profile, as logout does.
func (srv *profileService) ClearProfile(sess *entity.Session) {
	sess.ClearProfile()
}

func applyProfileInput(profile *entity.Profile, input *usecase.ProfileInput) {
	if input == nil {
		return
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&profile.FirstName, input.FirstName)
	set(&profile.LastName, input.LastName)
	set(&profile.DocumentNumber, input.DocumentNumber)
	set(&profile.Address, input.Address)
	set(&profile.City, input.City)
	set(&profile.State, input.State)
	set(&profile.ZipCode, input.ZipCode)
	set(&profile.Phone, input.Phone)
	set(&profile.Email, input.Email)
	set(&profile.AvatarURL, input.AvatarURL)
	set(&profile.Preferences, input.Preferences)
}
