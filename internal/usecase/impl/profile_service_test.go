package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     *profileService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Logger:    logger,
	}).(*profileService)
	srv.now = func() time.Time { return authTestNow }

	return profileServiceFixtures{
		service:     srv,
		txManager:   txManager,
		factory:     factory,
		profileRepo: profileRepo,
	}
}

// expectTx runs the transaction callback against the fixture's repositories.
func (fx profileServiceFixtures) expectTx(ctx context.Context) {
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func customerSession() *entity.Session {
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.User = &entity.AuthUser{UserID: "sub-123", Username: "sub-123", LoginID: "ana@example.com"}
	sess.Attributes = entity.UserAttributes{entity.AttrEmail: "ana@example.com"}

	return sess
}

func TestProfileService_FetchUserProfile_Unauthenticated(t *testing.T) {
	fx := createTestProfileService(t)
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)
	sess.Profile = &entity.Profile{UserID: "stale"}

	profile, err := fx.service.FetchUserProfile(context.Background(), sess, false)

	require.NoError(t, err)
	assert.Nil(t, profile)
	assert.Nil(t, sess.Profile)
}

func TestProfileService_FetchUserProfile_UsesCache(t *testing.T) {
	fx := createTestProfileService(t)
	sess := customerSession()
	cached := &entity.Profile{ID: uuid.New(), UserID: "sub-123", FirstName: "Ana"}
	sess.Profile = cached

	profile, err := fx.service.FetchUserProfile(context.Background(), sess, false)

	require.NoError(t, err)
	assert.Same(t, cached, profile)
}

func TestProfileService_FetchUserProfile_ForceRefreshFirstMatchWins(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()
	sess.Profile = &entity.Profile{UserID: "sub-123", FirstName: "Stale"}

	oldest := &entity.Profile{ID: uuid.New(), UserID: "sub-123", FirstName: "Ana"}
	newer := &entity.Profile{ID: uuid.New(), UserID: "sub-123", FirstName: "Duplicate"}
	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().ListByUserID(ctx, "sub-123").Return([]*entity.Profile{oldest, newer}, nil)

	profile, err := fx.service.FetchUserProfile(ctx, sess, true)

	require.NoError(t, err)
	assert.Same(t, oldest, profile)
	assert.Same(t, oldest, sess.Profile)
}

func TestProfileService_FetchUserProfile_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()

	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().ListByUserID(ctx, "sub-123").Return([]*entity.Profile{}, nil)

	profile, err := fx.service.FetchUserProfile(ctx, sess, false)

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_FetchUserProfile_MissingUserID(t *testing.T) {
	fx := createTestProfileService(t)
	sess := customerSession()
	sess.User.UserID = ""

	profile, err := fx.service.FetchUserProfile(context.Background(), sess, true)

	assert.Nil(t, profile)
	assert.Error(t, err)
}

func TestProfileService_FetchUserProfile_BackendFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()

	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().ListByUserID(ctx, "sub-123").Return(nil, errors.New("connection refused"))

	profile, err := fx.service.FetchUserProfile(ctx, sess, true)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileLoadFailed)
	assert.Equal(t, "Error al cargar perfil", sess.LastError)
}

func TestProfileService_CreateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()

	first, phone := "Ana", " +51987654321 "
	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			profile.ID = uuid.New()
		}).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, sess, &usecase.ProfileInput{FirstName: &first, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "sub-123", profile.UserID)
	assert.Equal(t, "Ana", profile.FirstName)
	assert.Equal(t, "+51987654321", profile.Phone)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, authTestNow, profile.CreatedAt)
	assert.Equal(t, authTestNow, profile.UpdatedAt)
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.Same(t, profile, sess.Profile)
}

func TestProfileService_CreateProfile_RequiresAuthentication(t *testing.T) {
	fx := createTestProfileService(t)
	sess := entity.NewSession("sess-1", authTestNow, time.Hour)

	profile, err := fx.service.CreateProfile(context.Background(), sess, &usecase.ProfileInput{})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProfileService_UpdateProfile_WithoutCachedProfile(t *testing.T) {
	fx := createTestProfileService(t)
	sess := customerSession()
	name := "Ana"

	// No transaction expectation: the repository must not be reached.
	profile, err := fx.service.UpdateProfile(context.Background(), sess, &usecase.ProfileInput{FirstName: &name})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrNoProfileLoaded)
	assert.Equal(t, domainerrors.ErrNoProfileLoaded.Message(), sess.LastError)
}

func TestProfileService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()
	original := &entity.Profile{
		ID:        uuid.New(),
		UserID:    "sub-123",
		FirstName: "Ana",
		LastName:  "Quispe",
		City:      "Lima",
		CreatedAt: authTestNow.Add(-24 * time.Hour),
		UpdatedAt: authTestNow.Add(-24 * time.Hour),
	}
	sess.Profile = original

	city := "Cusco"
	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == original.ID && p.City == "Cusco" && p.FirstName == "Ana"
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, sess, &usecase.ProfileInput{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Cusco", profile.City)
	assert.Equal(t, "Quispe", profile.LastName)
	assert.Equal(t, authTestNow, profile.UpdatedAt)
	assert.Equal(t, original.CreatedAt, profile.CreatedAt)
	assert.Same(t, profile, sess.Profile)
	assert.Equal(t, "Lima", original.City, "cached value is replaced, not mutated")
}

func TestProfileService_UpdateProfile_NotOwner(t *testing.T) {
	fx := createTestProfileService(t)
	sess := customerSession()
	sess.Profile = &entity.Profile{ID: uuid.New(), UserID: "someone-else"}
	name := "Ana"

	profile, err := fx.service.UpdateProfile(context.Background(), sess, &usecase.ProfileInput{FirstName: &name})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_UpdateProfile_Vanished(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	sess := customerSession()
	sess.Profile = &entity.Profile{ID: uuid.New(), UserID: "sub-123"}
	name := "Ana"

	fx.expectTx(ctx)
	fx.profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(repository.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, sess, &usecase.ProfileInput{FirstName: &name})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, sess.Profile)
}

func TestProfileService_ClearProfile(t *testing.T) {
	fx := createTestProfileService(t)
	sess := customerSession()
	sess.Profile = &entity.Profile{UserID: "sub-123"}

	fx.service.ClearProfile(sess)

	assert.Nil(t, sess.Profile)
	assert.True(t, sess.IsAuthenticated())
}
