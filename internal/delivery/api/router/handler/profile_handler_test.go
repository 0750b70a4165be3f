package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantForce  bool
		profile    *entity.Profile
		err        error
		wantStatus int
	}{
		{
			name:       "cached profile",
			target:     "/api/v1/profile",
			profile:    &entity.Profile{ID: uuid.New(), UserID: "sub-123", FirstName: "Ana"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "forced refresh",
			target:     "/api/v1/profile?refresh=true",
			wantForce:  true,
			profile:    &entity.Profile{ID: uuid.New(), UserID: "sub-123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no profile yet",
			target:     "/api/v1/profile",
			wantStatus: http.StatusOK,
		},
		{
			name:       "backend failure",
			target:     "/api/v1/profile",
			err:        domainerrors.ErrProfileLoadFailed,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileUC := mockUC.NewMockProfileUsecase(t)
			profileUC.EXPECT().FetchUserProfile(mock.Anything, mock.Anything, tt.wantForce).Return(tt.profile, tt.err)

			rec := serve(t, NewProfileHandler(profileUC).GetProfile, testRequest{
				method: http.MethodGet,
				target: tt.target,
				sess:   customer(),
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				got := decodeData[*entity.Profile](t, rec)
				if tt.profile == nil {
					assert.Nil(t, got)
				} else {
					assert.Equal(t, tt.profile.ID, got.ID)
				}
			}
		})
	}
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	firstName := "Ana"
	created := &entity.Profile{ID: uuid.New(), UserID: "sub-123", FirstName: firstName}
	profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything, &usecase.ProfileInput{FirstName: &firstName}).Return(created, nil)

	rec := serve(t, NewProfileHandler(profileUC).CreateProfile, testRequest{
		method: http.MethodPost,
		target: "/api/v1/profile",
		body:   `{"firstName":"Ana"}`,
		sess:   customer(),
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, created.ID, decodeData[entity.Profile](t, rec).ID)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("invalid preferences", func(t *testing.T) {
		rec := serve(t, NewProfileHandler(mockUC.NewMockProfileUsecase(t)).UpdateProfile, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/profile",
			body:   `{"preferences":"{not json"}`,
			sess:   customer(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"preferences": "json"}, decodeError(t, rec).Details)
	})

	t.Run("no profile loaded", func(t *testing.T) {
		profileUC := mockUC.NewMockProfileUsecase(t)
		profileUC.EXPECT().UpdateProfile(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoProfileLoaded)

		rec := serve(t, NewProfileHandler(profileUC).UpdateProfile, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/profile",
			body:   `{"city":"Lima"}`,
			sess:   customer(),
		})

		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
		assert.Equal(t, "NO_PROFILE_LOADED", decodeError(t, rec).Code)
	})

	t.Run("success", func(t *testing.T) {
		profileUC := mockUC.NewMockProfileUsecase(t)
		profileUC.EXPECT().UpdateProfile(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.ProfileInput) bool {
			return in.City != nil && *in.City == "Lima" && in.FirstName == nil
		})).Return(&entity.Profile{City: "Lima"}, nil)

		rec := serve(t, NewProfileHandler(profileUC).UpdateProfile, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/profile",
			body:   `{"city":"Lima"}`,
			sess:   customer(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lima", decodeData[entity.Profile](t, rec).City)
	})
}
