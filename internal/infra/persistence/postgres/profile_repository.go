package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a ProfileRepository backed by GORM.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// ListByUserID returns the profiles of a user ordered by creation time, so callers
// taking the first element get the oldest record.
func (repo *profileRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Profile, error) {
	var rows []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, toProfileDomain(row))
	}

	return profiles, nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var row model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&row), nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate profile id")
		}
		profile.ID = id
	}

	row := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}
	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	row := fromProfileDomain(profile)
	result := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:             data.ID,
		UserID:         data.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		DocumentNumber: data.DocumentNumber,
		Address:        data.Address,
		City:           data.City,
		State:          data.State,
		ZipCode:        data.ZipCode,
		Phone:          data.Phone,
		Email:          data.Email,
		AvatarURL:      data.AvatarURL,
		Preferences:    data.Preferences,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:             data.ID,
		UserID:         data.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		DocumentNumber: data.DocumentNumber,
		Address:        data.Address,
		City:           data.City,
		State:          data.State,
		ZipCode:        data.ZipCode,
		Phone:          data.Phone,
		Email:          data.Email,
		AvatarURL:      data.AvatarURL,
		Preferences:    data.Preferences,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
