package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository returns a SessionRepository that keeps browser sessions in the
// browser_sessions table.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// Find treats expired rows as missing.
func (repo *sessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	var row model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, repo.now()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &row.State, nil
}

// Save upserts the session state.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	row := &model.SessionModel{
		ID:        session.ID,
		State:     *session,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "expires_at", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save session")
	}

	return nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}
