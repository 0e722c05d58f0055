// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userLocationRepository implements the repository.UserLocationRepository interface.
type userLocationRepository struct {
	db *gorm.DB
}

// NewUserLocationRepository is the constructor for userLocationRepository.
func NewUserLocationRepository(db *gorm.DB) repository.UserLocationRepository {
	return &userLocationRepository{
		db: db,
	}
}

// Upsert writes the user's position row, keyed on user_id. First report
// inserts, every later report overwrites in place.
func (repo *userLocationRepository) Upsert(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromUserLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "is_sharing", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationUpsertFailed.WrapMessage("unknown user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationUpsertFailed.WrapMessage("missing required location fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user location")
	}

	return nil
}

// SetSharing flips the sharing flag without touching the coordinate columns,
// so a user who re-enables sharing immediately regains their previous fix.
// A user who toggles before ever reporting gets a row with null coordinates.
func (repo *userLocationRepository) SetSharing(ctx context.Context, userID uuid.UUID, sharing bool, updatedAt time.Time) (*entity.UserLocation, error) {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_sharing", "updated_at"}),
		}).
		Create(&model.UserLocationModel{
			UserID:    userID,
			IsSharing: sharing,
			UpdatedAt: updatedAt,
		}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update sharing flag")
	}

	var locationM model.UserLocationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload user location after sharing update")
	}

	return toUserLocationDomain(&locationM), nil
}

// FindByUserID retrieves a user's location row.
func (repo *userLocationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find user location")
	}

	return toUserLocationDomain(&locationM), nil
}

// FindByUserIDs retrieves location rows for a set of users in one query.
// Users without a row are absent from the result, not errors.
func (repo *userLocationRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserLocation, error) {
	if len(userIDs) == 0 {
		return []*entity.UserLocation{}, nil
	}

	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user locations")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toUserLocationDomain(locationM))
	}

	return locations, nil
}

// Delete removes a user's location row.
func (repo *userLocationRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserLocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toUserLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		IsSharing: data.IsSharing,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromUserLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		IsSharing: data.IsSharing,
		UpdatedAt: data.UpdatedAt,
	}
}
