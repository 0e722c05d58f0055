package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// ListUpcomingPublic retrieves public events starting after the given time,
// ordered by start time ascending.
func (repo *eventRepository) ListUpcomingPublic(ctx context.Context, after time.Time) ([]*entity.CommunityEvent, error) {
	var eventModels []*model.CommunityEventModel

	if err := repo.db.WithContext(ctx).
		Where("is_public = ? AND start_time > ?", true, after).
		Order("start_time ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming public events")
	}

	events := make([]*entity.CommunityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM CommunityEventModel to a domain CommunityEvent entity.
func toEventDomain(data *model.CommunityEventModel) *entity.CommunityEvent {
	if data == nil {
		return nil
	}

	return &entity.CommunityEvent{
		ID:           data.ID,
		Title:        data.Title,
		LocationText: data.LocationText,
		IsPublic:     data.IsPublic,
		StartTime:    data.StartTime,
		CreatedAt:    data.CreatedAt,
	}
}
