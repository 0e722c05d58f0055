package postgres

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendshipRepository implements the repository.FriendshipRepository interface.
// The social graph is written by the friendship service; this engine reads it.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// FindBetween retrieves the edge between two users, in either direction.
func (repo *friendshipRepository) FindBetween(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID, otherID, otherID, userID).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship between users")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// friendRow is the scan target for the accepted-friends join.
type friendRow struct {
	UserID      uuid.UUID
	DisplayName string
	AvatarURL   string
}

// ListAcceptedFriends retrieves the accepted friends of a user joined with
// their display profile. The user can sit on either side of the edge, so the
// friend ID is picked with a CASE expression.
func (repo *friendshipRepository) ListAcceptedFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	var rows []*friendRow

	query := `
		SELECT
			CASE WHEN f.requester_id = ? THEN f.addressee_id ELSE f.requester_id END AS user_id,
			p.display_name,
			COALESCE(p.avatar_url, '') AS avatar_url
		FROM friendships f
		JOIN user_profiles p
		  ON p.user_id = CASE WHEN f.requester_id = ? THEN f.addressee_id ELSE f.requester_id END
		WHERE (f.requester_id = ? OR f.addressee_id = ?)
		  AND f.status = ?
		ORDER BY p.display_name ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID, userID, userID, userID, entity.FriendshipAccepted.String()).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accepted friends")
	}

	friends := make([]*entity.Friend, 0, len(rows))
	for _, row := range rows {
		friends = append(friends, &entity.Friend{
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			AvatarURL:   row.AvatarURL,
		})
	}

	return friends, nil
}

// ListAcceptedFriendIDs retrieves only the IDs of a user's accepted friends.
func (repo *friendshipRepository) ListAcceptedFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := `
		SELECT CASE WHEN requester_id = ? THEN addressee_id ELSE requester_id END AS user_id
		FROM friendships
		WHERE (requester_id = ? OR addressee_id = ?)
		  AND status = ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID, userID, userID, entity.FriendshipAccepted.String()).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accepted friend IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toFriendshipDomain converts a GORM FriendshipModel to a domain Friendship entity.
func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		AddresseeID: data.AddresseeID,
		Status:      entity.FriendshipStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
