package database

import (
	"context"
	"errors"
	"fmt"

	"tierlist/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the typed client for the remote relational store. Each method
// issues its statements exactly once; nothing is cached or retried.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GameFields are the admin-editable columns of a game.
type GameFields struct {
	Name     string
	SteamID  *int64
	ImageURL *string
	TierID   uint
	IGLink   *string
	YTLink   *string
}

// region --- Reads ---

// ListGames returns every game with its tier and tags, ordered by tier
// reference and then storage order.
func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Preload("Tier").
		Preload("GameTags.Tag").
		Order("tier_id").Order("id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// ListTiers returns all tiers by rank order.
func (s *Store) ListTiers(ctx context.Context) ([]models.Tier, error) {
	var tiers []models.Tier
	if err := s.db.WithContext(ctx).Order("rank_order").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	return tiers, nil
}

// ListTags returns all tags alphabetically.
func (s *Store) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ProfileRole returns the role stored for userID.
func (s *Store) ProfileRole(ctx context.Context, userID uuid.UUID) (string, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Select("role").Where("id = ?", userID).Take(&profile).Error; err != nil {
		return "", wrap("get profile", err)
	}
	return profile.Role, nil
}

// UserVotes maps game id to the value of userID's vote on it.
func (s *Store) UserVotes(ctx context.Context, userID uuid.UUID) (map[uint]int, error) {
	var votes []models.Vote
	err := s.db.WithContext(ctx).
		Select("game_id", "value").
		Where("user_id = ?", userID).
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	result := make(map[uint]int, len(votes))
	for _, v := range votes {
		result[v.GameID] = v.Value
	}
	return result, nil
}

// endregion

// region --- Games ---

// UpdateGameTier moves a game to another tier.
func (s *Store) UpdateGameTier(ctx context.Context, gameID, tierID uint) error {
	result := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("tier_id", tierID)
	if result.Error != nil {
		return fmt.Errorf("update tier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateGame inserts a game and returns its id.
func (s *Store) CreateGame(ctx context.Context, fields GameFields) (uint, error) {
	game := models.Game{
		Name:     fields.Name,
		SteamID:  fields.SteamID,
		ImageURL: fields.ImageURL,
		TierID:   fields.TierID,
		IGLink:   fields.IGLink,
		YTLink:   fields.YTLink,
	}
	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return 0, fmt.Errorf("create game: %w", err)
	}
	return game.ID, nil
}

// UpdateGame overwrites the editable columns of a game. Nil optional fields
// are written as NULL.
func (s *Store) UpdateGame(ctx context.Context, gameID uint, fields GameFields) error {
	result := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]any{
			"name":      fields.Name,
			"steam_id":  nullable(fields.SteamID),
			"image_url": nullable(fields.ImageURL),
			"tier_id":   fields.TierID,
			"ig_link":   nullable(fields.IGLink),
			"yt_link":   nullable(fields.YTLink),
		})
	if result.Error != nil {
		return fmt.Errorf("update game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGame removes a game together with its tag associations and votes.
func (s *Store) DeleteGame(ctx context.Context, gameID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&models.GameTag{}).Error; err != nil {
			return fmt.Errorf("delete game tags: %w", err)
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.Vote{}).Error; err != nil {
			return fmt.Errorf("delete votes: %w", err)
		}
		result := tx.Delete(&models.Game{}, gameID)
		if result.Error != nil {
			return fmt.Errorf("delete game: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// endregion

// region --- Tags ---

// CreateTag inserts a tag and returns its id.
func (s *Store) CreateTag(ctx context.Context, name string) (uint, error) {
	tag := models.Tag{Name: name}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return 0, fmt.Errorf("create tag: %w", err)
	}
	return tag.ID, nil
}

// RenameTag changes a tag's name.
func (s *Store) RenameTag(ctx context.Context, tagID uint, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, tagID).Error; err != nil {
		return nil, wrap("get tag", err)
	}
	if err := s.db.WithContext(ctx).Model(&tag).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("rename tag: %w", err)
	}
	tag.Name = name
	return &tag, nil
}

// DeleteTag removes a tag and every association to it.
func (s *Store) DeleteTag(ctx context.Context, tagID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tagID).Delete(&models.GameTag{}).Error; err != nil {
			return fmt.Errorf("delete game tags: %w", err)
		}
		result := tx.Delete(&models.Tag{}, tagID)
		if result.Error != nil {
			return fmt.Errorf("delete tag: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// InsertGameTags bulk-inserts (gameID, tagID) associations.
func (s *Store) InsertGameTags(ctx context.Context, gameID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	if err := insertGameTags(s.db.WithContext(ctx), gameID, tagIDs); err != nil {
		return fmt.Errorf("insert game tags: %w", err)
	}
	return nil
}

// ReplaceGameTags overwrites the tag set of a game. Delete and re-insert run
// in one transaction; concurrent replacements are last-write-wins.
func (s *Store) ReplaceGameTags(ctx context.Context, gameID uint, tagIDs []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&models.GameTag{}).Error; err != nil {
			return fmt.Errorf("delete game tags: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		if err := insertGameTags(tx, gameID, tagIDs); err != nil {
			return fmt.Errorf("insert game tags: %w", err)
		}
		return nil
	})
}

func insertGameTags(db *gorm.DB, gameID uint, tagIDs []uint) error {
	rows := make([]models.GameTag, 0, len(tagIDs))
	seen := make(map[uint]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, models.GameTag{GameID: gameID, TagID: id})
	}
	return db.Create(&rows).Error
}

// endregion

// region --- Votes ---

// RecordVote applies a vote change and the upvote recount in one
// transaction. A cast vote always stores 1; removing a missing vote is not
// an error. ErrNotFound is returned when the game does not exist.
func (s *Store) RecordVote(ctx context.Context, gameID uint, userID uuid.UUID, remove bool) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.Select("id").Take(&game, gameID).Error; err != nil {
			return wrap("get game", err)
		}

		var err error
		if remove {
			err = removeVote(tx, gameID, userID)
		} else {
			err = castVote(tx, gameID, userID)
		}
		if err != nil {
			return err
		}
		count, err = recountUpvotes(tx, gameID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func castVote(db *gorm.DB, gameID uint, userID uuid.UUID) error {
	vote := models.Vote{GameID: gameID, UserID: userID, Value: 1}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&vote).Error
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

func removeVote(db *gorm.DB, gameID uint, userID uuid.UUID) error {
	err := db.Where("game_id = ? AND user_id = ?", gameID, userID).Delete(&models.Vote{}).Error
	if err != nil {
		return fmt.Errorf("remove vote: %w", err)
	}
	return nil
}

// recountUpvotes writes the exact vote count of a game to games.upvotes.
func recountUpvotes(db *gorm.DB, gameID uint) (int64, error) {
	var count int64
	if err := db.Model(&models.Vote{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	err := db.Model(&models.Game{}).Where("id = ?", gameID).Update("upvotes", count).Error
	if err != nil {
		return 0, fmt.Errorf("update upvotes: %w", err)
	}
	return count, nil
}

// endregion

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
