package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a user's vote on a game. There is at most one row per (game, user).
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_votes_game_user" json:"game_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_game_user;index" json:"user_id"`
	Value     int       `gorm:"not null;default:1" json:"value"`
	CreatedAt time.Time `json:"created_at"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;" json:"-"`
}
