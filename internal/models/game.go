package models

import "time"

// Game represents a game placed on the tier list.
type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	SteamID   *int64    `gorm:"column:steam_id" json:"steam_id"`
	ImageURL  *string   `gorm:"column:image_url;size:1024" json:"image_url"`
	TierID    uint      `gorm:"not null;default:1;index" json:"tier_id"`
	IGLink    *string   `gorm:"column:ig_link;size:1024" json:"ig_link"`
	YTLink    *string   `gorm:"column:yt_link;size:1024" json:"yt_link"`
	// Upvotes caches count(votes where game_id = id); only ever recomputed.
	Upvotes int64 `gorm:"not null;default:0" json:"upvotes"`

	Tier     Tier      `gorm:"foreignKey:TierID" json:"-"`
	GameTags []GameTag `gorm:"foreignKey:GameID" json:"-"`
}

// DefaultTierID is used when a game is written without an explicit tier.
const DefaultTierID uint = 1
