package models

// Tag represents a game tag (e.g., "Roguelike", "Co-op").
// Names are unique by convention only.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;index" json:"name"`
}

// GameTag associates a game with a tag.
// The primary key is a composite of (GameID, TagID).
type GameTag struct {
	GameID uint `gorm:"primaryKey" json:"game_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`

	Tag Tag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE;" json:"-"`
}
