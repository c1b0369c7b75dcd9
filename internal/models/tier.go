package models

// Tier is a ranked bucket (S, A, B, ...) games are sorted into.
type Tier struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Label     string `gorm:"size:50;not null" json:"label"`
	RankOrder int    `gorm:"not null;index" json:"rank_order"`
}
