package models

import "github.com/google/uuid"

// RoleAdmin is the only role allowed to curate games, tiers and tags.
const RoleAdmin = "admin"

// Profile carries the application role of an identity-provider user.
// Rows are provisioned outside this service; ID matches the provider's user id.
type Profile struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role string    `gorm:"size:50;not null;default:'user';index" json:"role"`
}
