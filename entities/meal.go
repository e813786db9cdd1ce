package entities

import (
	"github.com/google/uuid"
)

// Meal is one logged meal. CreatedAt is assigned on insert and never rewritten.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
