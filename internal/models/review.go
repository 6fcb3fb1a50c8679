package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user comment on a movie. IsReported only ever moves from
// false to true; reported reviews are hidden from standard listings.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Comment    string    `gorm:"size:255;not null" json:"comment"`
	MovieID    uint      `gorm:"not null;index" json:"movie_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	IsReported bool      `gorm:"not null;default:false" json:"is_reported"`
	CreatedAt  time.Time `json:"created_at"`
	Movie      Movie     `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
}
