package models

import (
	"time"

	"github.com/google/uuid"
)

// Petition is a user proposal that other users can cast a single "yes"
// vote on. The vote count is always derived from petition_votes.
type Petition struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

// PetitionVote records one "yes". The composite unique index is the source
// of truth for the one-vote-per-user rule, including under concurrent
// duplicate inserts.
type PetitionVote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PetitionID uint      `gorm:"not null;uniqueIndex:idx_petition_votes_petition_user" json:"petition_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_petition_votes_petition_user" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	Petition   Petition  `gorm:"foreignKey:PetitionID;constraint:OnDelete:CASCADE" json:"-"`
}
