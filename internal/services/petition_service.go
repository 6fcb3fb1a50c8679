package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/moviehub-app/moviehub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPetitionNotFound = errors.New("petition not found")
	ErrEmptyTitle       = errors.New("petition title cannot be empty")
	ErrTitleTooLong     = errors.New("petition title must be at most 200 characters")
	ErrSelfVote         = errors.New("cannot vote on your own petition")
)

// VoteResult tells the caller whether a vote was newly stored or the
// (petition, voter) pair already existed.
type VoteResult string

const (
	VoteRecorded VoteResult = "recorded"
	AlreadyVoted VoteResult = "already_voted"
)

// RankedPetition is a petition row with its derived vote count.
type RankedPetition struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	YesCount    int64     `json:"yes_count"`
}

type PetitionService struct {
	db *gorm.DB
}

func NewPetitionService(db *gorm.DB) *PetitionService {
	return &PetitionService{db: db}
}

// ListPetitions returns all petitions ordered by vote count, ties broken by
// most recent first. When viewerID is set it also returns the set of
// petition IDs the viewer has voted on, computed with a single query.
func (s *PetitionService) ListPetitions(viewerID *uuid.UUID) ([]RankedPetition, map[uint]bool, error) {
	var petitions []RankedPetition
	err := s.db.Model(&models.Petition{}).
		Select("petitions.id, petitions.title, petitions.description, petitions.user_id, petitions.created_at, COUNT(petition_votes.id) AS yes_count").
		Joins("LEFT JOIN petition_votes ON petition_votes.petition_id = petitions.id").
		Group("petitions.id").
		Order("yes_count DESC, petitions.created_at DESC").
		Find(&petitions).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list petitions: %w", err)
	}

	voted := make(map[uint]bool)
	if viewerID != nil {
		var ids []uint
		err := s.db.Model(&models.PetitionVote{}).
			Where("user_id = ?", *viewerID).
			Pluck("petition_id", &ids).Error
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load viewer votes: %w", err)
		}
		for _, id := range ids {
			voted[id] = true
		}
	}

	return petitions, voted, nil
}

func (s *PetitionService) CreatePetition(authorID uuid.UUID, title, description string) (*models.Petition, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > 200 {
		return nil, ErrTitleTooLong
	}

	petition := &models.Petition{
		Title:       title,
		Description: description,
		UserID:      authorID,
	}
	if err := s.db.Create(petition).Error; err != nil {
		return nil, fmt.Errorf("failed to create petition: %w", err)
	}
	return petition, nil
}

// VoteYes records a single "yes" vote. The insert relies on the unique
// (petition_id, user_id) index: a duplicate, racing or not, resolves to the
// already-voted signal instead of an error.
func (s *PetitionService) VoteYes(petitionID uint, voterID uuid.UUID) (VoteResult, error) {
	var petition models.Petition
	if err := s.db.First(&petition, petitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPetitionNotFound
		}
		return "", fmt.Errorf("failed to load petition: %w", err)
	}

	if petition.UserID == voterID {
		return "", ErrSelfVote
	}

	vote := models.PetitionVote{PetitionID: petitionID, UserID: voterID}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "petition_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return AlreadyVoted, nil
		}
		return "", fmt.Errorf("failed to record vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return AlreadyVoted, nil
	}
	return VoteRecorded, nil
}
