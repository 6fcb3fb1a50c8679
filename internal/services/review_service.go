package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/moviehub-app/moviehub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("only the review author can modify it")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment must be at most 255 characters")
	ErrSelfReport     = errors.New("cannot report your own review")
)

// ReportResult tells the caller whether a report flipped the flag or the
// review had already been reported.
type ReportResult string

const (
	ReportedNow     ReportResult = "reported"
	AlreadyReported ReportResult = "already_reported"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// validateComment checks the trimmed text but leaves the stored value
// untouched; reviews keep exactly what the author typed.
func validateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return ErrEmptyComment
	}
	if utf8.RuneCountInString(comment) > 255 {
		return ErrCommentTooLong
	}
	return nil
}

func (s *ReviewService) CreateReview(movieID uint, authorID uuid.UUID, comment string) (*models.Review, error) {
	if err := validateComment(comment); err != nil {
		return nil, err
	}

	var movie models.Movie
	if err := s.db.First(&movie, movieID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}

	review := &models.Review{
		Comment: comment,
		MovieID: movieID,
		UserID:  authorID,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListVisibleReviews returns the movie's reviews that nobody has reported,
// oldest first.
func (s *ReviewService) ListVisibleReviews(movieID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("movie_id = ? AND is_reported = ?", movieID, false).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// EditReview replaces the comment text and nothing else. Edits stay allowed
// after a review has been reported so the author can fix the offending
// content; the reported flag is not cleared.
func (s *ReviewService) EditReview(reviewID uint, actorID uuid.UUID, comment string) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}

	if review.UserID != actorID {
		return nil, ErrNotReviewOwner
	}
	if err := validateComment(comment); err != nil {
		return nil, err
	}

	if err := s.db.Model(&review).Update("comment", comment).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	review.Comment = comment
	return &review, nil
}

// DeleteReview removes the actor's own review. Ownership is enforced by the
// same lookup that finds the row, so a foreign review reads as not found.
func (s *ReviewService) DeleteReview(reviewID uint, actorID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", reviewID, actorID).Delete(&models.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// ReportReview hides a review from standard listings. Reporting is
// idempotent: only the first call flips the flag, later calls get the
// already-reported signal. Authors cannot report their own reviews.
func (s *ReviewService) ReportReview(movieID, reviewID uint, actorID uuid.UUID) (ReportResult, error) {
	var review models.Review
	if err := s.db.Where("id = ? AND movie_id = ?", reviewID, movieID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrReviewNotFound
		}
		return "", fmt.Errorf("failed to load review: %w", err)
	}

	if review.UserID == actorID {
		return "", ErrSelfReport
	}
	if review.IsReported {
		return AlreadyReported, nil
	}

	if err := s.db.Model(&review).Update("is_reported", true).Error; err != nil {
		return "", fmt.Errorf("failed to report review: %w", err)
	}
	return ReportedNow, nil
}
