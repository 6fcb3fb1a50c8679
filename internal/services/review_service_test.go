package services

import (
	"strings"
	"testing"
	"time"

	"github.com/moviehub-app/moviehub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRejectsBlankComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	user := createTestUser(t, db, "author@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	for _, comment := range []string{"", "   ", "\t\n "} {
		_, err := svc.CreateReview(movie.ID, user.ID, comment)
		assert.ErrorIs(t, err, ErrEmptyComment, "comment=%q", comment)
	}
}

func TestCreateReviewRejectsOverlongComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	user := createTestUser(t, db, "author@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	_, err := svc.CreateReview(movie.ID, user.ID, strings.Repeat("a", 256))
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestCreateReviewStoresRawText(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	user := createTestUser(t, db, "author@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	// Trimming applies to validation only, not to storage.
	review, err := svc.CreateReview(movie.ID, user.ID, "  loved it  ")
	require.NoError(t, err)
	assert.Equal(t, "  loved it  ", review.Comment)
	assert.False(t, review.IsReported)

	var stored models.Review
	require.NoError(t, db.First(&stored, review.ID).Error)
	assert.Equal(t, "  loved it  ", stored.Comment)
}

func TestCreateReviewMovieMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	user := createTestUser(t, db, "author@example.com")

	_, err := svc.CreateReview(99, user.ID, "nice")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestListVisibleReviewsHidesReported(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	reporter := createTestUser(t, db, "reporter@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	first, err := svc.CreateReview(movie.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = svc.CreateReview(movie.ID, author.ID, "second")
	require.NoError(t, err)

	_, err = svc.ReportReview(movie.ID, first.ID, reporter.ID)
	require.NoError(t, err)

	visible, err := svc.ListVisibleReviews(movie.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "second", visible[0].Comment)
	for _, r := range visible {
		assert.False(t, r.IsReported)
	}
}

func TestEditReviewOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	other := createTestUser(t, db, "other@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	review, err := svc.CreateReview(movie.ID, author.ID, "original")
	require.NoError(t, err)

	_, err = svc.EditReview(review.ID, other.ID, "hijacked")
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	_, err = svc.EditReview(review.ID, author.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = svc.EditReview(999, author.ID, "whatever")
	assert.ErrorIs(t, err, ErrReviewNotFound)

	edited, err := svc.EditReview(review.ID, author.ID, "updated")
	require.NoError(t, err)
	assert.Equal(t, "updated", edited.Comment)

	var stored models.Review
	require.NoError(t, db.First(&stored, review.ID).Error)
	assert.Equal(t, "updated", stored.Comment)
	assert.WithinDuration(t, review.CreatedAt, stored.CreatedAt, time.Second)
}

func TestEditReviewAllowedAfterReportKeepsFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	reporter := createTestUser(t, db, "reporter@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	review, err := svc.CreateReview(movie.ID, author.ID, "rude comment")
	require.NoError(t, err)
	_, err = svc.ReportReview(movie.ID, review.ID, reporter.ID)
	require.NoError(t, err)

	_, err = svc.EditReview(review.ID, author.ID, "polite comment")
	require.NoError(t, err)

	var stored models.Review
	require.NoError(t, db.First(&stored, review.ID).Error)
	assert.Equal(t, "polite comment", stored.Comment)
	assert.True(t, stored.IsReported)
}

func TestDeleteReviewEnforcesOwnershipViaLookup(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	other := createTestUser(t, db, "other@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	review, err := svc.CreateReview(movie.ID, author.ID, "mine")
	require.NoError(t, err)

	// A non-owner sees not-found, not permission-denied.
	assert.ErrorIs(t, svc.DeleteReview(review.ID, other.ID), ErrReviewNotFound)

	require.NoError(t, svc.DeleteReview(review.ID, author.ID))
	assert.ErrorIs(t, svc.DeleteReview(review.ID, author.ID), ErrReviewNotFound)
}

func TestReportReviewSignalsAndSelfReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	reporter := createTestUser(t, db, "reporter@example.com")
	second := createTestUser(t, db, "second@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)

	review, err := svc.CreateReview(movie.ID, author.ID, "spam")
	require.NoError(t, err)

	// Self-report is forbidden and never flips the flag.
	_, err = svc.ReportReview(movie.ID, review.ID, author.ID)
	assert.ErrorIs(t, err, ErrSelfReport)

	var stored models.Review
	require.NoError(t, db.First(&stored, review.ID).Error)
	assert.False(t, stored.IsReported)

	result, err := svc.ReportReview(movie.ID, review.ID, reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, ReportedNow, result)

	result, err = svc.ReportReview(movie.ID, review.ID, reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyReported, result)

	result, err = svc.ReportReview(movie.ID, review.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyReported, result)
}

func TestReportReviewRequiresMatchingMovie(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	author := createTestUser(t, db, "author@example.com")
	reporter := createTestUser(t, db, "reporter@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)
	otherMovie := createTestMovie(t, db, "Alien", 500)

	review, err := svc.CreateReview(movie.ID, author.ID, "spam")
	require.NoError(t, err)

	_, err = svc.ReportReview(otherMovie.ID, review.ID, reporter.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
