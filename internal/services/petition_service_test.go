package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moviehub-app/moviehub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPetition(t *testing.T, db *gorm.DB, owner uuid.UUID, title string, createdAt time.Time) models.Petition {
	t.Helper()
	petition := models.Petition{Title: title, UserID: owner, CreatedAt: createdAt}
	require.NoError(t, db.Create(&petition).Error)
	return petition
}

func TestCreatePetitionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	user := createTestUser(t, db, "author@example.com")

	_, err := svc.CreatePetition(user.ID, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreatePetition(user.ID, strings.Repeat("x", 201), "")
	assert.ErrorIs(t, err, ErrTitleTooLong)

	petition, err := svc.CreatePetition(user.ID, "More sci-fi", "")
	require.NoError(t, err)
	assert.Equal(t, "More sci-fi", petition.Title)
	assert.Equal(t, "", petition.Description)
	assert.Equal(t, user.ID, petition.UserID)
}

func TestVoteYesSelfVoteForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	owner := createTestUser(t, db, "owner@example.com")
	petition := createTestPetition(t, db, owner.ID, "Bring back intermissions", time.Now())

	_, err := svc.VoteYes(petition.ID, owner.ID)
	assert.ErrorIs(t, err, ErrSelfVote)

	var count int64
	require.NoError(t, db.Model(&models.PetitionVote{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVoteYesSignals(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	owner := createTestUser(t, db, "owner@example.com")
	voter := createTestUser(t, db, "voter@example.com")
	petition := createTestPetition(t, db, owner.ID, "Cheaper popcorn", time.Now())

	_, err := svc.VoteYes(999, voter.ID)
	assert.ErrorIs(t, err, ErrPetitionNotFound)

	result, err := svc.VoteYes(petition.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, VoteRecorded, result)

	result, err = svc.VoteYes(petition.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyVoted, result)

	var count int64
	require.NoError(t, db.Model(&models.PetitionVote{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVoteYesConcurrentDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	owner := createTestUser(t, db, "owner@example.com")
	voter := createTestUser(t, db, "voter@example.com")
	petition := createTestPetition(t, db, owner.ID, "Midnight screenings", time.Now())

	const n = 8
	results := make(chan VoteResult, n)
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.VoteYes(petition.ID, voter.ID)
			results <- result
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	recorded := 0
	for result := range results {
		if result == VoteRecorded {
			recorded++
		}
	}
	assert.Equal(t, 1, recorded, "exactly one call observes the newly-recorded signal")

	var count int64
	require.NoError(t, db.Model(&models.PetitionVote{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListPetitionsRankedByVotesThenRecency(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	owner := createTestUser(t, db, "owner@example.com")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	oldPopular := createTestPetition(t, db, owner.ID, "old popular", base)
	newQuiet := createTestPetition(t, db, owner.ID, "new quiet", base.Add(2*time.Hour))
	oldQuiet := createTestPetition(t, db, owner.ID, "old quiet", base.Add(time.Hour))

	for i := 0; i < 5; i++ {
		voter := createTestUser(t, db, uuid.NewString()+"@example.com")
		_, err := svc.VoteYes(oldPopular.ID, voter.ID)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		voter := createTestUser(t, db, uuid.NewString()+"@example.com")
		_, err := svc.VoteYes(oldQuiet.ID, voter.ID)
		require.NoError(t, err)
		_, err = svc.VoteYes(newQuiet.ID, voter.ID)
		require.NoError(t, err)
	}

	petitions, _, err := svc.ListPetitions(nil)
	require.NoError(t, err)
	require.Len(t, petitions, 3)

	// 5 votes beats 3 regardless of age; equal counts rank newer first.
	assert.Equal(t, oldPopular.ID, petitions[0].ID)
	assert.EqualValues(t, 5, petitions[0].YesCount)
	assert.Equal(t, newQuiet.ID, petitions[1].ID)
	assert.EqualValues(t, 3, petitions[1].YesCount)
	assert.Equal(t, oldQuiet.ID, petitions[2].ID)
	assert.EqualValues(t, 3, petitions[2].YesCount)
}

func TestListPetitionsReturnsViewerVotedSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	owner := createTestUser(t, db, "owner@example.com")
	viewer := createTestUser(t, db, "viewer@example.com")

	first := createTestPetition(t, db, owner.ID, "first", time.Now())
	second := createTestPetition(t, db, owner.ID, "second", time.Now())

	_, err := svc.VoteYes(first.ID, viewer.ID)
	require.NoError(t, err)

	_, voted, err := svc.ListPetitions(&viewer.ID)
	require.NoError(t, err)
	assert.True(t, voted[first.ID])
	assert.False(t, voted[second.ID])

	_, voted, err = svc.ListPetitions(nil)
	require.NoError(t, err)
	assert.Empty(t, voted)
}

func TestVoteScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewPetitionService(db)
	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")

	petition, err := svc.CreatePetition(userA.ID, "Director's cuts only", "")
	require.NoError(t, err)

	_, err = svc.VoteYes(petition.ID, userA.ID)
	assert.ErrorIs(t, err, ErrSelfVote)

	result, err := svc.VoteYes(petition.ID, userB.ID)
	require.NoError(t, err)
	assert.Equal(t, VoteRecorded, result)

	result, err = svc.VoteYes(petition.ID, userB.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyVoted, result)
}
