package services

import (
	"testing"

	"github.com/moviehub-app/moviehub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, svc *CatalogService) {
	t.Helper()
	for _, m := range []struct {
		name  string
		price int
	}{
		{"Dune", 1000},
		{"Alien", 500},
		{"Blade Runner", 1500},
		{"The Godfather", 800},
	} {
		_, err := svc.CreateMovie(m.name, m.price, "", "")
		require.NoError(t, err)
	}
}

func movieNames(movies []models.Movie) []string {
	names := make([]string, len(movies))
	for i, m := range movies {
		names[i] = m.Name
	}
	return names
}

func TestListMoviesSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	seedCatalog(t, svc)

	movies, err := svc.ListMovies(MovieQuery{Search: "dUn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune"}, movieNames(movies))

	movies, err = svc.ListMovies(MovieQuery{Search: "e"})
	require.NoError(t, err)
	assert.Len(t, movies, 4)
}

func TestListMoviesMaxPriceFilter(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	seedCatalog(t, svc)

	maxPrice := 800
	movies, err := svc.ListMovies(MovieQuery{MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alien", "The Godfather"}, movieNames(movies))

	for _, m := range movies {
		assert.LessOrEqual(t, m.Price, maxPrice)
	}
}

func TestListMoviesFiltersAreConjunctive(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	seedCatalog(t, svc)

	maxPrice := 900
	movies, err := svc.ListMovies(MovieQuery{Search: "e", MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alien", "The Godfather"}, movieNames(movies))
}

func TestListMoviesSortOrders(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	seedCatalog(t, svc)

	cases := map[string][]string{
		"price_asc":  {"Alien", "The Godfather", "Dune", "Blade Runner"},
		"price_desc": {"Blade Runner", "Dune", "The Godfather", "Alien"},
		"name_asc":   {"Alien", "Blade Runner", "Dune", "The Godfather"},
		"name_desc":  {"The Godfather", "Dune", "Blade Runner", "Alien"},
	}
	for sort, want := range cases {
		movies, err := svc.ListMovies(MovieQuery{Sort: sort})
		require.NoError(t, err)
		assert.Equal(t, want, movieNames(movies), "sort=%s", sort)
	}
}

func TestListMoviesUnknownSortReturnsEverything(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	seedCatalog(t, svc)

	movies, err := svc.ListMovies(MovieQuery{Sort: "rating_desc"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dune", "Alien", "Blade Runner", "The Godfather"}, movieNames(movies))
}

func TestGetMovieNotFound(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))

	_, err := svc.GetMovie(42)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCreateMovieValidation(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))

	_, err := svc.CreateMovie("   ", 100, "", "")
	assert.ErrorIs(t, err, ErrMovieNameRequired)

	_, err = svc.CreateMovie("Dune", -1, "", "")
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestDeleteMovieCascadesReviews(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	reviews := NewReviewService(db)

	user := createTestUser(t, db, "viewer@example.com")
	movie := createTestMovie(t, db, "Dune", 1000)
	_, err := reviews.CreateReview(movie.ID, user.ID, "great")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteMovie(movie.ID))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("movie_id = ?", movie.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, catalog.DeleteMovie(movie.ID), ErrMovieNotFound)
}
