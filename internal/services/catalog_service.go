package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moviehub-app/moviehub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrMovieNameRequired = errors.New("movie name cannot be empty")
	ErrNegativePrice     = errors.New("movie price cannot be negative")
)

// sortOrders maps public sort keys onto ORDER BY clauses. Keys outside the
// map leave the default ordering untouched, which also keeps user input out
// of the SQL string.
var sortOrders = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"name_asc":   "name ASC",
	"name_desc":  "name DESC",
}

// MovieQuery carries the validated catalog filters. All filters are
// optional and conjunctive.
type MovieQuery struct {
	Search   string
	MaxPrice *int
	Sort     string
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListMovies(q MovieQuery) ([]models.Movie, error) {
	tx := s.db.Model(&models.Movie{})

	if term := strings.TrimSpace(q.Search); term != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if order, ok := sortOrders[q.Sort]; ok {
		tx = tx.Order(order)
	}

	var movies []models.Movie
	if err := tx.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *CatalogService) GetMovie(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := s.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	return &movie, nil
}

// ListFavoriteMovies resolves a session favorite set against the catalog.
// IDs with no matching movie are silently dropped.
func (s *CatalogService) ListFavoriteMovies(favorites map[uint]struct{}) ([]models.Movie, error) {
	if len(favorites) == 0 {
		return []models.Movie{}, nil
	}

	ids := make([]uint, 0, len(favorites))
	for id := range favorites {
		ids = append(ids, id)
	}

	var movies []models.Movie
	if err := s.db.Where("id IN ?", ids).Order("name ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorite movies: %w", err)
	}
	return movies, nil
}

func (s *CatalogService) CreateMovie(name string, price int, description, imageURL string) (*models.Movie, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMovieNameRequired
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	movie := &models.Movie{
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.db.Create(movie).Error; err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

func (s *CatalogService) UpdateMovie(id uint, name string, price int, description, imageURL string) (*models.Movie, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMovieNameRequired
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	movie, err := s.GetMovie(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        name,
		"price":       price,
		"description": description,
		"image_url":   imageURL,
	}
	if err := s.db.Model(movie).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return movie, nil
}

// DeleteMovie removes a movie together with its reviews in one transaction.
func (s *CatalogService) DeleteMovie(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete movie reviews: %w", err)
		}
		result := tx.Delete(&models.Movie{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete movie: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrMovieNotFound
		}
		return nil
	})
}
