package handlers

import (
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/gofiber/fiber/v2"
	"github.com/moviehub-app/moviehub-backend/internal/dto"
	"github.com/moviehub-app/moviehub-backend/internal/services"
	"github.com/moviehub-app/moviehub-backend/internal/session"
)

// FavoritesHandler serves the session-scoped favorites list. No account is
// needed; the set is keyed to the visitor's session cookie.
type FavoritesHandler struct {
	catalogService *services.CatalogService
	store          *fibersession.Store
}

func NewFavoritesHandler(catalogService *services.CatalogService, store *fibersession.Store) *FavoritesHandler {
	return &FavoritesHandler{catalogService: catalogService, store: store}
}

func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid movie ID",
		})
	}

	// The movie must exist before it can be favorited.
	if _, err := h.catalogService.GetMovie(movieID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "movie not found",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Session unavailable",
		})
	}

	favorites, action := services.ToggleFavorite(session.Favorites(sess), movieID)
	session.SaveFavorites(sess, favorites)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save session",
		})
	}

	return c.JSON(fiber.Map{"result": action, "movie_id": movieID})
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Session unavailable",
		})
	}

	movies, err := h.catalogService.ListFavoriteMovies(session.Favorites(sess))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list favorites",
		})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"movies": movies}})
}
