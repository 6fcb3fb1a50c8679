package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/moviehub-app/moviehub-backend/internal/dto"
	"github.com/moviehub-app/moviehub-backend/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List serves the catalog with optional search, max_price and sort query
// params. A max_price that is not an integer is rejected outright rather
// than silently dropped, so caller bugs stay visible.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	query := services.MovieQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "max_price must be an integer",
			})
		}
		query.MaxPrice = &maxPrice
	}

	movies, err := h.catalogService.ListMovies(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list movies",
		})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"movies": movies}})
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid movie ID",
		})
	}

	movie, err := h.catalogService.GetMovie(movieID)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load movie",
		})
	}

	return c.JSON(movie)
}

// --- Admin handlers ---

func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var req dto.MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	movie, err := h.catalogService.CreateMovie(req.Name, req.Price, req.Description, req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid movie ID",
		})
	}

	var req dto.MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	movie, err := h.catalogService.UpdateMovie(movieID, req.Name, req.Price, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(movie)
}

func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid movie ID",
		})
	}

	if err := h.catalogService.DeleteMovie(movieID); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete movie",
		})
	}

	return c.JSON(fiber.Map{"message": "Movie deleted"})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
