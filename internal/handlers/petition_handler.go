package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moviehub-app/moviehub-backend/internal/config"
	"github.com/moviehub-app/moviehub-backend/internal/dto"
	"github.com/moviehub-app/moviehub-backend/internal/middleware"
	"github.com/moviehub-app/moviehub-backend/internal/services"
)

type PetitionHandler struct {
	petitionService *services.PetitionService
	cfg             *config.Config
}

func NewPetitionHandler(petitionService *services.PetitionService, cfg *config.Config) *PetitionHandler {
	return &PetitionHandler{petitionService: petitionService, cfg: cfg}
}

// List is public. Signed-in viewers additionally get the IDs of petitions
// they already voted on, so the UI can disable those buttons.
func (h *PetitionHandler) List(c *fiber.Ctx) error {
	var viewerID *uuid.UUID
	if id, ok := middleware.OptionalUserID(c, h.cfg); ok {
		viewerID = &id
	}

	petitions, voted, err := h.petitionService.ListPetitions(viewerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list petitions",
		})
	}

	votedIDs := make([]uint, 0, len(voted))
	for id := range voted {
		votedIDs = append(votedIDs, id)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"petitions": petitions,
		"voted_ids": votedIDs,
	}})
}

func (h *PetitionHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	petition, err := h.petitionService.CreatePetition(userID, req.Title, req.Description)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(petition)
}

func (h *PetitionHandler) Vote(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	petitionID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid petition ID",
		})
	}

	result, err := h.petitionService.VoteYes(petitionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetitionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSelfVote):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to record vote",
			})
		}
	}

	return c.JSON(fiber.Map{"result": result})
}
