package dto

type CreatePetitionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
