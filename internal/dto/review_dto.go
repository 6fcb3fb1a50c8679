package dto

type CreateReviewRequest struct {
	Comment string `json:"comment"`
}

type EditReviewRequest struct {
	Comment string `json:"comment"`
}
