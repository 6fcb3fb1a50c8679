package dto

type MovieRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
