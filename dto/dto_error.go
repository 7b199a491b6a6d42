package dto

type ErrorResponse struct {
	Message string `json:"message"`
}
