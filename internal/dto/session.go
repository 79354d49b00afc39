package dto

type NavigateRequestDTO struct {
	Page string `json:"page" example:"wallet"`
}
