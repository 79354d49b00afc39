package dto

type CategoryRequestDTO struct {
	Tab string `json:"tab" example:"Games"`
}

type SortRequestDTO struct {
	Mode string `json:"mode" example:"h-l"`
}
