package dto

type LoginRequestDTO struct {
	Email    string `json:"email" example:"asha@mail.com"`
	Password string `json:"password" example:"secret1"`
}

type SignupRequestDTO struct {
	Name     string `json:"name" example:"Asha"`
	Email    string `json:"email" example:"asha@mail.com"`
	Password string `json:"password" example:"secret1"`
}

type ResetRequestDTO struct {
	Email string `json:"email" example:"asha@mail.com"`
}
