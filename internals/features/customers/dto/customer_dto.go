package dto

type CustomerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"max=255"`
	ContactName string `json:"contactName" validate:"max=255"`
}

type CustomerSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
