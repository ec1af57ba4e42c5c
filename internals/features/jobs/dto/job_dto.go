package dto

import (
	"time"

	customerDTO "github.com/lgwakano/workflow-api/internals/features/customers/dto"
	questionDTO "github.com/lgwakano/workflow-api/internals/features/questions/dto"
)

type JobCreateRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	CustomerID  int        `json:"customerId" validate:"required,gt=0"`
}

type JobUpdateRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	CustomerID  int        `json:"customerId" validate:"required,gt=0"`
}

type JobResponse struct {
	ID          int                          `json:"id"`
	UUID        string                       `json:"uuid"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Deadline    *time.Time                   `json:"deadline"`
	Customer    *customerDTO.CustomerSummary `json:"customer,omitempty"`
	CreatedAt   time.Time                    `json:"createdAt"`

	// Populated only when ?includeQuestions=true.
	Questions []questionDTO.QuestionResponse `json:"questions,omitempty"`
}
