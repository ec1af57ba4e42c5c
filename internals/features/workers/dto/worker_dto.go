package dto

import "time"

type WorkerAssignmentRequest struct {
	JobID           int    `json:"jobId" validate:"required,gt=0"`
	Position        string `json:"position" validate:"required,max=255"`
	NumberOfWorkers int    `json:"numberOfWorkers" validate:"required,gte=1"`
}

type WorkerAssignmentUpdateRequest struct {
	Position        string         `json:"position" validate:"required,max=255"`
	NumberOfWorkers int            `json:"numberOfWorkers" validate:"required,gte=1"`
	Workers         []WorkerUpdate `json:"workers" validate:"dive"`
}

// WorkerUpdate edits an existing worker of the assignment in the same call.
type WorkerUpdate struct {
	ID    int        `json:"id" validate:"required,gt=0"`
	Name  string     `json:"name" validate:"required,max=255"`
	Email string     `json:"email" validate:"omitempty,email"`
	Phone string     `json:"phone" validate:"max=50"`
	DBD   *time.Time `json:"dbd"`
}

type WorkerRequest struct {
	WorkerAssignmentID int        `json:"workerAssignmentId" validate:"required,gt=0"`
	Name               string     `json:"name" validate:"required,max=255"`
	Email              string     `json:"email" validate:"omitempty,email"`
	Phone              string     `json:"phone" validate:"max=50"`
	DBD                *time.Time `json:"dbd"`
}
