package model

import "time"

// WorkerAssignmentModel asks for a headcount of a given position on a job.
type WorkerAssignmentModel struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	JobID           int    `gorm:"not null;index" json:"jobId"`
	Position        string `gorm:"size:255;not null" json:"position"`
	NumberOfWorkers int    `gorm:"not null" json:"numberOfWorkers"`

	Workers []WorkerModel `gorm:"foreignKey:WorkerAssignmentID" json:"workers,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (WorkerAssignmentModel) TableName() string {
	return "worker_assignments"
}

// WorkerModel is an individual filling (part of) an assignment. DBD is the
// date the background check cleared, nil while pending.
type WorkerModel struct {
	ID                 int        `gorm:"primaryKey" json:"id"`
	WorkerAssignmentID int        `gorm:"not null;index" json:"workerAssignmentId"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	Email              string     `gorm:"size:255" json:"email"`
	Phone              string     `gorm:"size:50" json:"phone"`
	DBD                *time.Time `gorm:"column:dbd" json:"dbd"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (WorkerModel) TableName() string {
	return "workers"
}
