package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerModel "github.com/lgwakano/workflow-api/internals/features/customers/model"
)

// JobModel is a work order. Besides the surrogate key it carries an
// immutable UUID assigned once at creation; external clients may refer to
// a job by either.
type JobModel struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	UUID        string     `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Deadline    *time.Time `json:"deadline"`
	CustomerID  int        `gorm:"not null;index" json:"customerId"`

	Customer *customerModel.CustomerModel `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (JobModel) TableName() string {
	return "jobs"
}

// BeforeCreate assigns the external reference. It is never regenerated:
// updates go through field-level saves that do not touch the uuid column.
func (j *JobModel) BeforeCreate(tx *gorm.DB) error {
	if j.UUID == "" {
		j.UUID = uuid.NewString()
	}
	return nil
}
