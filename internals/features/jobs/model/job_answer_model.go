package model

import (
	"time"

	"gorm.io/datatypes"

	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
)

// JobAnswerModel records a job's answer to a question. Values are always a
// list of strings: scalar answers arrive wrapped in a one-element list so
// checkbox answers need no special casing. Multiple rows may exist for the
// same (job, question) pair; the current answer is the row with the highest
// id.
type JobAnswerModel struct {
	ID         int                         `gorm:"primaryKey" json:"id"`
	JobID      int                         `gorm:"not null;index:idx_answer_pair" json:"jobId"`
	QuestionID int                         `gorm:"not null;index:idx_answer_pair" json:"questionId"`
	Answer     datatypes.JSONSlice[string] `gorm:"not null" json:"answer"`

	Job      *JobModel                    `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Question *questionModel.QuestionModel `gorm:"foreignKey:QuestionID" json:"question,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (JobAnswerModel) TableName() string {
	return "job_answers"
}
