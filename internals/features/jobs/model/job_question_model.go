package model

import (
	"time"

	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
)

// JobQuestionModel binds one question template to one job. Rows are created
// in bulk when a job is created, snapshotting the question set that exists
// at that moment; templates added later do not attach retroactively.
type JobQuestionModel struct {
	ID         int `gorm:"primaryKey" json:"id"`
	JobID      int `gorm:"not null;uniqueIndex:idx_job_question" json:"jobId"`
	QuestionID int `gorm:"not null;uniqueIndex:idx_job_question;index" json:"questionId"`

	Question *questionModel.QuestionModel `gorm:"foreignKey:QuestionID" json:"question,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (JobQuestionModel) TableName() string {
	return "job_questions"
}
