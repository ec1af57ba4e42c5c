package model

import "time"

// Question types, matching the question_type column.
const (
	QuestionTypeText     = "text"
	QuestionTypeRadio    = "radio"
	QuestionTypeCheckbox = "checkbox"
)

// QuestionModel is a reusable question template, independent of any job.
// OrderIndex drives display order and is assigned on create.
type QuestionModel struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Type       string `gorm:"size:20;not null" json:"type"`
	Text       string `gorm:"type:text;not null" json:"text"`
	OrderIndex int    `gorm:"not null;index" json:"orderIndex"`

	Options []QuestionOptionModel `gorm:"foreignKey:QuestionID" json:"options,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionOptionModel is one choice of a radio/checkbox question. Options
// exist only for choice-type questions and are replaced wholesale on edit,
// so their ids are not stable across edits.
type QuestionOptionModel struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	QuestionID int    `gorm:"not null;index" json:"questionId"`
	Text       string `gorm:"size:255;not null" json:"text"`
}

func (QuestionOptionModel) TableName() string {
	return "question_options"
}
