package dto

import "encoding/json"

// AnswerValues accepts either a JSON string or a JSON array of strings; a
// scalar is normalized to a one-element list so every answer stores the
// same shape.
type AnswerValues []string

func (v *AnswerValues) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		var values []string
		if err := json.Unmarshal(b, &values); err != nil {
			return err
		}
		*v = values
		return nil
	}
	var value string
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}
	*v = AnswerValues{value}
	return nil
}

type AnswerCreateRequest struct {
	QuestionID int          `json:"questionId" validate:"required,gt=0"`
	Answer     AnswerValues `json:"answer" validate:"required,min=1"`
}

type AnswerUpdateRequest struct {
	Answer AnswerValues `json:"answer" validate:"required,min=1"`
}
