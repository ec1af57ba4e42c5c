package dto

// QuestionRequest creates or fully replaces a question template. Options is
// the complete option set: on update the old set is dropped and recreated.
type QuestionRequest struct {
	Type    string   `json:"type" validate:"required,oneof=text radio checkbox"`
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"dive,required"`
}

type OptionResponse struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type QuestionResponse struct {
	ID         int              `json:"id"`
	Type       string           `json:"type"`
	Text       string           `json:"text"`
	OrderIndex int              `json:"orderIndex"`
	Options    []OptionResponse `json:"options"`
}
