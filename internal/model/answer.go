package model

import "time"

// Answer scale bounds. The ordinal scale is fixed; rescaling it means
// touching scoring.Contribution, nothing else.
const (
	MinAnswerValue = 1
	MaxAnswerValue = 5
)

// Answer references exactly one question within one form and carries a
// raw value on the fixed 1-5 ordinal scale.
type Answer struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	FormID     string    `json:"formId" bson:"formId"`
	QuestionID string    `json:"questionId" bson:"questionId"`
	Value      int       `json:"value" bson:"value"`
	Commentary string    `json:"commentary,omitempty" bson:"commentary,omitempty"`
	AnsweredAt time.Time `json:"answeredAt" bson:"answeredAt"`
}
