package model

import "time"

// FormStatus is the form lifecycle. Scores are computed at Submitted or
// later; Validated is terminal for scoring purposes.
type FormStatus string

const (
	FormDraft     FormStatus = "draft"
	FormSubmitted FormStatus = "submitted"
	FormValidated FormStatus = "validated"
)

// Form is the unit of evaluation: one actor answering one questionnaire
// for one application at one point in time.
type Form struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string     `json:"questionnaireId" bson:"questionnaireId"`
	ApplicationID   string     `json:"applicationId" bson:"applicationId"`
	EnterpriseID    string     `json:"enterpriseId" bson:"enterpriseId"`
	ActorID         string     `json:"actorId" bson:"actorId"`
	Status          FormStatus `json:"status" bson:"status"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	ValidatedAt     *time.Time `json:"validatedAt,omitempty" bson:"validatedAt,omitempty"`
}

// Scorable reports whether scores may be computed for the form's
// current lifecycle state.
func (f *Form) Scorable() bool {
	return f.Status == FormSubmitted || f.Status == FormValidated
}
