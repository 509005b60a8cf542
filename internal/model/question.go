package model

import "time"

// Thematic is a named axis (e.g. "Securite", "Gouvernance") under which
// questions are grouped for sub-scoring.
type Thematic struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Question belongs to exactly one thematic axis and carries an integer
// weight (ponderation) >= 1. Questions are immutable once answers
// reference them.
type Question struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string    `json:"questionnaireId" bson:"questionnaireId"`
	ThematicID      string    `json:"thematicId" bson:"thematicId"`
	ThematicName    string    `json:"thematicName" bson:"thematicName"`
	Text            string    `json:"text" bson:"text"`
	Ponderation     int       `json:"ponderation" bson:"ponderation"`
	Ordre           int       `json:"ordre" bson:"ordre"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// Questionnaire is a versioned set of questions evaluated as a unit.
type Questionnaire struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Version   string    `json:"version" bson:"version"`
	Thematics []string  `json:"thematics" bson:"thematics"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
