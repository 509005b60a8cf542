package model

import "time"

// ThematicScore is the (actual, maximum) pair for one thematic axis.
type ThematicScore struct {
	Score    int `json:"score" bson:"score"`
	ScoreMax int `json:"scoreMax" bson:"scoreMax"`
}

// Analysis is a persisted score snapshot for one form on one calendar
// day. Invariant: 0 <= ScoreGlobal <= ScoreMax. At most one row per
// (form, date); later writes overwrite via upsert.
type Analysis struct {
	ID            string                   `json:"id" bson:"_id,omitempty"`
	FormID        string                   `json:"formId" bson:"formId"`
	ApplicationID string                   `json:"applicationId" bson:"applicationId"`
	EnterpriseID  string                   `json:"enterpriseId" bson:"enterpriseId"`
	ActorID       string                   `json:"actorId" bson:"actorId"`
	Date          time.Time                `json:"date" bson:"date"`
	ScoreGlobal   int                      `json:"scoreGlobal" bson:"scoreGlobal"`
	ScoreMax      int                      `json:"scoreMax" bson:"scoreMax"`
	Thematiques   map[string]ThematicScore `json:"thematiques,omitempty" bson:"thematiques,omitempty"`
}

// HistoricalScore is one enterprise-level history row: the arithmetic
// mean of all same-day analyses across the enterprise's applications.
type HistoricalScore struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	EnterpriseID string    `json:"enterpriseId" bson:"enterpriseId"`
	Date         time.Time `json:"date" bson:"date"`
	ScoreGlobal  float64   `json:"scoreGlobal" bson:"scoreGlobal"`
	ScoreMax     float64   `json:"scoreMax" bson:"scoreMax"`
}
