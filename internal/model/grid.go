package model

// GridEntry maps a score range to a qualitative maturity level for one
// function ("global" or a thematic name). Ranges within one function
// must not overlap; lookup is first-containing-range-wins in Ordre
// order, a data-integrity assumption on the grid, not arbitration.
type GridEntry struct {
	ID             string  `json:"id" bson:"_id,omitempty"`
	Fonction       string  `json:"fonction" bson:"fonction"`
	ScoreMin       float64 `json:"scoreMin" bson:"scoreMin"`
	ScoreMax       float64 `json:"scoreMax" bson:"scoreMax"`
	Niveau         string  `json:"niveau" bson:"niveau"`
	Description    string  `json:"description" bson:"description"`
	Recommandation string  `json:"recommandation" bson:"recommandation"`
	Ordre          int     `json:"ordre" bson:"ordre"`
}

// Contains reports whether the score falls in [ScoreMin, ScoreMax).
func (g *GridEntry) Contains(score float64) bool {
	return score >= g.ScoreMin && score < g.ScoreMax
}
