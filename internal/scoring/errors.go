package scoring

import "errors"

var (
	// ErrInvalidAnswerValue means a raw answer value is outside the
	// 1-5 ordinal scale. Upstream corruption; surfaced, not clamped.
	ErrInvalidAnswerValue = errors.New("answer value outside ordinal scale")

	// ErrInvalidWeight means a question weight is below 1.
	ErrInvalidWeight = errors.New("question weight must be positive")

	// ErrFormNotFound means the form id does not resolve.
	ErrFormNotFound = errors.New("form not found")

	// ErrFormNotScorable means the form is still a draft.
	ErrFormNotScorable = errors.New("form not submitted")

	// ErrQuestionnaireMismatch means an answer references a question
	// outside the form's questionnaire. Data integrity violation;
	// surfaced, never silently dropped.
	ErrQuestionnaireMismatch = errors.New("answer references question outside questionnaire")
)
