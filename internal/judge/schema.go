package judge

import "github.com/alexanderramin/tableside/internal/llm"

// assessmentSchema constrains the grader's output so malformed replies are
// caught at the provider layer instead of leaking into session state.
var assessmentSchema = &llm.Schema{
	Name:        "waiter-assessment",
	Description: "Scored evaluation of a trainee waiter's response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"feedback": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"matched_criteria": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"missed_criteria": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"score", "feedback", "matched_criteria", "missed_criteria"},
		"additionalProperties": false,
	},
}

// assessmentPayload is the wire shape the grader must produce.
type assessmentPayload struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	MatchedCriteria []string `json:"matched_criteria"`
	MissedCriteria  []string `json:"missed_criteria"`
}
