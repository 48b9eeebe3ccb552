package judge

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tableside/internal/domain"
)

// gradingSystemPrompt instructs the model to grade a trainee's answer
// against the scenario rubric.
const gradingSystemPrompt = `You are an expert restaurant trainer evaluating a trainee waiter's response to a training scenario.

Grade the response against the rubric. You must output ONLY a JSON object with these exact fields:
- score: integer 0 to 100 (overall quality of the response)
- feedback: constructive feedback that acknowledges what was done well, suggests specific improvements, gives actionable advice, and keeps a positive, encouraging tone. 2-3 sentences.
- matched_criteria: array of rubric items the response satisfied, copied verbatim from the rubric
- missed_criteria: array of rubric items the response failed to satisfy, copied verbatim from the rubric

Scoring guide:
- 90-100: handles every rubric item gracefully, professional under pressure
- 70-89: handles most rubric items, minor gaps in technique or tone
- 50-69: adequate but misses important rubric items
- 0-49: unprofessional, unsafe, or ignores the situation

Every rubric item must appear in exactly one of matched_criteria or missed_criteria.
Output ONLY the JSON object, no markdown, no explanation.`

// buildGradingPrompt renders the scenario and answer into the user turn.
func buildGradingPrompt(scenario domain.Scenario, response string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", scenario.Category.Description())
	fmt.Fprintf(&b, "Difficulty: %s\n\n", scenario.Tier)
	fmt.Fprintf(&b, "Scenario:\n%s\n\n", scenario.Prompt)
	b.WriteString("Rubric:\n")
	for _, item := range scenario.Rubric {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	fmt.Fprintf(&b, "\nTrainee's response:\n%s\n", response)
	return b.String()
}
