package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tableside/internal/domain"
)

// OfflineJudge grades without a model by matching the response against the
// scenario rubric. Scores are deterministic, so it doubles as a demo mode
// when no provider is configured.
type OfflineJudge struct{}

func NewOfflineJudge() *OfflineJudge { return &OfflineJudge{} }

// rubricWeight and lengthWeight split the 0-100 scale between rubric
// coverage and answer substance.
const (
	rubricWeight = 70
	lengthWeight = 30

	// fullLengthWords is the word count at which the substance portion maxes out.
	fullLengthWords = 40
)

func (o *OfflineJudge) Judge(ctx context.Context, scenario domain.Scenario, response string) (domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Assessment{}, err
	}
	if err := checkResponse(response); err != nil {
		return domain.Assessment{}, err
	}
	if err := scenario.Validate(); err != nil {
		return domain.Assessment{}, &RejectedError{Reason: err.Error()}
	}

	words := strings.Fields(strings.ToLower(response))
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,!?;:\"'()")] = true
	}

	var matched, missed []string
	for _, item := range scenario.Rubric {
		if rubricItemCovered(item, present) {
			matched = append(matched, item)
		} else {
			missed = append(missed, item)
		}
	}

	score := substanceScore(len(words))
	switch {
	case len(scenario.Rubric) == 0:
		// Nothing to match against; substance carries the whole scale.
		score = score * 100 / lengthWeight
		if score > 100 {
			score = 100
		}
	default:
		score += rubricWeight * len(matched) / len(scenario.Rubric)
	}

	return domain.Assessment{
		Score:           score,
		Feedback:        offlineFeedback(len(matched), len(scenario.Rubric), len(words)),
		MatchedCriteria: matched,
		MissedCriteria:  missed,
	}, nil
}

// rubricItemCovered reports whether at least half of the item's significant
// words appear in the response.
func rubricItemCovered(item string, present map[string]bool) bool {
	significant := 0
	hits := 0
	for _, w := range strings.Fields(strings.ToLower(item)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if len(w) <= 3 {
			continue
		}
		significant++
		if present[w] {
			hits++
		}
	}
	if significant == 0 {
		return false
	}
	return hits*2 >= significant
}

func substanceScore(wordCount int) int {
	if wordCount >= fullLengthWords {
		return lengthWeight
	}
	return lengthWeight * wordCount / fullLengthWords
}

func offlineFeedback(matched, total, words int) string {
	if total == 0 {
		return fmt.Sprintf("Scored on substance alone (%d words); this scenario has no rubric.", words)
	}
	if matched == total {
		return "Your answer touched every point the rubric looks for. Keep that level of detail."
	}
	if matched == 0 {
		return "Your answer did not address the rubric points. Reread the scenario and cover them explicitly."
	}
	return fmt.Sprintf("You covered %d of %d rubric points. Work the missed ones into your answer.", matched, total)
}
