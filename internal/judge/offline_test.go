package judge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tableside/internal/domain"
)

func offlineScenario() domain.Scenario {
	return domain.Scenario{
		ID:       "greet-basic",
		Category: domain.CategoryGreeting,
		Tier:     domain.TierBeginner,
		Prompt:   "A couple walks in at 7pm on a busy Friday. Greet them.",
		Rubric: []string{
			"Offers a warm welcome",
			"Asks about a reservation",
			"Mentions the expected wait",
		},
	}
}

func TestOfflineJudge_FullCoverageScoresHigh(t *testing.T) {
	j := NewOfflineJudge()

	response := "Good evening and a very warm welcome to you both! Do you have a " +
		"reservation with us tonight? If not, the expected wait for a table is " +
		"about fifteen minutes, and you are welcome to wait at the bar."
	got, err := j.Judge(context.Background(), offlineScenario(), response)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Score, 80)
	assert.Len(t, got.MatchedCriteria, 3)
	assert.Empty(t, got.MissedCriteria)
	require.NoError(t, got.Validate())
}

func TestOfflineJudge_PartialCoverageReportsMissed(t *testing.T) {
	j := NewOfflineJudge()

	got, err := j.Judge(context.Background(), offlineScenario(),
		"Warm welcome to you! Right this way please.")

	require.NoError(t, err)
	assert.Contains(t, got.MatchedCriteria, "Offers a warm welcome")
	assert.Contains(t, got.MissedCriteria, "Asks about a reservation")
	assert.Less(t, got.Score, 60)
}

func TestOfflineJudge_Deterministic(t *testing.T) {
	j := NewOfflineJudge()
	response := "Welcome in! Do you have a reservation?"

	first, err := j.Judge(context.Background(), offlineScenario(), response)
	require.NoError(t, err)
	second, err := j.Judge(context.Background(), offlineScenario(), response)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOfflineJudge_NoRubricScoresOnSubstance(t *testing.T) {
	j := NewOfflineJudge()
	s := offlineScenario()
	s.Rubric = nil

	short, err := j.Judge(context.Background(), s, "Hello there.")
	require.NoError(t, err)
	long, err := j.Judge(context.Background(), s, strings.Repeat("a thorough answer with plenty of detail ", 8))
	require.NoError(t, err)

	assert.Less(t, short.Score, long.Score)
	assert.LessOrEqual(t, long.Score, 100)
}

func TestOfflineJudge_RejectsEmptyResponse(t *testing.T) {
	j := NewOfflineJudge()

	_, err := j.Judge(context.Background(), offlineScenario(), "   ")

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
}
