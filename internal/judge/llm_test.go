package judge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/llm"
)

func gradingScenario() domain.Scenario {
	return domain.Scenario{
		ID:       "greeting-walkin",
		Category: domain.CategoryGreeting,
		Tier:     domain.TierBeginner,
		Prompt:   "A couple walks in without a reservation on a busy Friday night.",
		Rubric: []string{
			"greets the guests promptly",
			"checks table availability before promising anything",
		},
	}
}

func TestLLMJudge_GradesResponse(t *testing.T) {
	payload := `{"score":85,"feedback":"Warm greeting, good availability check.","matched_criteria":["greets the guests promptly"],"missed_criteria":["checks table availability before promising anything"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})

	j := NewLLMJudge(mock)
	a, err := j.Judge(context.Background(), gradingScenario(), "Good evening! Let me check what we have available for you.")

	require.NoError(t, err)
	assert.Equal(t, 85, a.Score)
	assert.Equal(t, "Warm greeting, good availability check.", a.Feedback)
	assert.Len(t, a.MatchedCriteria, 1)
	assert.Len(t, a.MissedCriteria, 1)
}

func TestLLMJudge_PromptCarriesRubric(t *testing.T) {
	payload := `{"score":70,"feedback":"ok","matched_criteria":[],"missed_criteria":[]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})

	j := NewLLMJudge(mock)
	_, err := j.Judge(context.Background(), gradingScenario(), "Hello there.")
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.NotNil(t, req.Schema)
	require.Len(t, req.Messages, 1)
	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, "greets the guests promptly")
	assert.Contains(t, prompt, "busy Friday night")
	assert.Contains(t, prompt, "Hello there.")
}

func TestLLMJudge_RejectsEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider()
	j := NewLLMJudge(mock)

	_, err := j.Judge(context.Background(), gradingScenario(), "   \n  ")

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 0, mock.CallCount())
}

func TestLLMJudge_RejectsOverlongResponse(t *testing.T) {
	mock := llm.NewMockProvider()
	j := NewLLMJudge(mock)

	_, err := j.Judge(context.Background(), gradingScenario(), strings.Repeat("a", MaxResponseLen+1))

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 0, mock.CallCount())
}

func TestLLMJudge_ProviderOutageIsTransient(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})

	j := NewLLMJudge(mock)
	_, err := j.Judge(context.Background(), gradingScenario(), "Hello.")

	var unavail *UnavailableError
	assert.ErrorAs(t, err, &unavail)
}

func TestLLMJudge_InvalidModelOutputIsTransient(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")},
	})

	j := NewLLMJudge(mock)
	_, err := j.Judge(context.Background(), gradingScenario(), "Hello.")

	var unavail *UnavailableError
	assert.ErrorAs(t, err, &unavail)
}

func TestLLMJudge_OutOfRangeScoreIsTransient(t *testing.T) {
	payload := `{"score":150,"feedback":"x","matched_criteria":[],"missed_criteria":[]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})

	j := NewLLMJudge(mock)
	_, err := j.Judge(context.Background(), gradingScenario(), "Hello.")

	var unavail *UnavailableError
	assert.ErrorAs(t, err, &unavail)
}

func TestLLMJudge_ContextCancelPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})

	j := NewLLMJudge(mock)
	_, err := j.Judge(context.Background(), gradingScenario(), "Hello.")

	assert.ErrorIs(t, err, context.Canceled)
	var unavail *UnavailableError
	assert.False(t, errors.As(err, &unavail))
}

func TestScriptedJudge_FIFO(t *testing.T) {
	j := NewScriptedJudge(Scored(90), Scored(40))

	a1, err := j.Judge(context.Background(), gradingScenario(), "first")
	require.NoError(t, err)
	a2, err := j.Judge(context.Background(), gradingScenario(), "second")
	require.NoError(t, err)

	assert.Equal(t, 90, a1.Score)
	assert.Equal(t, 40, a2.Score)
	assert.Equal(t, 2, j.Calls)
}

func TestScriptedJudge_EmptyQueueUnavailable(t *testing.T) {
	j := NewScriptedJudge()

	_, err := j.Judge(context.Background(), gradingScenario(), "hello")

	var unavail *UnavailableError
	assert.ErrorAs(t, err, &unavail)
}
