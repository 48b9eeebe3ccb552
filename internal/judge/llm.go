package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/llm"
)

// LLMJudge grades trainee responses with a language model. The provider is
// expected to enforce the assessment schema; anything that slips through is
// still validated here before it becomes session state.
type LLMJudge struct {
	provider llm.Provider
}

// NewLLMJudge creates a Judge backed by the given provider.
func NewLLMJudge(provider llm.Provider) *LLMJudge {
	return &LLMJudge{provider: provider}
}

func (j *LLMJudge) Judge(ctx context.Context, scenario domain.Scenario, response string) (domain.Assessment, error) {
	if err := checkResponse(response); err != nil {
		return domain.Assessment{}, err
	}
	if err := scenario.Validate(); err != nil {
		return domain.Assessment{}, &RejectedError{Reason: fmt.Sprintf("invalid scenario: %v", err)}
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingPrompt(scenario, response)},
		},
		Schema:      assessmentSchema,
		MaxTokens:   600,
		Temperature: 0.2,
	})
	if err != nil {
		return domain.Assessment{}, mapProviderError(err)
	}

	var payload assessmentPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return domain.Assessment{}, &UnavailableError{
			Err: fmt.Errorf("decoding assessment: %w", err),
		}
	}

	assessment := domain.Assessment{
		Score:           payload.Score,
		Feedback:        payload.Feedback,
		MatchedCriteria: payload.MatchedCriteria,
		MissedCriteria:  payload.MissedCriteria,
	}
	if err := assessment.Validate(); err != nil {
		return domain.Assessment{}, &UnavailableError{
			Err: fmt.Errorf("assessment failed validation: %w", err),
		}
	}
	return assessment, nil
}

// mapProviderError translates provider failures into the judge taxonomy.
// Everything from the provider side is transient from the caller's point of
// view; only precondition failures are permanent.
func mapProviderError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &UnavailableError{Err: err}
}
