package judge

import (
	"context"
	"sync"

	"github.com/alexanderramin/tableside/internal/domain"
)

// ScriptedResult is one canned outcome for the ScriptedJudge.
type ScriptedResult struct {
	Assessment domain.Assessment
	Err        error
}

// ScriptedJudge returns canned results in FIFO order. It still applies the
// shared response preconditions, so tests exercise the same rejection path
// as the real grader.
type ScriptedJudge struct {
	mu      sync.Mutex
	results []ScriptedResult
	Calls   int
}

// NewScriptedJudge creates a ScriptedJudge with the given results.
func NewScriptedJudge(results ...ScriptedResult) *ScriptedJudge {
	return &ScriptedJudge{results: results}
}

// Scored is shorthand for a single passing result with the given score.
func Scored(score int) ScriptedResult {
	return ScriptedResult{Assessment: domain.Assessment{
		Score:    score,
		Feedback: "scripted feedback",
	}}
}

func (s *ScriptedJudge) Judge(ctx context.Context, scenario domain.Scenario, response string) (domain.Assessment, error) {
	if err := checkResponse(response); err != nil {
		return domain.Assessment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++

	if len(s.results) == 0 {
		return domain.Assessment{}, &UnavailableError{}
	}
	r := s.results[0]
	s.results = s.results[1:]
	if r.Err != nil {
		return domain.Assessment{}, r.Err
	}
	return r.Assessment, nil
}

// Add appends a result to the queue.
func (s *ScriptedJudge) Add(r ScriptedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}
