package training

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tableside/internal/adaptive"
	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/judge"
	"github.com/alexanderramin/tableside/internal/progress"
)

// RetryPolicy bounds how often a transient judging failure is retried
// before the turn is abandoned.
type RetryPolicy struct {
	MaxAttempts int
	InitialWait time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns the standard judging retry bounds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// SessionHandle identifies a live session and carries what a presentation
// layer needs to show the first scenario.
type SessionHandle struct {
	ID        string
	LearnerID string
	Category  domain.Category
	Tier      domain.Tier
	Scenario  domain.Scenario
}

// TurnResult is what a trainee gets back after submitting a response.
type TurnResult struct {
	Assessment   domain.Assessment
	NextScenario domain.Scenario
	Tier         domain.Tier
	TurnCount    int
}

// liveSession is the in-memory state of one running session. Its mutex is
// held for the whole of a Respond or End so turns stay strictly ordered.
type liveSession struct {
	mu      sync.Mutex
	session *domain.Session
	next    domain.Scenario
	seen    map[string]bool

	// set once End has both closed the session and persisted it
	summary *domain.SessionSummary
}

// Engine orchestrates training sessions: it pairs the catalog, the judge,
// the difficulty policy and the progress store behind a three-call surface
// (Begin, Respond, End) that any presentation layer can drive.
type Engine struct {
	catalog *catalog.Catalog
	judge   judge.Judge
	store   progress.Store
	policy  adaptive.Policy
	retry   RetryPolicy
	obs     EngineObserver

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the difficulty thresholds.
func WithPolicy(p adaptive.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithRetryPolicy overrides the judging retry bounds.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(e *Engine) { e.retry = p }
}

// WithObserver attaches an operation observer.
func WithObserver(obs EngineObserver) Option {
	return func(e *Engine) {
		if obs != nil {
			e.obs = obs
		}
	}
}

// WithClock overrides the time source. Tests only.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine with the default policies.
func NewEngine(cat *catalog.Catalog, j judge.Judge, store progress.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		judge:    j,
		store:    store,
		policy:   adaptive.DefaultPolicy(),
		retry:    DefaultRetryPolicy(),
		obs:      NoopObserver{},
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		sessions: make(map[string]*liveSession),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Begin opens a session for the learner in a category. The starting tier
// is the learner's recommended tier from prior sessions, beginner for a
// learner with no record.
func (e *Engine) Begin(ctx context.Context, learnerID string, category domain.Category) (*SessionHandle, error) {
	start := e.now()

	handle, err := e.begin(ctx, learnerID, category)
	e.observe(ctx, EngineEvent{
		Op:        "begin",
		SessionID: handleID(handle),
		LearnerID: learnerID,
		Category:  string(category),
		Duration:  e.now().Sub(start),
		Success:   err == nil,
		Err:       err,
	})
	return handle, err
}

func (e *Engine) begin(ctx context.Context, learnerID string, category domain.Category) (*SessionHandle, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("learner id is required")
	}
	if _, err := domain.ParseCategory(string(category)); err != nil {
		return nil, err
	}

	rec, err := e.store.Get(ctx, learnerID, category)
	if err != nil {
		return nil, fmt.Errorf("%w: loading progress for %s/%s: %v", ErrTrainingUnavailable, learnerID, category, err)
	}
	tier := rec.RecommendedTier

	scenario, err := pickScenario(e.catalog, category, tier, nil, 0)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(e.newID(), learnerID, category, tier, e.now().UTC())

	e.mu.Lock()
	e.sessions[session.ID] = &liveSession{
		session: session,
		next:    scenario,
		seen:    make(map[string]bool),
	}
	e.mu.Unlock()

	return &SessionHandle{
		ID:        session.ID,
		LearnerID: learnerID,
		Category:  category,
		Tier:      tier,
		Scenario:  scenario,
	}, nil
}

// Respond grades the trainee's answer to the session's current scenario,
// records the turn, adjusts the difficulty tier, and selects the next
// scenario. Calls on the same session serialize; a failed judging call
// leaves the session exactly as it was.
func (e *Engine) Respond(ctx context.Context, handle *SessionHandle, text string) (*TurnResult, error) {
	start := e.now()

	result, err := e.respond(ctx, handle, text)
	event := EngineEvent{
		Op:        "respond",
		SessionID: handleID(handle),
		Duration:  e.now().Sub(start),
		Success:   err == nil,
		Err:       err,
	}
	if handle != nil {
		event.LearnerID = handle.LearnerID
		event.Category = string(handle.Category)
	}
	if result != nil {
		event.Fields = map[string]any{
			"score":      result.Assessment.Score,
			"tier":       string(result.Tier),
			"turn_index": result.TurnCount - 1,
		}
	}
	e.observe(ctx, event)
	return result, err
}

func (e *Engine) respond(ctx context.Context, handle *SessionHandle, text string) (*TurnResult, error) {
	ls, err := e.lookup(handle)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	session := ls.session
	if !session.Active() {
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionClosed)
	}

	scenario := ls.next
	assessment, err := e.judgeWithRetry(ctx, scenario, text)
	if err != nil {
		// The in-flight turn is discarded; nothing below ran.
		return nil, e.classifyJudgeError(session, err)
	}

	turn := domain.Turn{
		ID:         e.newID(),
		SessionID:  session.ID,
		Scenario:   scenario,
		Response:   text,
		Assessment: assessment,
		CreatedAt:  e.turnTime(session),
	}
	if err := session.AppendTurn(turn); err != nil {
		return nil, fmt.Errorf("session %s: %w", session.ID, err)
	}
	ls.seen[scenario.ID] = true

	session.Tier = adaptive.NextTier(session.RecentScores(e.policy.Window), session.Tier, e.policy)

	next, err := pickScenario(e.catalog, session.Category, session.Tier, ls.seen, len(session.Turns))
	if err != nil {
		// Begin proved the category has scenarios, so this is unreachable
		// unless the catalog was built empty for the tier and category.
		return nil, err
	}
	ls.next = next

	return &TurnResult{
		Assessment:   assessment,
		NextScenario: next,
		Tier:         session.Tier,
		TurnCount:    len(session.Turns),
	}, nil
}

// End closes the session, persists it together with the learner's progress
// update, and returns the summary. Idempotent: ending an ended session
// returns the identical summary without touching the store again. A
// persistence failure leaves everything in memory so End can be retried.
func (e *Engine) End(ctx context.Context, handle *SessionHandle) (domain.SessionSummary, error) {
	start := e.now()

	summary, err := e.end(ctx, handle)
	event := EngineEvent{
		Op:        "end",
		SessionID: handleID(handle),
		Duration:  e.now().Sub(start),
		Success:   err == nil,
		Err:       err,
	}
	if handle != nil {
		event.LearnerID = handle.LearnerID
		event.Category = string(handle.Category)
	}
	if err == nil {
		event.Fields = map[string]any{
			"turns":         summary.Turns,
			"average_score": summary.AverageScore,
			"final_tier":    string(summary.FinalTier),
		}
	}
	e.observe(ctx, event)
	return summary, err
}

func (e *Engine) end(ctx context.Context, handle *SessionHandle) (domain.SessionSummary, error) {
	ls, err := e.lookup(handle)
	if err != nil {
		return domain.SessionSummary{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.summary != nil {
		return *ls.summary, nil
	}

	session := ls.session
	session.Close(e.now().UTC())

	if _, err := e.store.Record(ctx, session.Clone()); err != nil {
		return domain.SessionSummary{}, fmt.Errorf("%w: recording session %s: %v", ErrTrainingUnavailable, session.ID, err)
	}

	summary := session.Summary()
	ls.summary = &summary
	return summary, nil
}

// Progress reports the learner's stored record for a category.
func (e *Engine) Progress(ctx context.Context, learnerID string, category domain.Category) (domain.ProgressRecord, error) {
	return e.store.Get(ctx, learnerID, category)
}

func (e *Engine) lookup(handle *SessionHandle) (*liveSession, error) {
	if handle == nil || handle.ID == "" {
		return nil, ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	ls, ok := e.sessions[handle.ID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", handle.ID, ErrSessionNotFound)
	}
	return ls, nil
}

// judgeWithRetry calls the judge, retrying transient failures with
// exponential backoff up to the configured attempt bound.
func (e *Engine) judgeWithRetry(ctx context.Context, scenario domain.Scenario, text string) (domain.Assessment, error) {
	var lastErr error

	for attempt := range e.retry.MaxAttempts {
		assessment, err := e.judge.Judge(ctx, scenario, text)
		if err == nil {
			return assessment, nil
		}
		lastErr = err

		var unavail *judge.UnavailableError
		if !errors.As(err, &unavail) {
			return domain.Assessment{}, err
		}
		if attempt == e.retry.MaxAttempts-1 {
			break
		}

		wait := time.Duration(float64(e.retry.InitialWait) * math.Pow(e.retry.Multiplier, float64(attempt)))
		select {
		case <-ctx.Done():
			return domain.Assessment{}, ctx.Err()
		case <-time.After(wait):
		}
	}

	return domain.Assessment{}, lastErr
}

// classifyJudgeError maps judge failures onto the engine's error surface
// with session context attached.
func (e *Engine) classifyJudgeError(session *domain.Session, err error) error {
	turnIndex := len(session.Turns)

	var rejected *judge.RejectedError
	if errors.As(err, &rejected) {
		return fmt.Errorf("%w: session %s turn %d: %s", ErrInvalidResponse, session.ID, turnIndex, rejected.Reason)
	}
	var unavail *judge.UnavailableError
	if errors.As(err, &unavail) {
		return fmt.Errorf("%w: session %s turn %d: %v", ErrTrainingUnavailable, session.ID, turnIndex, err)
	}
	// Context cancellation and anything unexpected pass through unchanged.
	return err
}

// turnTime returns a timestamp strictly after the session's last turn even
// on clocks too coarse to separate rapid submissions.
func (e *Engine) turnTime(session *domain.Session) time.Time {
	t := e.now().UTC()
	if n := len(session.Turns); n > 0 {
		if last := session.Turns[n-1].CreatedAt; !t.After(last) {
			t = last.Add(time.Microsecond)
		}
	}
	return t
}

func (e *Engine) observe(ctx context.Context, event EngineEvent) {
	e.obs.ObserveOp(ctx, event)
}

func handleID(h *SessionHandle) string {
	if h == nil {
		return ""
	}
	return h.ID
}
