package progress_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/progress"
	"github.com/alexanderramin/tableside/internal/testutil"
)

func TestMemoryStore_ZeroStateForUnknown(t *testing.T) {
	store := progress.NewMemoryStore()

	rec, err := store.Get(context.Background(), "nobody", domain.CategoryGreeting)

	require.NoError(t, err)
	assert.Equal(t, 0, rec.SessionsCompleted)
	assert.Equal(t, domain.TierBeginner, rec.RecommendedTier)
}

func TestMemoryStore_RecordAccumulates(t *testing.T) {
	store := progress.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Record(ctx, closedSession("maria", 90))
	require.NoError(t, err)
	rec, err := store.Record(ctx, closedSession("maria", 50))
	require.NoError(t, err)

	assert.Equal(t, 2, rec.SessionsCompleted)
	assert.InDelta(t, 70.0, rec.AverageScore, 0.001)
}

func TestMemoryStore_ArchivesSessionCopy(t *testing.T) {
	store := progress.NewMemoryStore()

	s := closedSession("maria", 80)
	_, err := store.Record(context.Background(), s)
	require.NoError(t, err)

	archived := store.Session(s.ID)
	require.NotNil(t, archived)
	assert.Equal(t, s.ID, archived.ID)
	assert.NotSame(t, s, archived)
	assert.Len(t, archived.Turns, 1)
}

func TestMemoryStore_ConcurrentRecords(t *testing.T) {
	store := progress.NewMemoryStore()
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Record(ctx, closedSession("maria", 75)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	rec, err := store.Get(ctx, "maria", domain.CategoryGreeting)
	require.NoError(t, err)
	assert.Equal(t, n, rec.SessionsCompleted)
}

func TestMemoryStore_ListByLearnerSorted(t *testing.T) {
	store := progress.NewMemoryStore()
	ctx := context.Background()

	for _, c := range []domain.Category{domain.CategoryUpselling, domain.CategoryGreeting} {
		s := testutil.NewSession("maria", testutil.WithCategory(c))
		scenario := testutil.Scenario("s-"+string(c), c, domain.TierBeginner)
		require.NoError(t, s.AppendTurn(testutil.NewTurn(s, scenario, 80)))
		s.Close(s.StartedAt.Add(time.Minute))
		_, err := store.Record(ctx, s)
		require.NoError(t, err)
	}

	recs, err := store.ListByLearner(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.CategoryGreeting, recs[0].Category)
	assert.Equal(t, domain.CategoryUpselling, recs[1].Category)
}
