package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecellnce/campushub/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeBackend is a load/persist pair with scriptable failures.
type fakeBackend struct {
	mu       sync.Mutex
	stored   int
	loads    int
	persists int
	loadErr  error
	saveErr  error
}

func (f *fakeBackend) load(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeBackend) persist(ctx context.Context, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persists++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = v
	return nil
}

func newCounter(b *fakeBackend) *Reconciler[int] {
	return NewReconciler("counter", b.load, b.persist, testLogger())
}

func TestSnapshot_LoadsLazilyOnce(t *testing.T) {
	b := &fakeBackend{stored: 7}
	r := newCounter(b)
	ctx := context.Background()

	v, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, b.loads, "second snapshot must not hit the store")
}

func TestApply_SuccessPersistsAndNotifies(t *testing.T) {
	b := &fakeBackend{stored: 1}
	r := newCounter(b)
	ctx := context.Background()

	var seen []int
	r.Subscribe(func(v int) { seen = append(seen, v) })

	v, err := r.Apply(ctx, func(cur int) (int, error) { return cur + 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, b.stored)
	assert.Equal(t, []int{2}, seen)
}

func TestApply_IntentError_KeepsPriorSnapshot(t *testing.T) {
	b := &fakeBackend{stored: 5}
	r := newCounter(b)
	ctx := context.Background()

	var seen []int
	r.Subscribe(func(v int) { seen = append(seen, v) })

	boom := errors.New("invalid intent")
	v, err := r.Apply(ctx, func(cur int) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 5, v, "prior snapshot stays authoritative")
	assert.Empty(t, seen, "no broadcast for a rejected intent")
	assert.Equal(t, 0, b.persists, "nothing is written")
}

func TestApply_PersistError_RollsBackAndRenotifies(t *testing.T) {
	b := &fakeBackend{stored: 5, saveErr: errors.New("disk full")}
	r := newCounter(b)
	ctx := context.Background()

	var seen []int
	r.Subscribe(func(v int) { seen = append(seen, v) })

	v, err := r.Apply(ctx, func(cur int) (int, error) { return cur + 1, nil })
	require.Error(t, err)
	assert.Equal(t, 5, v, "rollback to pre-mutation value")

	// Views saw the optimistic value, then the rollback.
	assert.Equal(t, []int{6, 5}, seen)

	cur, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, cur)
}

func TestApply_ConcurrentIntents_NoLostUpdate(t *testing.T) {
	b := &fakeBackend{stored: 0}
	r := newCounter(b)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := r.Apply(ctx, func(cur int) (int, error) { return cur + 1, nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, v, "each intent must see its predecessor's result")
	assert.Equal(t, n, b.stored)
}

func TestReplace_PersistsExternalSnapshot(t *testing.T) {
	b := &fakeBackend{stored: 1}
	r := newCounter(b)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, 42))

	v, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, b.stored)
}

func TestRefresh_RereadsStoreAndNotifies(t *testing.T) {
	b := &fakeBackend{stored: 1}
	r := newCounter(b)
	ctx := context.Background()

	_, err := r.Snapshot(ctx)
	require.NoError(t, err)

	// Another writer changed the store behind our back.
	b.mu.Lock()
	b.stored = 99
	b.mu.Unlock()

	var seen []int
	r.Subscribe(func(v int) { seen = append(seen, v) })

	v, err := r.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.Equal(t, []int{99}, seen)
}

func TestSnapshot_LoadError_Surfaced(t *testing.T) {
	b := &fakeBackend{loadErr: errors.New("db locked")}
	r := newCounter(b)

	_, err := r.Snapshot(context.Background())
	require.Error(t, err)
}
