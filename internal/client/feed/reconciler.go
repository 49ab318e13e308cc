package feed

import (
	"context"
	"sync"

	"github.com/ecellnce/campushub/internal/logging"
)

// Intent computes the next snapshot from the current one. It must not
// modify its input; returning an error leaves the current snapshot
// authoritative.
type Intent[T any] func(current T) (T, error)

// Reconciler owns the canonical in-memory snapshot for one collection key
// and serializes every change to it. The cycle per intent is: compute next,
// install it optimistically, broadcast, persist; on persistence failure the
// prior snapshot is restored and broadcast again, so views never keep a
// value the store refused.
//
// A single mutex both serializes intents and protects the snapshot: an
// intent that arrives while another is in flight waits and is then applied
// to the first one's result, never to a stale snapshot.
type Reconciler[T any] struct {
	name    string
	load    func(ctx context.Context) (T, error)
	persist func(ctx context.Context, snapshot T) error
	logger  logging.Logger

	mu      sync.Mutex
	current T
	loaded  bool
	subs    []func(T)
}

func NewReconciler[T any](name string, load func(ctx context.Context) (T, error), persist func(ctx context.Context, snapshot T) error, logger logging.Logger) *Reconciler[T] {
	return &Reconciler[T]{
		name:    name,
		load:    load,
		persist: persist,
		logger:  logger.With("module", "reconciler", "key", name),
	}
}

// Subscribe registers fn to receive every new canonical snapshot. Callbacks
// run on the mutating goroutine and must not call back into the reconciler.
func (r *Reconciler[T]) Subscribe(fn func(T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

// Snapshot returns the current canonical snapshot, loading it from the
// store on first access.
func (r *Reconciler[T]) Snapshot(ctx context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		var zero T
		return zero, err
	}
	return r.current, nil
}

// Refresh discards the in-memory snapshot and re-reads the store.
func (r *Reconciler[T]) Refresh(ctx context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	if err := r.ensureLoaded(ctx); err != nil {
		var zero T
		return zero, err
	}
	r.notify(r.current)
	return r.current, nil
}

// Apply runs one serialized mutation cycle. The returned snapshot is the
// canonical one after the cycle: the new value on success, the prior value
// on any failure.
func (r *Reconciler[T]) Apply(ctx context.Context, intent Intent[T]) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		var zero T
		return zero, err
	}

	prev := r.current
	next, err := intent(prev)
	if err != nil {
		// No partial update becomes visible.
		return prev, err
	}

	// Optimistic: views see the change before the write lands.
	r.current = next
	r.notify(next)

	if err := r.persist(ctx, next); err != nil {
		r.logger.Warn(ctx, "persist failed, rolling back snapshot", "error", err)
		r.current = prev
		r.notify(prev)
		return prev, err
	}

	return next, nil
}

// Replace installs an externally produced snapshot, typically from the
// remote change feed. It runs through the same lock as Apply, so pushes
// and local intents cannot interleave.
func (r *Reconciler[T]) Replace(ctx context.Context, snapshot T) error {
	_, err := r.Apply(ctx, func(T) (T, error) {
		return snapshot, nil
	})
	return err
}

func (r *Reconciler[T]) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	v, err := r.load(ctx)
	if err != nil {
		return err
	}
	r.current = v
	r.loaded = true
	return nil
}

func (r *Reconciler[T]) notify(snapshot T) {
	for _, fn := range r.subs {
		fn(snapshot)
	}
}
