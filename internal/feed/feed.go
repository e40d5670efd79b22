// Package feed implements polling subscriptions over backend truth. Each
// feed periodically fetches one piece of server state and exposes only the
// latest value; consumers receive updates through a sink callback and read
// the current snapshot on demand.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"go.uber.org/zap"
)

// Kind identifies a feed for display and invalidation purposes.
type Kind string

const (
	KindQuote     Kind = "quote"
	KindHistory   Kind = "history"
	KindAccount   Kind = "account"
	KindPositions Kind = "positions"
	KindOrders    Kind = "orders"
	KindPortfolio Kind = "portfolio"
)

// Fetch performs one poll and returns the latest value.
type Fetch[T any] func(ctx context.Context) (T, error)

// Update is delivered to the sink after every applied poll completion.
// When Err is non-nil the poll failed; Value then still carries the
// previous successful value (HasValue reports whether one exists).
type Update[T any] struct {
	Kind     Kind
	Value    T
	HasValue bool
	Err      error
}

// Subscription polls a Fetch on a fixed wall-clock interval. Polls are not
// pipelined: a tick issues a new poll regardless of whether the previous
// one completed, so completions can arrive out of order. A completion is
// only applied when no newer-issued poll has been applied already, and only
// when it belongs to the current epoch; Swap and Disable bump the epoch so
// in-flight responses for a superseded symbol are discarded on arrival.
//
// The caller owns the subscription lifetime and must call Stop exactly
// once.
type Subscription[T any] struct {
	kind     Kind
	interval time.Duration
	sink     func(Update[T])
	logger   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	stop   sync.Once

	// sinkMu serializes apply-and-deliver so updates reach the sink in
	// the order they were applied.
	sinkMu sync.Mutex

	mu         sync.Mutex
	fetch      Fetch[T]
	enabled    bool
	epoch      uint64
	issueSeq   uint64
	appliedSeq uint64
	hasValue   bool
	value      T
	lastErr    error
}

// New starts a subscription polling fetch every interval. A nil fetch
// creates the subscription disabled; Swap enables it. The first poll is
// issued immediately.
func New[T any](kind Kind, fetch Fetch[T], interval time.Duration, sink func(Update[T]), log *logger.Logger) *Subscription[T] {
	if log == nil {
		log = logger.NewNopLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Subscription[T]{
		kind:     kind,
		interval: interval,
		sink:     sink,
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
		fetch:    fetch,
		enabled:  fetch != nil,
	}

	s.spawnPoll()
	go s.run()

	return s
}

func (s *Subscription[T]) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.spawnPoll()
		}
	}
}

// spawnPoll issues one poll without waiting for earlier polls to finish.
func (s *Subscription[T]) spawnPoll() {
	s.mu.Lock()

	if !s.enabled || s.ctx.Err() != nil {
		s.mu.Unlock()

		return
	}

	epoch := s.epoch
	s.issueSeq++
	seq := s.issueSeq
	fetch := s.fetch
	s.mu.Unlock()

	go func() {
		value, err := fetch(s.ctx)
		s.apply(epoch, seq, value, err)
	}()
}

// apply installs a completed poll unless it has been superseded. The sink
// call stays inside the sinkMu critical section: without it two polls
// completing together could reach the sink newest-first and a consumer
// trusting message order would regress to stale data.
func (s *Subscription[T]) apply(epoch, seq uint64, value T, err error) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()

	s.mu.Lock()

	if s.ctx.Err() != nil || epoch != s.epoch || seq <= s.appliedSeq {
		// Superseded: a newer poll was applied, or the symbol changed,
		// or the subscription stopped while this poll was in flight.
		s.mu.Unlock()

		return
	}

	s.appliedSeq = seq

	if err != nil {
		// Keep the previous value; the next tick retries transparently.
		s.lastErr = err
	} else {
		s.value = value
		s.hasValue = true
		s.lastErr = nil
	}

	update := Update[T]{
		Kind:     s.kind,
		Value:    s.value,
		HasValue: s.hasValue,
		Err:      s.lastErr,
	}
	sink := s.sink
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("feed poll failed",
			zap.String("feed", string(s.kind)),
			zap.Error(err))
	}

	if sink != nil {
		sink(update)
	}
}

// Refresh forces an immediate out-of-band poll. Used by order submission
// to invalidate dependent views.
func (s *Subscription[T]) Refresh() {
	s.spawnPoll()
}

// Swap replaces the fetch closure, discards all cached state and in-flight
// responses, and polls immediately. Used when the active symbol changes.
func (s *Subscription[T]) Swap(fetch Fetch[T]) {
	s.mu.Lock()
	s.fetch = fetch
	s.enabled = fetch != nil
	s.epoch++

	var zero T
	s.value = zero
	s.hasValue = false
	s.lastErr = nil
	s.mu.Unlock()

	s.spawnPoll()
}

// Disable stops issuing polls and clears cached state. The subscription
// exposes "no data" until Swap re-enables it.
func (s *Subscription[T]) Disable() {
	s.Swap(nil)
}

// Snapshot returns the latest applied value, whether one exists, and the
// most recent poll error (nil after any successful poll).
func (s *Subscription[T]) Snapshot() (value T, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value, s.hasValue, s.lastErr
}

// Kind returns the feed identity.
func (s *Subscription[T]) Kind() Kind {
	return s.kind
}

// Stop ends polling and discards any in-flight responses. Safe against a
// double call, but the caller is expected to invoke it exactly once.
func (s *Subscription[T]) Stop() {
	s.stop.Do(func() {
		s.cancel()
	})
}
