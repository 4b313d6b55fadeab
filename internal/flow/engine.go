package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/intent"
)

const DefaultTTL = 30 * time.Minute

// State is a snapshot of a user's active flow.
type State struct {
	Kind      Kind
	Step      string
	Draft     any
	UpdatedAt time.Time
}

// Engine owns the per-user flow states. Calls for the same user must be
// serialized by the caller; the engine only guards its own maps.
type Engine struct {
	mu     sync.Mutex
	flows  map[Kind]Flow
	states map[int64]State
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithTTL sets how long an idle flow survives. Zero keeps the default.
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.ttl = ttl
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		flows:  make(map[Kind]Flow),
		states: make(map[int64]State),
		ttl:    DefaultTTL,
		now:    time.Now,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Register(flows ...Flow) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, f := range flows {
		e.flows[f.kind()] = f
	}
}

// Start begins kind for the user, seeding the draft from params. A flow
// whose steps are all seeded completes right away.
func (e *Engine) Start(ctx context.Context, sess Session, kind Kind, seed intent.Params) (Result, error) {
	e.mu.Lock()
	if st, ok := e.live(sess.UserID); ok {
		e.mu.Unlock()
		return Result{Kind: st.Kind}, fmt.Errorf("%w: %s", ErrFlowAlreadyActive, st.Kind)
	}

	f, ok := e.flows[kind]
	e.mu.Unlock()

	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownFlow, kind)
	}

	t, err := f.begin(ctx, sess, seed)

	return e.commit(sess.UserID, kind, t, err)
}

// Advance feeds in to the user's active flow.
func (e *Engine) Advance(ctx context.Context, sess Session, in Input) (Result, error) {
	e.mu.Lock()
	st, ok := e.live(sess.UserID)
	f := e.flows[st.Kind]
	e.mu.Unlock()

	if !ok {
		return Result{}, ErrNoActiveFlow
	}

	if f == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownFlow, st.Kind)
	}

	t, err := f.advance(ctx, sess, st.Step, st.Draft, in)

	return e.commit(sess.UserID, st.Kind, t, err)
}

// commit stores the outcome of a transition. Rejected replies and errors
// other than a completion failure leave the state as it was.
func (e *Engine) commit(user int64, kind Kind, t transition, err error) (Result, error) {
	if err != nil && !errors.Is(err, ErrCompletionFailed) {
		return Result{Kind: kind}, err
	}

	res := Result{Kind: kind, Replies: t.replies, Done: t.done, Retry: t.retry}
	if t.retry != "" {
		return res, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if t.done {
		delete(e.states, user)
	} else {
		e.states[user] = State{Kind: kind, Step: t.step, Draft: t.draft, UpdatedAt: e.now()}
	}

	return res, err
}

// Cancel drops the user's flow. It reports whether one was active.
func (e *Engine) Cancel(user int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.live(user)
	delete(e.states, user)

	return ok
}

func (e *Engine) Active(user int64) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.live(user)
}

// live returns the user's state, evicting it when idle past the TTL.
// e.mu must be held.
func (e *Engine) live(user int64) (State, bool) {
	st, ok := e.states[user]
	if !ok {
		return State{}, false
	}

	if e.now().Sub(st.UpdatedAt) > e.ttl {
		delete(e.states, user)
		return State{}, false
	}

	return st, true
}

// Sweep evicts every state idle longer than the TTL at now.
func (e *Engine) Sweep(now time.Time) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for user, st := range e.states {
		if now.Sub(st.UpdatedAt) > e.ttl {
			delete(e.states, user)
			n++
		}
	}

	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (e *Engine) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := e.Sweep(e.now()); n > 0 {
				e.log.Info("expired idle flows", "count", n)
			}
		}
	}
}
