package merge

import (
	"time"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

// reducer folds one event into the snapshot. It reports false when evt is not
// the concrete type registered for its kind.
type reducer func(snap *domain.Snapshot, evt domain.Event, now time.Time) bool

// Engine dispatches events to the reducer registered for their kind.
// It holds no state of its own; callers serialize access to the snapshot.
type Engine struct {
	reducers map[domain.EventKind]reducer
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used for death timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine with a reducer for every known event kind.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		reducers: map[domain.EventKind]reducer{
			domain.EventKindEquipment: typed(applyEquipment),
			domain.EventKindInventory: typed(applyInventory),
			domain.EventKindBank:      typed(applyBank),
			domain.EventKindStat:      typed(applyStats),
			domain.EventKindQuest:     typed(applyQuests),
			domain.EventKindPosition:  typed(applyPosition),
			domain.EventKindLogin:     typed(applyLogin),
			domain.EventKindLoot:      typed(applyLoot),
			domain.EventKindDeath:     typed(applyDeath),
			domain.EventKindOverhead:  typed(applyOverhead),
			domain.EventKindSkull:     typed(applySkull),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply folds evt into snap and reports whether a reducer handled it.
// Unknown kinds leave snap untouched.
func (e *Engine) Apply(snap *domain.Snapshot, evt domain.Event) bool {
	if snap == nil || domain.IsNilEvent(evt) {
		return false
	}
	fn, ok := e.reducers[evt.Kind()]
	if !ok {
		return false
	}
	return fn(snap, evt, e.now())
}

// Handles reports whether kind has a registered reducer.
func (e *Engine) Handles(kind domain.EventKind) bool {
	_, ok := e.reducers[kind]
	return ok
}

// typed adapts a reducer over a concrete event type. Both value and pointer
// forms of E are accepted. The username is stamped before the reducer runs.
func typed[E domain.Event](fn func(*domain.Snapshot, E, time.Time)) reducer {
	return func(snap *domain.Snapshot, evt domain.Event, now time.Time) bool {
		var concrete E
		switch v := any(evt).(type) {
		case E:
			concrete = v
		case *E:
			if v == nil {
				return false
			}
			concrete = *v
		default:
			return false
		}
		snap.Username = domain.StringPtr(concrete.Player())
		fn(snap, concrete, now)
		return true
	}
}
