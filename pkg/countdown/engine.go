package countdown

import (
	"log"
	"sync"
	"time"

	"github.com/lifetimer/lifetimer/pkg/models"
)

// TargetStore persists the single active countdown target
type TargetStore interface {
	Save(target time.Time) error
	Load() (target time.Time, ok bool, err error)
	Clear() error
}

// Listener receives countdown notifications.
// Calls happen outside the engine lock, so a listener may call back into the engine.
// Notifications are delivered one at a time, and one made stale by a later
// Start, Reset or tick is dropped rather than delivered out of order.
type Listener interface {
	OnUpdate(text string)
	OnFinished()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Update   func(text string)
	Finished func()
}

func (l ListenerFuncs) OnUpdate(text string) {
	if l.Update != nil {
		l.Update(text)
	}
}

func (l ListenerFuncs) OnFinished() {
	if l.Finished != nil {
		l.Finished()
	}
}

// DefaultTickInterval is how often the remaining time is re-evaluated
const DefaultTickInterval = time.Second

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock, mainly for tests
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTickInterval changes the tick period
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// Engine runs the idle/running/finished countdown and keeps the store in sync
type Engine struct {
	mu       sync.Mutex
	store    TargetStore
	clock    Clock
	interval time.Duration

	state  models.State
	target time.Time
	tick   Timer
	gen    uint64 // bumped whenever the tick is replaced; stale ticks compare unequal
	seq    uint64 // bumped on every state change; only the latest notification is delivered

	// subMu is taken before mu, never after
	subMu      sync.Mutex
	listeners  map[uint64]Listener
	nextSubID  uint64
	pending    []notification
	delivering bool
}

// notification is an event collected under the lock and delivered after it is released
type notification struct {
	seq      uint64
	finished bool
	text     string
}

// NewEngine creates an idle engine. Call Initialize to restore a saved countdown.
func NewEngine(store TargetStore, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		clock:     SystemClock,
		interval:  DefaultTickInterval,
		state:     models.StateIdle,
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers l and returns a func that removes it again
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextSubID
	e.nextSubID++
	e.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subMu.Lock()
			delete(e.listeners, id)
			e.subMu.Unlock()
		})
	}
}

// Initialize restores a persisted countdown, or reports an empty one
func (e *Engine) Initialize() {
	e.mu.Lock()
	e.stopTickLocked()

	target, ok, err := e.store.Load()
	if err != nil {
		log.Printf("Failed to load countdown target, discarding it: %v", err)
		if err := e.store.Clear(); err != nil {
			log.Printf("Failed to clear countdown target: %v", err)
		}
		ok = false
	}

	if !ok {
		e.target = time.Time{}
		e.state = models.StateIdle
		n := e.stampLocked(notification{text: EmptyText})
		e.mu.Unlock()
		log.Println("No saved countdown")
		e.emit(n)
		return
	}

	log.Printf("Restored countdown to %s", target.Format(time.RFC3339))
	e.target = target
	e.state = models.StateRunning
	n := e.evaluateLocked()
	if e.state == models.StateRunning {
		e.armLocked()
	}
	e.mu.Unlock()

	e.emit(n)
}

// Start counts down to years from now, replacing any running countdown.
// Invalid input returns ErrInvalidYears and changes nothing.
func (e *Engine) Start(years float64) error {
	target, err := TargetFor(e.clock.Now(), years)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTickLocked()
	if err := e.store.Save(target); err != nil {
		// The countdown still runs for this session; it just won't be restored.
		log.Printf("Failed to save countdown target: %v", err)
	}
	e.target = target
	e.state = models.StateRunning
	e.seq++
	e.armLocked()

	log.Printf("Countdown started: %v years, target %s", years, target.Format(time.RFC3339))
	return nil
}

// Reset stops the countdown and forgets the target
func (e *Engine) Reset() {
	e.mu.Lock()
	e.stopTickLocked()
	e.target = time.Time{}
	if err := e.store.Clear(); err != nil {
		log.Printf("Failed to clear countdown target: %v", err)
	}
	prev := e.state
	e.state = models.StateIdle
	n := e.stampLocked(notification{text: EmptyText})
	e.mu.Unlock()

	if prev != models.StateIdle {
		log.Printf("Countdown reset from %s", prev)
	}
	e.emit(n)
}

// Close stops ticking without touching the store, so the countdown resumes on next launch
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTickLocked()
}

// State returns the current lifecycle state
func (e *Engine) State() models.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Target returns the active target; ok is false unless running
func (e *Engine) Target() (target time.Time, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != models.StateRunning {
		return time.Time{}, false
	}
	return e.target, true
}

// Remaining returns the time left, or zero when not running
func (e *Engine) Remaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != models.StateRunning {
		return 0
	}
	if d := e.target.Sub(e.clock.Now()); d > 0 {
		return d
	}
	return 0
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.state != models.StateRunning {
		e.mu.Unlock()
		return
	}
	n := e.evaluateLocked()
	if e.state == models.StateRunning {
		e.armLocked()
	}
	e.mu.Unlock()

	e.emit(n)
}

// evaluateLocked computes the next notification. Reaching the target moves
// the engine to finished and clears the store.
func (e *Engine) evaluateLocked() notification {
	remaining := e.target.Sub(e.clock.Now())
	if remaining > 0 {
		return e.stampLocked(notification{text: FormatRemaining(remaining)})
	}

	e.stopTickLocked()
	if err := e.store.Clear(); err != nil {
		log.Printf("Failed to clear finished countdown target: %v", err)
	}
	log.Printf("Countdown finished (target %s)", e.target.Format(time.RFC3339))
	e.target = time.Time{}
	e.state = models.StateFinished
	return e.stampLocked(notification{finished: true})
}

func (e *Engine) stampLocked(n notification) notification {
	e.seq++
	n.seq = e.seq
	return n
}

// latest reports whether no state change has happened since seq was stamped
func (e *Engine) latest(seq uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return seq == e.seq
}

func (e *Engine) armLocked() {
	gen := e.gen
	e.tick = e.clock.AfterFunc(e.interval, func() { e.onTick(gen) })
}

func (e *Engine) stopTickLocked() {
	if e.tick != nil {
		e.tick.Stop()
		e.tick = nil
	}
	e.gen++
}

// emit queues n and, unless another goroutine is already delivering,
// drains the queue. Listeners that call back into the engine only queue.
func (e *Engine) emit(n notification) {
	e.subMu.Lock()
	e.pending = append(e.pending, n)
	if e.delivering {
		e.subMu.Unlock()
		return
	}
	e.delivering = true

	for len(e.pending) > 0 {
		next := e.pending[0]
		e.pending = e.pending[1:]
		if !e.latest(next.seq) {
			continue
		}

		listeners := make([]Listener, 0, len(e.listeners))
		for _, l := range e.listeners {
			listeners = append(listeners, l)
		}
		e.subMu.Unlock()

		for _, l := range listeners {
			if next.finished {
				l.OnFinished()
			} else {
				l.OnUpdate(next.text)
			}
		}

		e.subMu.Lock()
	}

	e.delivering = false
	e.subMu.Unlock()
}
