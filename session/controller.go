package session

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"moaburke/glosor/vocab"
)

// State is the face the session currently shows.
type State int

const (
	// StateFront shows the term with the translation still hidden.
	StateFront State = iota
	// StateBack shows the translation.
	StateBack
	// StateExhausted means every word has been learned; the only way
	// forward is Restart.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateFront:
		return "front"
	case StateBack:
		return "back"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats holds the session-scoped guess counters. Correct never exceeds
// Total. Neither counter is persisted.
type Stats struct {
	Total   int
	Correct int
}

// Snapshot is the render-ready view of the session after a transition.
type Snapshot struct {
	State     State
	Current   vocab.Entry
	Stats     Stats
	Remaining int
	// Notice carries a transient, non-fatal message such as a failed
	// progress save. Empty when there is nothing to report.
	Notice string
}

// Wordstore is the slice of the vocabulary store the controller drives.
// *vocab.Store satisfies it.
type Wordstore interface {
	Random(r *rand.Rand) (vocab.Entry, bool)
	Remove(e vocab.Entry) bool
	Save() error
	Reset()
	Len() int
}

// Config tunes a Controller. Zero values select the defaults.
type Config struct {
	// FlipDelay is how long the front face shows before the automatic
	// reveal. Defaults to 3 seconds.
	FlipDelay time.Duration
	// Rand is the randomness source for card selection. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// Schedule arms a one-shot timer and returns its stop function.
	// Defaults to time.AfterFunc. Tests inject a manual scheduler.
	Schedule func(d time.Duration, fn func()) (stop func() bool)
}

// Controller owns the card state machine: front face, timed reveal, known/
// skip actions and the exhausted terminal state. All methods are safe to
// call from the UI thread while the flip timer fires from another goroutine.
type Controller struct {
	store    Wordstore
	logger   *zap.Logger
	rng      *rand.Rand
	delay    time.Duration
	schedule func(time.Duration, func()) func() bool
	onChange func(Snapshot)

	mu         sync.Mutex
	state      State
	current    vocab.Entry
	stats      Stats
	cancelFlip func() bool
	cardSeq    uint64
	notice     string
	saveDue    bool
}

// New returns an unstarted Controller over the given store.
func New(store Wordstore, cfg Config, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlipDelay <= 0 {
		cfg.FlipDelay = 3 * time.Second
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Schedule == nil {
		cfg.Schedule = func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		}
	}
	return &Controller{
		store:    store,
		logger:   logger,
		rng:      cfg.Rand,
		delay:    cfg.FlipDelay,
		schedule: cfg.Schedule,
	}
}

// SetOnChange registers the callback invoked with a Snapshot after every
// transition. It must be set before Start.
func (c *Controller) SetOnChange(fn func(Snapshot)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Start draws the first card and arms the reveal timer.
func (c *Controller) Start() {
	c.mu.Lock()
	c.nextCardLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Skip leaves the current word in the set and draws a new one. Skipping
// while the front face still shows cancels the pending reveal so a stale
// card can never flip.
func (c *Controller) Skip() {
	c.mu.Lock()
	if c.state == StateExhausted {
		c.mu.Unlock()
		return
	}
	c.retrySaveLocked()
	c.nextCardLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// MarkKnown confirms the current word as mastered: the correct counter
// increments, the word is removed from the store and the remaining set is
// persisted immediately. A save failure is non-fatal; the in-memory removal
// stands and the save is retried on the next mutating action. When the set
// becomes empty the session enters the exhausted state.
func (c *Controller) MarkKnown() {
	c.mu.Lock()
	if c.state == StateExhausted {
		c.mu.Unlock()
		return
	}
	if c.state == StateFront {
		// The reveal this action preempts still counts as a guess.
		c.stats.Total++
	}
	c.stats.Correct++
	if !c.store.Remove(c.current) {
		c.logger.Warn("current word missing from store",
			zap.String("term", c.current.Term))
	}
	c.persistLocked()
	c.nextCardLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Restart leaves the exhausted state: the store reloads the seed list, both
// counters reset to zero and a fresh card is drawn. It is a no-op in any
// other state.
func (c *Controller) Restart() {
	c.mu.Lock()
	if c.state != StateExhausted {
		c.mu.Unlock()
		return
	}
	c.store.Reset()
	c.stats = Stats{}
	c.persistLocked()
	c.nextCardLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.logger.Info("session restarted", zap.Int("words", snap.Remaining))
}

// Snapshot returns the current view without transitioning.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels any pending reveal and persists the current set. Call on
// application exit.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelFlip != nil {
		c.cancelFlip()
		c.cancelFlip = nil
	}
	c.persistLocked()
}

// flip performs the automatic front-to-back reveal. The sequence number
// guards against a timer that outlived its card.
func (c *Controller) flip(seq uint64) {
	c.mu.Lock()
	if seq != c.cardSeq || c.state != StateFront {
		c.mu.Unlock()
		return
	}
	c.state = StateBack
	c.stats.Total++
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *Controller) nextCardLocked() {
	if c.cancelFlip != nil {
		c.cancelFlip()
		c.cancelFlip = nil
	}
	c.cardSeq++
	entry, ok := c.store.Random(c.rng)
	if !ok {
		c.state = StateExhausted
		c.current = vocab.Entry{}
		return
	}
	c.current = entry
	c.state = StateFront
	seq := c.cardSeq
	c.cancelFlip = c.schedule(c.delay, func() { c.flip(seq) })
}

func (c *Controller) persistLocked() {
	if err := c.store.Save(); err != nil {
		c.logger.Warn("save progress", zap.Error(err))
		c.notice = "Could not save progress; will retry."
		c.saveDue = true
		return
	}
	c.notice = ""
	c.saveDue = false
}

func (c *Controller) retrySaveLocked() {
	if c.saveDue {
		c.persistLocked()
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:     c.state,
		Current:   c.current,
		Stats:     c.stats,
		Remaining: c.store.Len(),
		Notice:    c.notice,
	}
}

func (c *Controller) emit(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
