// Package engine implements the game loop and collision rules of Big Monkey:
// a player moving on a fixed grid, one collectible at a time and a growing set
// of obstacles. It knows nothing about windows, sprites or keys; frontends
// drive it with Start, Steer and Tick and receive Display commands back.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type State int

const (
	Idle State = iota // before the first round, or after game over
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Outcome is what a single Tick did.
type Outcome int

const (
	Stopped Outcome = iota // engine was idle, or the round was abandoned
	Moved
	Collected
	HitObstacle
	HitEdge
)

func (o Outcome) String() string {
	switch o {
	case Stopped:
		return "stopped"
	case Moved:
		return "moved"
	case Collected:
		return "collected"
	case HitObstacle:
		return "hit obstacle"
	case HitEdge:
		return "hit edge"
	}
	return "unknown"
}

// GameOver reports whether o ended the round.
func (o Outcome) GameOver() bool {
	return o == HitObstacle || o == HitEdge
}

// RoundState is everything that lives for one round only.
type RoundState struct {
	ID          string
	Player      Position
	Heading     Direction
	Collectible Position
	Obstacles   []Position
	Score       int
	Ticks       int
	Started     time.Time

	pool *Pool
}

// Velocity is the displacement applied on the next moving tick.
func (r *RoundState) Velocity() Vector {
	return r.Heading.Vector()
}

type Engine struct {
	state   State
	round   *RoundState
	high    int
	rng     *rand.Rand
	display Display
	logger  *log.Logger
}

type Option func(*Engine)

// WithRand sets the source used to sample collectibles and obstacles.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithDisplay(d Display) Option {
	return func(e *Engine) { e.display = d }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an idle engine with a high score of zero.
func New(opts ...Option) *Engine {
	e := &Engine{state: Idle}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.display == nil {
		e.display = Nop{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Start begins a new round. It is a no-op returning false while a round is
// running; a round in flight is never reset.
func (e *Engine) Start() (bool, error) {
	if e.state == Running {
		e.logger.Debug("start ignored, round in progress", "round", e.round.ID)
		return false, nil
	}

	if e.round != nil && e.round.Score > e.high {
		e.high = e.round.Score
	}

	r := &RoundState{
		ID:      uuid.NewString(),
		Player:  EntryPosition,
		Heading: DefaultDirection,
		Started: time.Now(),
		pool:    NewPool(),
	}
	c, err := r.pool.Take(e.rng)
	if err != nil {
		return false, fmt.Errorf("place collectible: %w", err)
	}
	r.Collectible = c

	e.round = r
	e.state = Running

	e.display.Clear()
	e.display.Place(MarkerPlayer, 0, r.Player)
	e.display.Place(MarkerCollectible, 0, r.Collectible)
	e.display.Scores(0, e.high)
	e.display.Redraw()

	e.logger.Info("round started", "round", r.ID, "high", e.high)
	return true, nil
}

// Steer replaces the heading. It takes effect on the next tick and reversing
// is allowed.
func (e *Engine) Steer(d Direction) {
	if e.state != Running {
		return
	}
	e.round.Heading = d
}

// Tick runs one evaluation step. Obstacles are checked first, then the
// collectible, then the boundary; only a tick that hits none of them moves
// the player.
func (e *Engine) Tick() (Outcome, error) {
	if e.state != Running {
		return Stopped, nil
	}
	r := e.round
	r.Ticks++
	at := r.Player

	for _, o := range r.Obstacles {
		if at.Near(o, ObstacleReach) {
			return e.end(HitObstacle), nil
		}
	}

	if at.Near(r.Collectible, CollectReach) {
		if err := e.collect(); err != nil {
			e.state = Idle
			e.logger.Error("round abandoned", "round", r.ID, "err", err)
			return Stopped, err
		}
		e.display.Redraw()
		return Collected, nil
	}

	if at.OffField() {
		return e.end(HitEdge), nil
	}

	r.Player = at.Add(r.Velocity())
	e.display.Place(MarkerPlayer, 0, r.Player)
	e.display.Redraw()
	return Moved, nil
}

func (e *Engine) collect() error {
	r := e.round
	r.Score++
	r.pool.Put(r.Collectible)

	c, err := r.pool.Take(e.rng)
	if err != nil {
		return fmt.Errorf("relocate collectible: %w", err)
	}
	r.Collectible = c

	o, err := r.pool.Take(e.rng)
	if err != nil {
		return fmt.Errorf("drop obstacle: %w", err)
	}
	r.Obstacles = append(r.Obstacles, o)

	e.display.Remove(MarkerCollectible, 0)
	e.display.Place(MarkerCollectible, 0, c)
	e.display.Place(MarkerObstacle, len(r.Obstacles)-1, o)
	e.display.Scores(r.Score, e.high)

	e.logger.Debug("collected", "round", r.ID, "score", r.Score, "collectible", c, "obstacle", o)
	return nil
}

func (e *Engine) end(cause Outcome) Outcome {
	r := e.round
	e.state = Idle
	e.display.GameOver(cause)
	e.display.Redraw()
	e.logger.Info("round over",
		"round", r.ID,
		"cause", cause,
		"score", r.Score,
		"ticks", r.Ticks,
		"elapsed", time.Since(r.Started).Round(time.Millisecond))
	return cause
}

func (e *Engine) State() State {
	return e.state
}

// Score is the current round's score, or the last round's after game over.
func (e *Engine) Score() int {
	if e.round == nil {
		return 0
	}
	return e.round.Score
}

// HighScore only changes when a round starts.
func (e *Engine) HighScore() int {
	return e.high
}

// Round returns a copy of the current (or last) round, and false before the
// first round.
func (e *Engine) Round() (RoundState, bool) {
	if e.round == nil {
		return RoundState{}, false
	}
	r := *e.round
	r.Obstacles = append([]Position(nil), e.round.Obstacles...)
	r.pool = nil
	return r, true
}

// Free is the number of cells left in the sampling pool.
func (e *Engine) Free() int {
	if e.round == nil {
		return 0
	}
	return e.round.pool.Len()
}
