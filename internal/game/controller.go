package game

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"minesweep/internal/mines"
)

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}

func (s Status) Terminal() bool {
	return s != InProgress
}

// Score is emitted exactly once, at the moment a game is won. Persistence
// and ids belong to the score-history collaborator.
type Score struct {
	RecordedAt time.Time
	Elapsed    float64 // seconds, 2-decimal precision
	Difficulty mines.Difficulty
}

// ScoreSink receives the Score of a won game. Implementations must not
// fail the game on storage errors.
type ScoreSink interface {
	RecordScore(Score)
}

// HighlightTTL is how long an insufficient-flags chord highlight stays
// visible before it clears itself.
const HighlightTTL = 200 * time.Millisecond

// Controller is the single owner of one board and its status. One user
// action is processed to completion under the lock before the next is
// accepted; nothing else ever touches the board.
type Controller struct {
	mu     sync.Mutex
	board  *mines.Board
	status Status

	startedAt time.Time // zero until the first action
	endedAt   time.Time
	now       func() time.Time

	highlight      []mines.Point
	highlightTimer *time.Timer

	scores ScoreSink
	rnd    *rand.Rand
}

// New builds a controller with a fresh board. sink may be nil when no
// score history is attached.
func New(d mines.Difficulty, rnd *rand.Rand, sink ScoreSink) *Controller {
	c := &Controller{
		now:    time.Now,
		scores: sink,
		rnd:    rnd,
	}
	c.start(d)
	return c
}

// Start discards the current board, timer and highlight and begins a
// fresh game at the given difficulty. This is the only way out of a
// terminal status.
func (c *Controller) Start(d mines.Difficulty) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start(d)
}

func (c *Controller) start(d mines.Difficulty) {
	c.board = mines.NewBoard(d, c.rnd)
	c.status = InProgress
	c.startedAt = time.Time{}
	c.endedAt = time.Time{}
	c.dropHighlight()
}

// begin runs the shared action prologue: lazy clock start and clearing of
// per-action transients. The clock start is idempotent; only the first
// action of a game sets it.
func (c *Controller) begin() {
	if c.startedAt.IsZero() {
		c.startedAt = c.now()
	}
	c.dropHighlight()
	c.board.ClearNewFlags()
}

func (c *Controller) dropHighlight() {
	if c.highlightTimer != nil {
		c.highlightTimer.Stop()
		c.highlightTimer = nil
	}
	c.highlight = nil
}

// setHighlight installs a self-expiring highlight. A newer action always
// supersedes a pending clear, so the last scheduled clear wins.
func (c *Controller) setHighlight(ps []mines.Point) {
	if len(ps) == 0 {
		return
	}
	c.highlight = ps
	var timer *time.Timer
	timer = time.AfterFunc(HighlightTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.highlightTimer == timer {
			c.dropHighlight()
		}
	})
	c.highlightTimer = timer
}

// Reveal opens a cell. Out-of-bounds coordinates, a terminal game and
// flagged cells are silent no-ops. Revealing an open numbered cell is
// redefined as a chord on it.
func (c *Controller) Reveal(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() || !c.board.InBounds(row, col) {
		return
	}
	cell := c.board.At(row, col)
	if cell.Marking == mines.MarkFlag {
		return
	}
	if cell.Revealed {
		if cell.Neighbors > 0 {
			c.chord(row, col)
		}
		return
	}
	c.begin()
	if cell.Mine {
		mines.FloodReveal(c.board, row, col) // opens the mine, no cascade
		c.lose()
		return
	}
	mines.FloodReveal(c.board, row, col)
	c.evaluate()
}

// Chord performs a simultaneous reveal around an open numbered cell.
func (c *Controller) Chord(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() || !c.board.InBounds(row, col) {
		return
	}
	c.chord(row, col)
}

func (c *Controller) chord(row, col int) {
	c.begin()
	highlight, mineHit := mines.ChordReveal(c.board, row, col)
	if mineHit {
		c.lose()
		return
	}
	c.setHighlight(highlight)
	c.evaluate()
}

// Mark cycles a covered cell's marking. No-op on revealed cells and in
// terminal states.
func (c *Controller) Mark(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() || !c.board.InBounds(row, col) {
		return
	}
	cell := c.board.At(row, col)
	if cell.Revealed {
		return
	}
	c.begin()
	cell.CycleMark()
	c.evaluate()
}

// PreviewChord reports which cells a chord at row, col would open right
// now. Read-only.
func (c *Controller) PreviewChord(row, col int) []mines.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() {
		return nil
	}
	return mines.PreviewChord(c.board, row, col)
}

// lose is the uniform loss transition: the whole mine layout is exposed
// in the same step that flips the status, so the board is never
// observable in a half-lost state.
func (c *Controller) lose() {
	c.board.RevealAllMines()
	c.status = Lost
	c.endedAt = c.now()
}

// evaluate runs the win check exactly once at the end of a mutating
// action that did not already lose the game.
func (c *Controller) evaluate() {
	if c.status.Terminal() || !c.board.Won() {
		return
	}
	c.board.FlagAllMines()
	c.status = Won
	c.endedAt = c.now()
	if c.scores != nil {
		c.scores.RecordScore(Score{
			RecordedAt: c.endedAt,
			Elapsed:    roundElapsed(c.endedAt.Sub(c.startedAt)),
			Difficulty: c.board.Difficulty,
		})
	}
}

func roundElapsed(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// Elapsed returns the running (or final) play time in seconds, rounded
// to 2 decimals. Zero before the first action.
func (c *Controller) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed()
}

func (c *Controller) elapsed() float64 {
	switch {
	case c.startedAt.IsZero():
		return 0
	case c.endedAt.IsZero():
		return roundElapsed(c.now().Sub(c.startedAt))
	default:
		return roundElapsed(c.endedAt.Sub(c.startedAt))
	}
}

// Snapshot is a consistent copy of everything the presentation layer
// needs to draw one frame.
type Snapshot struct {
	Difficulty mines.Difficulty
	Rows, Cols int
	MineCount  int
	Grid       mines.GridView
	New        []mines.Point
	Status     Status
	Highlight  []mines.Point
	Elapsed    float64
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	var fresh []mines.Point
	for row := range c.board.Rows {
		for col := range c.board.Cols {
			if c.board.At(row, col).New {
				fresh = append(fresh, mines.Point{Row: row, Col: col})
			}
		}
	}
	return Snapshot{
		Difficulty: c.board.Difficulty,
		Rows:       c.board.Rows,
		Cols:       c.board.Cols,
		MineCount:  c.board.MineCount,
		Grid:       c.board.View(),
		New:        fresh,
		Status:     c.status,
		Highlight:  append([]mines.Point(nil), c.highlight...),
		Elapsed:    c.elapsed(),
	}
}

// Status returns the current game status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
