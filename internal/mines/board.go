package mines

import "math/rand/v2"

// Marking is the three-state cycle a player can put on a covered cell.
type Marking int8

const (
	MarkNone Marking = iota
	MarkFlag
	MarkQuestion
)

// Next advances the cycle: none -> flag -> question -> none.
func (m Marking) Next() Marking {
	switch m {
	case MarkNone:
		return MarkFlag
	case MarkFlag:
		return MarkQuestion
	default:
		return MarkNone
	}
}

type Cell struct {
	Mine      bool
	Revealed  bool
	Marking   Marking
	Neighbors int // adjacent mine count, 0-8, zero for mine cells

	// New marks cells revealed by the most recent action so a client can
	// time its reveal animation. Cleared before every action.
	New bool
}

// CycleMark advances the cell's marking. Revealed cells are guarded at the
// controller level; a revealed cell always has MarkNone.
func (c *Cell) CycleMark() {
	c.Marking = c.Marking.Next()
}

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a fixed-size grid of cells in row-major order. Mine placement
// and neighbor counts never change after NewBoard returns.
type Board struct {
	Difficulty Difficulty
	Rows, Cols int
	MineCount  int
	Cells      []Cell
}

// NewBoard places exactly the preset's mine count by rejection sampling
// and precomputes neighbor counts. The first reveal is not guaranteed
// safe: any cell, including the first one clicked, may hold a mine.
func NewBoard(d Difficulty, r *rand.Rand) *Board {
	rows, cols, mineCount := d.Params()
	b := &Board{
		Difficulty: d,
		Rows:       rows,
		Cols:       cols,
		MineCount:  mineCount,
		Cells:      make([]Cell, rows*cols),
	}
	for placed := 0; placed < mineCount; {
		i := r.IntN(len(b.Cells))
		if b.Cells[i].Mine {
			continue
		}
		b.Cells[i].Mine = true
		placed++
	}
	for row := range rows {
		for col := range cols {
			c := b.At(row, col)
			if c.Mine {
				continue
			}
			for _, p := range b.Neighbors(row, col) {
				if b.At(p.Row, p.Col).Mine {
					c.Neighbors++
				}
			}
		}
	}
	return b
}

func (b *Board) index(row, col int) int {
	return row*b.Cols + col
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Rows && 0 <= col && col < b.Cols
}

// At returns the cell at row, col. Callers must check InBounds first.
func (b *Board) At(row, col int) *Cell {
	return &b.Cells[b.index(row, col)]
}

// Neighbors returns the Moore neighborhood clipped to the grid, so edge
// and corner cells get fewer than 8 points.
func (b *Board) Neighbors(row, col int) []Point {
	ps := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.InBounds(row+dr, col+dc) {
				ps = append(ps, Point{row + dr, col + dc})
			}
		}
	}
	return ps
}

// ClearNewFlags resets the per-action animation markers.
func (b *Board) ClearNewFlags() {
	for i := range b.Cells {
		b.Cells[i].New = false
	}
}
