package mines

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a fixed board from a layout where '*' is a mine and
// '.' is empty. Neighbor counts are computed the same way NewBoard does.
func parseBoard(t *testing.T, layout ...string) *Board {
	t.Helper()
	rows, cols := len(layout), len(layout[0])
	b := &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
	for row, line := range layout {
		require.Len(t, line, cols, "ragged layout")
		for col, ch := range line {
			if ch == '*' {
				b.At(row, col).Mine = true
				b.MineCount++
			}
		}
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

func TestDifficultyParams(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		rows, cols int
		mineCount  int
	}{
		{Beginner, 9, 9, 10},
		{Intermediate, 16, 16, 40},
		{Expert, 16, 30, 99},
	}
	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			rows, cols, mineCount := test.difficulty.Params()
			assert.Equal(t, test.rows, rows)
			assert.Equal(t, test.cols, cols)
			assert.Equal(t, test.mineCount, mineCount)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Beginner, Intermediate, Expert} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestNewBoardMineCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, d := range []Difficulty{Beginner, Intermediate, Expert} {
		t.Run(d.String(), func(t *testing.T) {
			b := NewBoard(d, r)
			mines := 0
			for i := range b.Cells {
				c := &b.Cells[i]
				assert.False(t, c.Revealed)
				assert.Equal(t, MarkNone, c.Marking)
				if c.Mine {
					mines++
				}
			}
			assert.Equal(t, b.MineCount, mines)
			assert.Equal(t, b.Rows*b.Cols-b.MineCount, len(b.Cells)-mines)
		})
	}
}

func TestNewBoardNeighborCounts(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		b := NewBoard(Beginner, r)
		for row := range b.Rows {
			for col := range b.Cols {
				c := b.At(row, col)
				if c.Mine {
					assert.Zero(t, c.Neighbors)
					continue
				}
				// brute-force recount over the clipped neighborhood
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						if b.InBounds(row+dr, col+dc) && b.At(row+dr, col+dc).Mine {
							want++
						}
					}
				}
				assert.Equal(t, want, c.Neighbors, "cell %d:%d", row, col)
			}
		}
	}
}

func TestNeighborsClipped(t *testing.T) {
	b := parseBoard(t,
		"...",
		"...",
		"...",
	)
	assert.Len(t, b.Neighbors(0, 0), 3)
	assert.Len(t, b.Neighbors(0, 1), 5)
	assert.Len(t, b.Neighbors(1, 1), 8)
	assert.Len(t, b.Neighbors(2, 2), 3)
}

func TestNeighborCountsSmallBoard(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"..*",
	)
	want := []int{0, 1, 0, 1, 2, 1, 0, 1, 0}
	for i, c := range b.Cells {
		if c.Mine {
			continue
		}
		assert.Equal(t, want[i], c.Neighbors, "cell %d", i)
	}
}

func TestGridView(t *testing.T) {
	b := parseBoard(t,
		"*.",
		"..",
	)
	b.At(0, 0).Marking = MarkFlag
	b.At(0, 1).Marking = MarkQuestion
	FloodReveal(b, 1, 1)

	g := b.View()
	assert.Equal(t, ViewFlag, g[0])
	assert.Equal(t, ViewQuestion, g[1])
	assert.Equal(t, CellView(1), g[3])

	dump := g.ToString(b.Cols)
	assert.Equal(t, 2, strings.Count(dump, "\n"))
}
