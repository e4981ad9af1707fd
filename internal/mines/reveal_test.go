package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedPoints(b *Board) []Point {
	var ps []Point
	for row := range b.Rows {
		for col := range b.Cols {
			if b.At(row, col).Revealed {
				ps = append(ps, Point{row, col})
			}
		}
	}
	return ps
}

func TestFloodRevealCascade(t *testing.T) {
	// a single wall of mines splits the board into two zero regions
	b := parseBoard(t,
		"..*..",
		"..*..",
		"..*..",
	)
	FloodReveal(b, 0, 0)

	for row := range b.Rows {
		for col := 0; col < 2; col++ {
			assert.True(t, b.At(row, col).Revealed, "cell %d:%d", row, col)
			assert.True(t, b.At(row, col).New, "cell %d:%d", row, col)
		}
		for col := 2; col < b.Cols; col++ {
			assert.False(t, b.At(row, col).Revealed, "cell %d:%d", row, col)
		}
	}
}

func TestFloodRevealIdempotent(t *testing.T) {
	b := parseBoard(t,
		"..*..",
		"..*..",
		"..*..",
	)
	FloodReveal(b, 1, 0)
	before := revealedPoints(b)
	FloodReveal(b, 1, 0)
	assert.Equal(t, before, revealedPoints(b))
}

func TestFloodRevealNumberedCellStops(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 0, 1)
	assert.Equal(t, []Point{{0, 1}}, revealedPoints(b))
}

func TestFloodRevealSkipsFlags(t *testing.T) {
	b := parseBoard(t,
		"..*..",
		"..*..",
		"..*..",
	)
	b.At(1, 1).Marking = MarkFlag
	FloodReveal(b, 0, 0)
	assert.False(t, b.At(1, 1).Revealed)
	assert.Equal(t, MarkFlag, b.At(1, 1).Marking)

	// direct reveal of a flagged cell is a no-op too
	FloodReveal(b, 1, 1)
	assert.False(t, b.At(1, 1).Revealed)
}

func TestFloodRevealClearsQuestionMark(t *testing.T) {
	b := parseBoard(t,
		"..*..",
		"..*..",
		"..*..",
	)
	b.At(1, 1).Marking = MarkQuestion
	FloodReveal(b, 0, 0)
	assert.True(t, b.At(1, 1).Revealed)
	assert.Equal(t, MarkNone, b.At(1, 1).Marking)
}

func TestFloodRevealMineDoesNotPropagate(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 0, 0)
	assert.Equal(t, []Point{{0, 0}}, revealedPoints(b))
}

func TestFloodRevealOutOfBounds(t *testing.T) {
	b := parseBoard(t,
		"..",
		"..",
	)
	FloodReveal(b, -1, 0)
	FloodReveal(b, 0, 7)
	assert.Empty(t, revealedPoints(b))
}

func TestChordRevealExactFlags(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 1, 1) // "1" cell
	b.At(0, 0).Marking = MarkFlag

	highlight, mineHit := ChordReveal(b, 1, 1)
	assert.Nil(t, highlight)
	assert.False(t, mineHit)
	for _, p := range b.Neighbors(1, 1) {
		c := b.At(p.Row, p.Col)
		if c.Mine {
			assert.False(t, c.Revealed)
		} else {
			assert.True(t, c.Revealed, "cell %d:%d", p.Row, p.Col)
		}
	}
}

func TestChordRevealUnderFlagged(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 1, 1)
	before := revealedPoints(b)

	highlight, mineHit := ChordReveal(b, 1, 1)
	assert.False(t, mineHit)
	require.NotEmpty(t, highlight)
	assert.Len(t, highlight, 8) // every covered unflagged neighbor
	assert.Equal(t, before, revealedPoints(b), "under-flagged chord must not mutate")
}

func TestChordRevealOverFlagged(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 1, 1)
	b.At(0, 0).Marking = MarkFlag
	b.At(0, 1).Marking = MarkFlag

	highlight, mineHit := ChordReveal(b, 1, 1)
	assert.Nil(t, highlight)
	assert.False(t, mineHit)
	assert.Equal(t, []Point{{1, 1}}, revealedPoints(b))
}

func TestChordRevealMisflaggedHitsMine(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 1, 1)
	b.At(0, 1).Marking = MarkFlag // wrong flag, mine is at 0:0

	highlight, mineHit := ChordReveal(b, 1, 1)
	assert.Nil(t, highlight)
	assert.True(t, mineHit)
	// safe neighbors were opened before the hit is reported
	assert.True(t, b.At(1, 0).Revealed)
	assert.True(t, b.At(2, 2).Revealed)
	// the mine itself is left for the caller's all-mines reveal
	assert.False(t, b.At(0, 0).Revealed)
	// the wrong flag stays put
	assert.False(t, b.At(0, 1).Revealed)
	assert.Equal(t, MarkFlag, b.At(0, 1).Marking)
}

func TestChordRevealGuards(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	// covered cell
	highlight, mineHit := ChordReveal(b, 1, 1)
	assert.Nil(t, highlight)
	assert.False(t, mineHit)

	// zero-count cell
	FloodReveal(b, 2, 2)
	highlight, mineHit = ChordReveal(b, 2, 2)
	assert.Nil(t, highlight)
	assert.False(t, mineHit)

	// out of bounds
	highlight, mineHit = ChordReveal(b, -1, 0)
	assert.Nil(t, highlight)
	assert.False(t, mineHit)
}

func TestPreviewChord(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"...",
	)
	FloodReveal(b, 1, 1)

	// no flags yet: preview is empty
	assert.Empty(t, PreviewChord(b, 1, 1))

	b.At(0, 0).Marking = MarkFlag
	preview := PreviewChord(b, 1, 1)
	assert.Len(t, preview, 7)
	for _, p := range preview {
		c := b.At(p.Row, p.Col)
		assert.False(t, c.Revealed)
		assert.NotEqual(t, MarkFlag, c.Marking)
	}
	// preview never mutates
	assert.Equal(t, []Point{{1, 1}}, revealedPoints(b))

	// covered target
	assert.Empty(t, PreviewChord(b, 0, 1))
}
