package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkingCycle(t *testing.T) {
	c := &Cell{}
	c.CycleMark()
	assert.Equal(t, MarkFlag, c.Marking)
	c.CycleMark()
	assert.Equal(t, MarkQuestion, c.Marking)
	c.CycleMark()
	assert.Equal(t, MarkNone, c.Marking)
}

func TestWonIgnoresFlags(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"..*",
	)
	// open every non-mine cell directly, no flags anywhere
	for i := range b.Cells {
		if !b.Cells[i].Mine {
			b.Cells[i].Revealed = true
		}
	}
	assert.True(t, b.Won())
	assert.Equal(t, b.Rows*b.Cols-b.MineCount, b.RevealedCount())
}

func TestNotWonWhileCovered(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"..*",
	)
	// flagging both mines does not win
	b.At(0, 0).Marking = MarkFlag
	b.At(2, 2).Marking = MarkFlag
	assert.False(t, b.Won())

	FloodReveal(b, 0, 2)
	assert.False(t, b.Won())
}

func TestRevealAllMines(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"..*",
	)
	b.At(0, 0).Marking = MarkFlag
	b.At(0, 1).Marking = MarkFlag // wrong flag
	b.RevealAllMines()

	assert.True(t, b.At(0, 0).Revealed)
	assert.True(t, b.At(2, 2).Revealed)
	// flags stay, non-mine cells stay covered
	assert.Equal(t, MarkFlag, b.At(0, 1).Marking)
	assert.False(t, b.At(0, 1).Revealed)
}

func TestFlagAllMines(t *testing.T) {
	b := parseBoard(t,
		"*..",
		"...",
		"..*",
	)
	b.FlagAllMines()
	assert.Equal(t, MarkFlag, b.At(0, 0).Marking)
	assert.Equal(t, MarkFlag, b.At(2, 2).Marking)
	assert.Equal(t, MarkNone, b.At(1, 1).Marking)
}
