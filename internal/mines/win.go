package mines

// RevealedCount returns the number of open cells.
func (b *Board) RevealedCount() (n int) {
	for i := range b.Cells {
		if b.Cells[i].Revealed {
			n++
		}
	}
	return
}

// Won reports whether every non-mine cell is open. The check is a raw
// count: flags on mines are irrelevant to winning.
func (b *Board) Won() bool {
	return b.RevealedCount() == b.Rows*b.Cols-b.MineCount
}

// RevealAllMines exposes the full mine layout after a loss. Flags are
// left untouched so the player can see which of theirs were wrong.
func (b *Board) RevealAllMines() {
	for i := range b.Cells {
		c := &b.Cells[i]
		if c.Mine && !c.Revealed {
			c.Revealed = true
			c.New = true
		}
	}
}

// FlagAllMines puts a flag on every mine. Cosmetic, applied when the
// board is solved.
func (b *Board) FlagAllMines() {
	for i := range b.Cells {
		c := &b.Cells[i]
		if c.Mine && !c.Revealed {
			c.Marking = MarkFlag
		}
	}
}
