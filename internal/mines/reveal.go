package mines

// FloodReveal opens the target cell and cascades through its zero-count
// connected region. It is an explicit-worklist flood fill: the revealed
// flag doubles as the visited set, so each cell is processed at most once
// and the walk terminates on any grid.
//
// Flagged cells are never opened, not even mid-cascade. Revealing clears
// any question mark and sets the New animation flag. A mine cell is
// revealed but never propagates (mines carry no neighbor count); checking
// for the mine and ending the game is the caller's job.
func FloodReveal(b *Board, row, col int) {
	if !b.InBounds(row, col) {
		return
	}
	stack := []Point{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := b.At(p.Row, p.Col)
		if c.Revealed || c.Marking == MarkFlag {
			continue
		}
		c.Revealed = true
		c.Marking = MarkNone
		c.New = true
		if c.Mine || c.Neighbors > 0 {
			continue
		}
		stack = append(stack, b.Neighbors(p.Row, p.Col)...)
	}
}

// chordTargets returns the covered, unflagged neighbors of a cell along
// with the number of flags around it.
func chordTargets(b *Board, row, col int) (targets []Point, flags int) {
	for _, p := range b.Neighbors(row, col) {
		n := b.At(p.Row, p.Col)
		if n.Marking == MarkFlag {
			flags++
		} else if !n.Revealed {
			targets = append(targets, p)
		}
	}
	return
}

// ChordReveal opens every covered, unflagged neighbor of a revealed
// numbered cell, but only when the flags around it exactly match its
// number. Safe neighbors are flood-revealed immediately; if any neighbor
// holds a mine, mineHit reports it and the caller performs the uniform
// reveal-all-mines loss transition as one atomic step, so the board is
// never observable half-lost.
//
// With fewer flags than the number nothing is revealed; the covered
// neighbors come back as a transient highlight set for the caller to show
// briefly. With more flags than the number the chord does nothing at all.
func ChordReveal(b *Board, row, col int) (highlight []Point, mineHit bool) {
	if !b.InBounds(row, col) {
		return nil, false
	}
	c := b.At(row, col)
	if !c.Revealed || c.Neighbors == 0 {
		return nil, false
	}
	targets, flags := chordTargets(b, row, col)
	switch {
	case flags == c.Neighbors:
		for _, p := range targets {
			if b.At(p.Row, p.Col).Mine {
				mineHit = true
				continue
			}
			FloodReveal(b, p.Row, p.Col)
		}
		return nil, mineHit
	case flags < c.Neighbors:
		return targets, false
	default:
		return nil, false
	}
}

// PreviewChord computes, without mutating the board, the set of cells
// ChordReveal would open right now. It is empty unless the flag count
// already matches the cell's number.
func PreviewChord(b *Board, row, col int) []Point {
	if !b.InBounds(row, col) {
		return nil
	}
	c := b.At(row, col)
	if !c.Revealed || c.Neighbors == 0 {
		return nil
	}
	targets, flags := chordTargets(b, row, col)
	if flags != c.Neighbors {
		return nil
	}
	return targets
}
