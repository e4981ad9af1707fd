package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is the wire encoding of a single cell as the player sees it.
type CellView int8

const (
	ViewQuestion CellView = -3
	ViewCovered  CellView = -2
	ViewFlag     CellView = -1
	ViewMine     CellView = 64
	// 0-8 for an open cell with that many mined neighbors
)

func (v CellView) String() string {
	switch {
	case v == ViewQuestion:
		return "?"
	case v == ViewCovered:
		return " "
	case v == ViewFlag:
		return "*"
	case v == ViewMine:
		return "@"
	case 0 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

type GridView []CellView

// View projects the board into player knowledge: covered cells show only
// their marking, open cells show their count, and an open mine (a lost
// game) shows the mine itself.
func (b *Board) View() GridView {
	g := make(GridView, len(b.Cells))
	for i := range b.Cells {
		c := &b.Cells[i]
		switch {
		case !c.Revealed && c.Marking == MarkFlag:
			g[i] = ViewFlag
		case !c.Revealed && c.Marking == MarkQuestion:
			g[i] = ViewQuestion
		case !c.Revealed:
			g[i] = ViewCovered
		case c.Mine:
			g[i] = ViewMine
		default:
			g[i] = CellView(c.Neighbors)
		}
	}
	return g
}

func (g GridView) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
