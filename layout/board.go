package layout

import "strings"

const (
	// BlankCell fills cells no word covers.
	BlankCell = ' '
	// MaskCell hides the letters of words that are not revealed.
	MaskCell = '*'

	boardMargin = 2
)

// Board is a rendered layout, one rune per cell, row major.
type Board struct {
	Width  int
	Height int
	Cells  [][]rune
}

func newBoard(width, height int) Board {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(BlankCell), width))
	}
	return Board{Width: width, Height: height, Cells: cells}
}

// Board renders the layout. reveal decides per word whether its letters are
// shown or masked; nil reveals everything. Masked words are painted first, so
// a cell shared with a revealed word shows its letter.
func (c *CrosswordLayout) Board(reveal func(word string) bool) Board {
	b := newBoard(c.bounds.Width(), c.bounds.Height())
	for _, pass := range []bool{false, true} {
		for _, w := range c.placed {
			shown := reveal == nil || reveal(w.word)
			if shown != pass {
				continue
			}
			b.paint(w, c.bounds, shown)
		}
	}
	return b
}

func (b Board) paint(w *WordLayout, origin Rect, shown bool) {
	x, y := w.rect.Left-origin.Left, w.rect.Top-origin.Top
	dx, dy := 0, 1
	if w.horizontal {
		dx, dy = 1, 0
	}
	for _, ch := range w.chars {
		if !shown {
			ch = MaskCell
		}
		b.Cells[y][x] = ch
		x, y = x+dx, y+dy
	}
}

// At returns the cell at board coordinates, BlankCell outside the board.
func (b Board) At(x, y int) rune {
	if y < 0 || y >= b.Height || x < 0 || x >= b.Width {
		return BlankCell
	}
	return b.Cells[y][x]
}

// Rows returns the board as one string per row.
func (b Board) Rows() []string {
	rows := make([]string, b.Height)
	for y, row := range b.Cells {
		rows[y] = string(row)
	}
	return rows
}

// String draws the board inside a frame with one blank cell of margin.
func (b Board) String() string {
	width := b.Width + 2*boardMargin
	border := "+" + strings.Repeat("-", width-2) + "+\n"
	blank := "|" + strings.Repeat(" ", width-2) + "|\n"
	pad := strings.Repeat(" ", boardMargin-1)

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteString(blank)
	for _, row := range b.Cells {
		sb.WriteString("|" + pad + string(row) + pad + "|\n")
	}
	sb.WriteString(blank)
	sb.WriteString(border)
	return sb.String()
}
