// Package termboard paints layout boards on a terminal screen.
package termboard

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bodul/wordcross/layout"
)

// Styles used when painting a board.
type Styles struct {
	Letter tcell.Style
	Mask   tcell.Style
	Frame  tcell.Style
}

// DefaultStyles mirrors the web frontend colors.
var DefaultStyles = Styles{
	Letter: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	Mask:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	Frame:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
}

// Draw paints b with its frame, the top-left frame corner at (x, y).
// Blank cells are left untouched. It returns the size of the framed area.
func Draw(s tcell.Screen, b layout.Board, x, y int, styles Styles) (width, height int) {
	width, height = b.Width+4, b.Height+4

	for i := 1; i < width-1; i++ {
		s.SetContent(x+i, y, tcell.RuneHLine, nil, styles.Frame)
		s.SetContent(x+i, y+height-1, tcell.RuneHLine, nil, styles.Frame)
	}
	for j := 1; j < height-1; j++ {
		s.SetContent(x, y+j, tcell.RuneVLine, nil, styles.Frame)
		s.SetContent(x+width-1, y+j, tcell.RuneVLine, nil, styles.Frame)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, styles.Frame)
	s.SetContent(x+width-1, y, tcell.RuneURCorner, nil, styles.Frame)
	s.SetContent(x, y+height-1, tcell.RuneLLCorner, nil, styles.Frame)
	s.SetContent(x+width-1, y+height-1, tcell.RuneLRCorner, nil, styles.Frame)

	for row := range b.Height {
		for col := range b.Width {
			ch := b.At(col, row)
			switch ch {
			case layout.BlankCell:
				continue
			case layout.MaskCell:
				s.SetContent(x+2+col, y+2+row, ch, nil, styles.Mask)
			default:
				s.SetContent(x+2+col, y+2+row, ch, nil, styles.Letter)
			}
		}
	}
	return width, height
}

// DrawText writes a single line of text starting at (x, y).
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
