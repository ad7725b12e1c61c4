package termboard

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/bodul/wordcross/layout"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawBoard(t *testing.T) {
	c, err := layout.New(2, "CAT", []string{"DOG"})
	require.NoError(t, err)
	screen := newScreen(t)

	w, h := Draw(screen, c.Board(nil), 1, 1, DefaultStyles)
	require.Equal(t, 7, w)
	require.Equal(t, 7, h)

	require.Equal(t, tcell.RuneULCorner, runeAt(screen, 1, 1))
	require.Equal(t, tcell.RuneLRCorner, runeAt(screen, 7, 7))
	require.Equal(t, tcell.RuneHLine, runeAt(screen, 4, 1))
	require.Equal(t, tcell.RuneVLine, runeAt(screen, 1, 4))

	// Board origin sits two cells inside the frame corner.
	require.Equal(t, 'D', runeAt(screen, 3, 3))
	require.Equal(t, 'G', runeAt(screen, 5, 3))
	require.Equal(t, 'C', runeAt(screen, 3, 5))
	require.Equal(t, ' ', runeAt(screen, 4, 4))
}

func TestDrawMaskedBoard(t *testing.T) {
	c, err := layout.New(3, "CAT", []string{"CATS", "ACT"})
	require.NoError(t, err)
	screen := newScreen(t)

	b := c.Board(func(word string) bool { return word == "CAT" })
	Draw(screen, b, 0, 0, DefaultStyles)

	r, _, style, _ := screen.GetContent(2, 2+3)
	require.Equal(t, '*', r)
	require.Equal(t, DefaultStyles.Mask, style)

	r, _, style, _ = screen.GetContent(2, 2+2)
	require.Equal(t, 'C', r)
	require.Equal(t, DefaultStyles.Letter, style)
}

func TestDrawText(t *testing.T) {
	screen := newScreen(t)
	DrawText(screen, 2, 0, "Niveau 1", tcell.StyleDefault)
	require.Equal(t, 'N', runeAt(screen, 2, 0))
	require.Equal(t, '1', runeAt(screen, 9, 0))
}
