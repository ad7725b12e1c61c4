package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardRevealAll(t *testing.T) {
	c, err := New(3, "CAT", []string{"CATS", "ACT"})
	require.NoError(t, err)

	b := c.Board(nil)
	require.Equal(t, 3, b.Width)
	require.Equal(t, 6, b.Height)
	require.Equal(t, []string{
		"  A",
		"  C",
		"CAT",
		"A  ",
		"T  ",
		"S  ",
	}, b.Rows())
}

func TestBoardMasksHiddenWords(t *testing.T) {
	c, err := New(3, "CAT", []string{"CATS", "ACT"})
	require.NoError(t, err)

	b := c.Board(func(word string) bool { return word == "CAT" })
	require.Equal(t, []string{
		"  *",
		"  *",
		"CAT",
		"*  ",
		"*  ",
		"*  ",
	}, b.Rows())

	none := c.Board(func(string) bool { return false })
	require.Equal(t, []string{"  *", "  *", "***", "*  ", "*  ", "*  "}, none.Rows())
}

func TestBoardAt(t *testing.T) {
	c, err := New(2, "CAT", []string{"DOG"})
	require.NoError(t, err)

	b := c.Board(nil)
	require.Equal(t, 'D', b.At(0, 0))
	require.Equal(t, 'T', b.At(2, 2))
	require.Equal(t, BlankCell, b.At(1, 1))
	require.Equal(t, BlankCell, b.At(-1, 0))
	require.Equal(t, BlankCell, b.At(0, 3))
}

func TestBoardString(t *testing.T) {
	c, err := New(2, "CAT", []string{"DOG"})
	require.NoError(t, err)

	want := "" +
		"+-----+\n" +
		"|     |\n" +
		"| DOG |\n" +
		"|     |\n" +
		"| CAT |\n" +
		"|     |\n" +
		"+-----+\n"
	require.Equal(t, want, c.Board(nil).String())
}
