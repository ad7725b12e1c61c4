// Command preview lays out a level and shows the resulting board.
//
//	preview -seed planets -count 6 plan plane pant lean net ten
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bodul/wordcross/layout"
	"github.com/bodul/wordcross/termboard"
)

func main() {
	var (
		seed      = flag.String("seed", "", "Seed word, placed first")
		count     = flag.Int("count", 0, "Number of words to place (default: all)")
		maxWidth  = flag.Int("width", 0, "Maximum board width, 0 for unbounded")
		maxHeight = flag.Int("height", 0, "Maximum board height, 0 for unbounded")
		byLength  = flag.Bool("longest-first", false, "Sort candidate words longest first")
		text      = flag.Bool("text", false, "Print the board as text instead of opening the terminal view")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] word...\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	words := flag.Args()
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	if *byLength {
		words = layout.ByLengthDesc(words)
	}
	n := *count
	if n == 0 {
		n = len(words)
		if *seed != "" {
			n++
		}
	}

	c, err := layout.New(n, strings.ToLower(*seed), words, layout.WithBounds(*maxWidth, *maxHeight))
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	if *text {
		fmt.Print(c.Board(nil).String())
		if bonus := c.BonusWords(); len(bonus) > 0 {
			fmt.Printf("Bonus: %s\n", strings.Join(bonus, " "))
		}
		return
	}

	if err := show(c); err != nil {
		log.Fatal(err)
	}
}

// show paints the board and waits for a key press.
func show(c *layout.CrosswordLayout) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	b := c.Board(nil)
	for {
		screen.Clear()
		_, h := termboard.Draw(screen, b, 1, 1, termboard.DefaultStyles)
		status := fmt.Sprintf("%d mots, %dx%d", c.Count(), b.Width, b.Height)
		termboard.DrawText(screen, 1, h+2, status, tcell.StyleDefault)
		termboard.DrawText(screen, 1, h+3, "Appuyez sur une touche pour quitter", tcell.StyleDefault.Dim(true))
		screen.Show()

		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return nil
		}
	}
}
