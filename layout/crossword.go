// Package layout places the words of a level on an integer grid so that they
// cross at shared letters without otherwise touching.
//
// The search is deterministic: for the same ordered words, count and bounds
// it always produces the same board.
package layout

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"
)

// CrosswordLayout is the result of laying out a level.
type CrosswordLayout struct {
	count     int
	words     []string
	maxWidth  int // 0 means unbounded
	maxHeight int // 0 means unbounded

	placed []*WordLayout
	bounds Rect

	// cursors rotate through the perimeter positions of each fallback group.
	cursors [3]int
}

// Option configures a layout.
type Option func(*CrosswordLayout)

// WithBounds caps the board size. Zero leaves a dimension unbounded.
func WithBounds(maxWidth, maxHeight int) Option {
	return func(c *CrosswordLayout) {
		c.maxWidth = maxWidth
		c.maxHeight = maxHeight
	}
}

// New lays out count words taken from seed followed by others, in that order.
// The seed is skipped when empty. Words are never reordered; see ByLengthDesc.
func New(count int, seed string, others []string, opts ...Option) (*CrosswordLayout, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: need at least 2 words, got %d", ErrConfiguration, count)
	}

	words := make([]string, 0, len(others)+1)
	if seed != "" {
		words = append(words, seed)
	}
	words = append(words, others...)
	if len(words) < count {
		return nil, fmt.Errorf("%w: %d words for %d placements", ErrConfiguration, len(words), count)
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word", ErrConfiguration)
		}
		if seen[w] {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrConfiguration, w)
		}
		seen[w] = true
	}

	c := &CrosswordLayout{
		count:  count,
		words:  words,
		bounds: Rect{Right: 1, Bottom: 1},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxWidth < 0 || c.maxHeight < 0 {
		return nil, fmt.Errorf("%w: negative bounds %dx%d", ErrConfiguration, c.maxWidth, c.maxHeight)
	}

	if err := c.doLayout(); err != nil {
		return nil, err
	}
	return c, nil
}

// ByLengthDesc returns a copy of words sorted longest first, keeping the
// relative order of words of equal length.
func ByLengthDesc(words []string) []string {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return sorted
}

func (c *CrosswordLayout) doLayout() error {
	if err := c.placeFirst(c.words[0]); err != nil {
		return err
	}

	pending := slices.Clone(c.words[1:])
	for len(c.placed) < c.count {
		idx := slices.IndexFunc(pending, c.cross)
		if idx < 0 {
			if err := c.force(pending[0]); err != nil {
				return err
			}
			idx = 0
		}
		pending = slices.Delete(pending, idx, idx+1)
	}
	return nil
}

func (c *CrosswordLayout) placeFirst(word string) error {
	n := utf8.RuneCountInString(word)
	horizontal := c.maxWidth == 0 || c.maxWidth >= n
	if c.place(word, 0, 0, horizontal, nil) {
		return nil
	}
	return fmt.Errorf("%w: %q does not fit in %dx%d", ErrLayoutImpossible, word, c.maxWidth, c.maxHeight)
}

// cross places word perpendicular to a placed word through a shared letter.
func (c *CrosswordLayout) cross(word string) bool {
	chars := []rune(word)
	for _, target := range c.placed {
		if !target.CanIntersect() {
			continue
		}
		for i, ch := range chars {
			for j, tch := range target.chars {
				if ch != tch {
					continue
				}
				x, y := target.rect.Left-i, target.rect.Top+j
				if target.horizontal {
					x, y = target.rect.Left+j, target.rect.Top-i
				}
				if c.place(word, x, y, !target.horizontal, target) {
					return true
				}
			}
		}
	}
	return false
}

// force places word without crossing anything: first inside the current
// board, spiralling out from its center, then around its perimeter.
func (c *CrosswordLayout) force(word string) error {
	for p := range c.bounds.SpiralPoints() {
		if c.place(word, p.X, p.Y, true, nil) || c.place(word, p.X, p.Y, false, nil) {
			return nil
		}
	}

	n := utf8.RuneCountInString(word)
	for group := range c.cursors {
		anchors := perimeterAnchors(group, c.bounds, n)
		for range anchors {
			a := anchors[c.cursors[group]%len(anchors)]
			c.cursors[group]++
			if c.place(word, a.x, a.y, a.horizontal, nil) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: no room left for %q within %dx%d", ErrLayoutImpossible, word, c.maxWidth, c.maxHeight)
}

type anchor struct {
	x, y       int
	horizontal bool
}

// perimeterAnchors lists the fallback positions of a group around r for a
// word of n characters, clockwise from the top side.
func perimeterAnchors(group int, r Rect, n int) []anchor {
	switch group {
	case 0:
		// Touching the board.
		return []anchor{
			{r.Left, r.Top - 1, true},
			{r.Right - n, r.Top - 1, true},
			{r.Right, r.Top, false},
			{r.Right, r.Bottom - n, false},
			{r.Right - n, r.Bottom, true},
			{r.Left, r.Bottom, true},
			{r.Left - 1, r.Bottom - n, false},
			{r.Left - 1, r.Top, false},
		}
	case 1:
		// One cell away, lying along the side.
		return []anchor{
			{r.Left, r.Top - 2, true},
			{r.Right + 1, r.Top, false},
			{r.Left, r.Bottom + 1, true},
			{r.Left - 2, r.Top, false},
		}
	default:
		// One cell away, sticking out of the side.
		return []anchor{
			{r.Left, r.Top - 1 - n, false},
			{r.Right + 1, r.Top, true},
			{r.Left, r.Bottom + 1, false},
			{r.Left - 1 - n, r.Top, true},
		}
	}
}

// place validates a candidate and commits it when valid. inserted is the
// placed word the candidate crosses, nil for a plain placement.
func (c *CrosswordLayout) place(word string, x, y int, horizontal bool, inserted *WordLayout) bool {
	candidate := newWordLayout(word, x, y, horizontal)
	if !c.fits(candidate.rect) {
		return false
	}

	var passed []*WordLayout
	for _, other := range c.placed {
		if other == inserted {
			continue
		}
		switch classifyContact(candidate, other, inserted) {
		case contactIllegal:
			return false
		case contactCrossing:
			passed = append(passed, other)
		}
	}

	crossings := len(passed)
	if inserted != nil {
		crossings++
	}
	if crossings > 0 && crossings >= candidate.Len() {
		return false
	}

	c.placed = append(c.placed, candidate)
	if len(c.placed) == 1 {
		c.bounds = candidate.rect
	} else {
		c.bounds = c.bounds.Merge(candidate.rect)
	}
	if inserted != nil {
		candidate.recordIntersection(inserted)
	}
	for _, other := range passed {
		candidate.recordIntersection(other)
	}
	return true
}

// fits reports whether adding r keeps the board within bounds.
func (c *CrosswordLayout) fits(r Rect) bool {
	merged := r
	if len(c.placed) > 0 {
		merged = c.bounds.Merge(r)
	}
	if c.maxWidth > 0 && merged.Width() > c.maxWidth {
		return false
	}
	if c.maxHeight > 0 && merged.Height() > c.maxHeight {
		return false
	}
	return true
}

// Count is the number of placed words.
func (c *CrosswordLayout) Count() int { return len(c.placed) }

// Bounds is the smallest rect covering every placed word.
func (c *CrosswordLayout) Bounds() Rect { return c.bounds }

// Words returns the placed words in placement order.
func (c *CrosswordLayout) Words() []string {
	words := make([]string, len(c.placed))
	for i, w := range c.placed {
		words[i] = w.word
	}
	return words
}

// BonusWords returns the supplied words that were not placed, in input order.
func (c *CrosswordLayout) BonusWords() []string {
	placed := make(map[string]bool, len(c.placed))
	for _, w := range c.placed {
		placed[w.word] = true
	}
	var bonus []string
	for _, w := range c.words {
		if !placed[w] {
			bonus = append(bonus, w)
		}
	}
	return bonus
}

// Placements returns every placed word in placement order.
func (c *CrosswordLayout) Placements() []Placement {
	out := make([]Placement, len(c.placed))
	for i, w := range c.placed {
		out[i] = w.Placement()
	}
	return out
}

// Lookup returns the placement of word, if it was placed.
func (c *CrosswordLayout) Lookup(word string) (Placement, bool) {
	for _, w := range c.placed {
		if w.word == word {
			return w.Placement(), true
		}
	}
	return Placement{}, false
}
