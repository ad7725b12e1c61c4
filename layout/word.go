package layout

// WordLayout is one word placed on the board.
type WordLayout struct {
	word       string
	chars      []rune
	horizontal bool
	rect       Rect

	// intersections counts the characters of this word already shared with
	// crossing words.
	intersections int
}

func newWordLayout(word string, x, y int, horizontal bool) *WordLayout {
	chars := []rune(word)
	w := &WordLayout{
		word:       word,
		chars:      chars,
		horizontal: horizontal,
	}
	if horizontal {
		w.rect = Rect{Left: x, Top: y, Right: x + len(chars), Bottom: y + 1}
	} else {
		w.rect = Rect{Left: x, Top: y, Right: x + 1, Bottom: y + len(chars)}
	}
	return w
}

func (w *WordLayout) Word() string { return w.word }
func (w *WordLayout) Rect() Rect { return w.rect }
func (w *WordLayout) Intersections() int { return w.intersections }

// Len is the word length in characters.
func (w *WordLayout) Len() int { return len(w.chars) }

// CanIntersect reports whether one more crossing would still leave at least
// one character of the word uncrossed.
func (w *WordLayout) CanIntersect() bool {
	return w.intersections+1 < len(w.chars)
}

func (w *WordLayout) recordIntersection(other *WordLayout) {
	w.intersections++
	other.intersections++
}

// CharAt returns the character drawn at p, if the word covers p.
func (w *WordLayout) CharAt(p Point) (rune, bool) {
	if !w.rect.Contains(p) {
		return 0, false
	}
	offset := p.Y - w.rect.Top
	if w.horizontal {
		offset = p.X - w.rect.Left
	}
	return w.chars[offset], true
}

// CrossesWithMatchingChar reports whether the two words overlap and carry the
// same character on the first shared cell.
func (w *WordLayout) CrossesWithMatchingChar(other *WordLayout) bool {
	common, ok := w.rect.Intersection(other.rect)
	if !ok {
		return false
	}
	corner := Point{X: common.Left, Y: common.Top}
	a, _ := w.CharAt(corner)
	b, _ := other.CharAt(corner)
	return a == b
}

// Placement returns the exported, immutable description of the word.
func (w *WordLayout) Placement() Placement {
	return Placement{
		Word:       w.word,
		X:          w.rect.Left,
		Y:          w.rect.Top,
		Horizontal: w.horizontal,
	}
}

// Placement describes where a word sits on the board.
type Placement struct {
	Word       string `json:"word"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Horizontal bool   `json:"horizontal"`
}

// Rect returns the cells covered by the placement.
func (p Placement) Rect() Rect {
	return newWordLayout(p.Word, p.X, p.Y, p.Horizontal).rect
}
