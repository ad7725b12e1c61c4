package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bodul/wordcross/layout"
)

// errLetters is returned when a word uses letters the seed does not have.
var errLetters = errors.New("word not spelled from the seed letters")

// Layout time grows quickly with the seed and the word list, and the engine
// cannot be interrupted: requests beyond these limits are refused.
const (
	maxSeedLength = 16 // runes
	maxLevelWords = 60
)

// LevelRequest describes a level to lay out.
type LevelRequest struct {
	Seed  string   `json:"seed"`
	Words []string `json:"words"`
	// Count is the number of words to place, all of them when zero.
	Count     int `json:"count"`
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
	// LongestFirst sorts candidates by descending length before layout.
	// Otherwise they are tried in the given order.
	LongestFirst bool `json:"longest_first"`
}

// Level is a laid out puzzle.
type Level struct {
	ID         string             `json:"id"`
	Seed       string             `json:"seed"`
	Letters    []string           `json:"letters"` // shuffled seed letters
	Words      []string           `json:"words"`   // placement order
	BonusWords []string           `json:"bonus_words"`
	Placements []layout.Placement `json:"placements"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	CreatedAt  time.Time          `json:"created_at"`

	layout *layout.CrosswordLayout
}

// BuildLevel checks the words of req against its seed and lays them out.
func BuildLevel(req LevelRequest) (*Level, error) {
	seed := normalizeWord(req.Seed)
	if seed == "" {
		return nil, fmt.Errorf("%w: seed word required", layout.ErrConfiguration)
	}
	if n := utf8.RuneCountInString(seed); n > maxSeedLength {
		return nil, fmt.Errorf("%w: seed of %d letters, at most %d", layout.ErrConfiguration, n, maxSeedLength)
	}
	if len(req.Words) > maxLevelWords {
		return nil, fmt.Errorf("%w: %d words, at most %d", layout.ErrConfiguration, len(req.Words), maxLevelWords)
	}

	words := make([]string, 0, len(req.Words))
	for _, w := range req.Words {
		w = normalizeWord(w)
		if !spelledFrom(w, seed) {
			return nil, fmt.Errorf("%w: %q from %q", errLetters, w, seed)
		}
		words = append(words, w)
	}
	if req.LongestFirst {
		words = layout.ByLengthDesc(words)
	}

	count := req.Count
	if count == 0 {
		count = len(words) + 1
	}

	c, err := layout.New(count, seed, words, layout.WithBounds(req.MaxWidth, req.MaxHeight))
	if err != nil {
		return nil, err
	}

	letters := make([]string, 0, len(seed))
	for _, r := range seed {
		letters = append(letters, string(r))
	}
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	bounds := c.Bounds()
	return &Level{
		Seed:       seed,
		Letters:    letters,
		Words:      c.Words(),
		BonusWords: c.BonusWords(),
		Placements: c.Placements(),
		Width:      bounds.Width(),
		Height:     bounds.Height(),
		layout:     c,
	}, nil
}

// Board renders the level, masking the words for which reveal is false.
func (l *Level) Board(reveal func(word string) bool) layout.Board {
	return l.layout.Board(reveal)
}

// IsWord reports whether w is one of the placed words.
func (l *Level) IsWord(w string) bool {
	_, ok := l.layout.Lookup(w)
	return ok
}

// IsBonus reports whether w is a bonus word of the level.
func (l *Level) IsBonus(w string) bool {
	return slices.Contains(l.BonusWords, w)
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// spelledFrom reports whether word only uses letters of seed, each at most
// as many times as the seed has it.
func spelledFrom(word, seed string) bool {
	if word == "" {
		return false
	}
	available := make(map[rune]int)
	for _, r := range seed {
		available[r]++
	}
	for _, r := range word {
		available[r]--
		if available[r] < 0 {
			return false
		}
	}
	return true
}

// candidateWords cleans suggested words for seed: normalized, spelled from
// the seed, without the seed itself and without duplicates.
func candidateWords(seed string, suggested []string) []string {
	seen := map[string]bool{seed: true}
	var words []string
	for _, w := range suggested {
		w = normalizeWord(w)
		if seen[w] || !spelledFrom(w, seed) {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}
