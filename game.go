package main

import (
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/bodul/wordcross/layout"
)

// Player represents a connected player.
type Player struct {
	Pseudo   string    `json:"pseudo"`
	Color    string    `json:"color"`
	Found    int       `json:"found"`
	JoinedAt time.Time `json:"joined_at"`
}

// GameSession is a collaborative game on a level: players share the words
// found so far.
type GameSession struct {
	ID         string             `json:"id"`
	LevelID    string             `json:"level_id"`
	Players    map[string]*Player `json:"players"`
	Found      []string           `json:"found"`
	FoundBonus []string           `json:"found_bonus"`
	CreatedAt  time.Time          `json:"created_at"`

	level *Level
	mu    sync.Mutex
}

// GameState is a consistent copy of a session, with the board masked for
// the words not found yet.
type GameState struct {
	ID         string             `json:"id"`
	LevelID    string             `json:"level_id"`
	Letters    []string           `json:"letters"`
	Board      []string           `json:"board"`
	Players    map[string]Player  `json:"players"`
	Found      []string           `json:"found"`
	FoundBonus []string           `json:"found_bonus"`
	Remaining  int                `json:"remaining"`
	BonusTotal int                `json:"bonus_total"`
	Solved     bool               `json:"solved"`
	Placements []layout.Placement `json:"placements"` // found words only
}

// GuessOutcome classifies a guessed word.
type GuessOutcome string

const (
	GuessFound  GuessOutcome = "found"
	GuessBonus  GuessOutcome = "bonus"
	GuessRepeat GuessOutcome = "repeat"
	GuessMiss   GuessOutcome = "miss"
)

// GuessResult is the answer to a guess.
type GuessResult struct {
	Outcome   GuessOutcome      `json:"outcome"`
	Word      string            `json:"word"`
	Placement *layout.Placement `json:"placement,omitempty"`
	// Near is set on a miss close to a word still to find.
	Near   bool `json:"near,omitempty"`
	Solved bool `json:"solved"`
}

// playerColors is the palette assigned to players in order.
var playerColors = []string{
	"#2563eb", "#dc2626", "#16a34a", "#9333ea",
	"#ea580c", "#0891b2", "#c026d3", "#ca8a04",
}

// AddPlayer adds a player to the session and returns the player.
func (g *GameSession) AddPlayer(pseudo string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.Players[pseudo]; ok {
		return p
	}

	p := &Player{
		Pseudo:   pseudo,
		Color:    playerColors[len(g.Players)%len(playerColors)],
		JoinedAt: time.Now(),
	}
	g.Players[pseudo] = p
	return p
}

// RemovePlayer removes a player from the session.
func (g *GameSession) RemovePlayer(pseudo string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.Players, pseudo)
}

// Guess checks a word proposed by a player and records it when found.
func (g *GameSession) Guess(pseudo, word string) GuessResult {
	word = normalizeWord(word)

	g.mu.Lock()
	defer g.mu.Unlock()

	res := GuessResult{Word: word}
	switch {
	case slices.Contains(g.Found, word) || slices.Contains(g.FoundBonus, word):
		res.Outcome = GuessRepeat
	case g.level.IsWord(word):
		res.Outcome = GuessFound
		g.Found = append(g.Found, word)
		if p, ok := g.Players[pseudo]; ok {
			p.Found++
		}
		if pl, ok := g.level.layout.Lookup(word); ok {
			res.Placement = &pl
		}
	case g.level.IsBonus(word):
		res.Outcome = GuessBonus
		g.FoundBonus = append(g.FoundBonus, word)
	default:
		res.Outcome = GuessMiss
		res.Near = g.nearMiss(word)
	}
	res.Solved = g.solved()
	return res
}

// nearMiss reports whether word is a small typo away from a word not found yet.
func (g *GameSession) nearMiss(word string) bool {
	if utf8.RuneCountInString(word) < 3 {
		return false
	}
	for _, w := range append(slices.Clone(g.level.Words), g.level.BonusWords...) {
		if slices.Contains(g.Found, w) || slices.Contains(g.FoundBonus, w) {
			continue
		}
		if levenshtein.ComputeDistance(word, w) <= typoLimit(utf8.RuneCountInString(w)) {
			return true
		}
	}
	return false
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// solved must be called with g.mu held.
func (g *GameSession) solved() bool {
	return len(g.Found) == len(g.level.Words)
}

// State returns a copy of the session with the masked board.
func (g *GameSession) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	found := slices.Clone(g.Found)
	board := g.level.Board(func(w string) bool {
		return slices.Contains(found, w)
	})

	players := make(map[string]Player, len(g.Players))
	for k, p := range g.Players {
		players[k] = *p
	}

	placements := make([]layout.Placement, 0, len(found))
	for _, w := range found {
		if pl, ok := g.level.layout.Lookup(w); ok {
			placements = append(placements, pl)
		}
	}

	return GameState{
		ID:         g.ID,
		LevelID:    g.LevelID,
		Letters:    slices.Clone(g.level.Letters),
		Board:      board.Rows(),
		Players:    players,
		Found:      found,
		FoundBonus: slices.Clone(g.FoundBonus),
		Remaining:  len(g.level.Words) - len(found),
		BonusTotal: len(g.level.BonusWords),
		Solved:     g.solved(),
		Placements: placements,
	}
}
