package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"
	"time"
)

// Store holds all levels and game sessions in memory.
type Store struct {
	mu     sync.RWMutex
	levels map[string]*Level
	games  map[string]*GameSession
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		levels: make(map[string]*Level),
		games:  make(map[string]*GameSession),
	}
}

// SaveLevel stores a level and returns it with a generated ID.
func (s *Store) SaveLevel(l *Level) *Level {
	l.ID = generateID()
	l.CreatedAt = time.Now()

	s.mu.Lock()
	s.levels[l.ID] = l
	s.mu.Unlock()

	return l
}

// GetLevel returns a level by ID, or nil if not found.
func (s *Store) GetLevel(id string) *Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels[id]
}

// ListLevels returns all levels, most recent first.
func (s *Store) ListLevels() []*Level {
	s.mu.RLock()
	list := make([]*Level, 0, len(s.levels))
	for _, l := range s.levels {
		list = append(list, l)
	}
	s.mu.RUnlock()

	slices.SortFunc(list, func(a, b *Level) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list
}

// CreateGame creates a new game session for a given level.
// Returns an error if the level does not exist.
func (s *Store) CreateGame(levelID string) (*GameSession, error) {
	level := s.GetLevel(levelID)
	if level == nil {
		return nil, fmt.Errorf("level not found: %s", levelID)
	}

	game := &GameSession{
		ID:         generateID(),
		LevelID:    levelID,
		Players:    make(map[string]*Player),
		Found:      []string{},
		FoundBonus: []string{},
		CreatedAt:  time.Now(),
		level:      level,
	}

	s.mu.Lock()
	s.games[game.ID] = game
	s.mu.Unlock()

	return game, nil
}

// GetGame returns a game session by ID, or nil if not found.
func (s *Store) GetGame(id string) *GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[id]
}

// ListGames returns all game sessions.
func (s *Store) ListGames() []*GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*GameSession, 0, len(s.games))
	for _, g := range s.games {
		list = append(list, g)
	}
	return list
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
