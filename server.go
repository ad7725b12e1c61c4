package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bodul/wordcross/layout"
)

//go:embed frontend
var frontendFS embed.FS

const (
	maxBodySize        = 64 << 10 // 64 Ko
	maxBatchLevels     = 20
	defaultSuggestions = 30
)

// errNoSuggester is returned when a level has no words and no suggester is configured.
var errNoSuggester = errors.New("no word suggester configured")

// Server is the main HTTP server.
type Server struct {
	mux       *http.ServeMux
	store     *Store
	suggester WordSuggester
	sse       *Broadcaster
	levelRL   *rateLimiter
	guessRL   *rateLimiter

	maxWidth  int
	maxHeight int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithDefaultBounds sets the board bounds used by level requests without bounds.
func WithDefaultBounds(maxWidth, maxHeight int) ServerOption {
	return func(s *Server) {
		s.maxWidth = maxWidth
		s.maxHeight = maxHeight
	}
}

// NewServer creates a configured HTTP server. suggester may be nil.
func NewServer(store *Store, suggester WordSuggester, opts ...ServerOption) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		store:     store,
		suggester: suggester,
		sse:       NewBroadcaster(),
		levelRL:   newRateLimiter(10, time.Minute), // 10 levels/min per IP
		guessRL:   newRateLimiter(20, time.Second), // 20 guesses/sec per IP
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Level API
	s.mux.HandleFunc("POST /api/levels", s.handleCreateLevel)
	s.mux.HandleFunc("POST /api/levels/batch", s.handleCreateLevels)
	s.mux.HandleFunc("GET /api/levels", s.handleListLevels)
	s.mux.HandleFunc("GET /api/levels/{id}", s.handleGetLevel)
	s.mux.HandleFunc("GET /api/levels/{id}/board", s.handleLevelBoard)

	// Game API
	s.mux.HandleFunc("POST /api/games", s.handleCreateGame)
	s.mux.HandleFunc("GET /api/games", s.handleListGames)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /api/games/{id}/join", s.handleJoinGame)
	s.mux.HandleFunc("POST /api/games/{id}/guess", s.handleGuess)
	s.mux.HandleFunc("GET /api/games/{id}/events", s.handleGameEvents)

	// Frontend static files
	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	fileServer := http.FileServer(http.FS(frontendDir))
	s.mux.HandleFunc("GET /game/{id}", s.handleGamePage)
	s.mux.Handle("GET /", fileServer)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// --- Level handlers ---

// POST /api/levels — lay out a level and save it.
func (s *Server) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	if !s.levelRL.allow(r.RemoteAddr) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	var req LevelRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Requête invalide", http.StatusBadRequest)
		return
	}

	level, err := s.buildLevel(r.Context(), req)
	if err != nil {
		levelError(w, err)
		return
	}
	s.store.SaveLevel(level)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(level)
}

type batchResult struct {
	Level *Level `json:"level,omitempty"`
	Error string `json:"error,omitempty"`
}

// POST /api/levels/batch — lay out several levels concurrently.
// Results come back in request order.
func (s *Server) handleCreateLevels(w http.ResponseWriter, r *http.Request) {
	if !s.levelRL.allow(r.RemoteAddr) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	var reqs []LevelRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		jsonError(w, "Requête invalide : tableau de niveaux attendu", http.StatusBadRequest)
		return
	}
	if len(reqs) > maxBatchLevels {
		jsonError(w, fmt.Sprintf("Au plus %d niveaux par lot", maxBatchLevels), http.StatusBadRequest)
		return
	}

	results := make([]batchResult, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			level, err := s.buildLevel(r.Context(), req)
			if err != nil {
				results[i].Error = err.Error()
				return
			}
			results[i].Level = s.store.SaveLevel(level)
		}()
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// buildLevel fills in the server defaults and suggested words, then lays out req.
func (s *Server) buildLevel(ctx context.Context, req LevelRequest) (*Level, error) {
	if req.MaxWidth == 0 && req.MaxHeight == 0 {
		req.MaxWidth, req.MaxHeight = s.maxWidth, s.maxHeight
	}

	if len(req.Words) == 0 {
		if s.suggester == nil {
			return nil, errNoSuggester
		}
		seed := normalizeWord(req.Seed)
		if seed == "" {
			return nil, fmt.Errorf("%w: seed word required", layout.ErrConfiguration)
		}
		limit := min(max(2*req.Count, defaultSuggestions), maxLevelWords)
		suggested, err := s.suggester.SuggestWords(ctx, seed, limit)
		if err != nil {
			return nil, fmt.Errorf("suggest words: %w", err)
		}
		req.Words = candidateWords(seed, suggested)
		if len(req.Words) > maxLevelWords {
			req.Words = req.Words[:maxLevelWords]
		}
	}

	// The layout itself cannot be cancelled, skip it when the client is gone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return BuildLevel(req)
}

// GET /api/levels — list all levels.
func (s *Server) handleListLevels(w http.ResponseWriter, _ *http.Request) {
	levels := s.store.ListLevels()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(levels)
}

// GET /api/levels/{id} — get a single level.
func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	level := s.store.GetLevel(r.PathValue("id"))
	if level == nil {
		jsonError(w, "Niveau introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(level)
}

// GET /api/levels/{id}/board — the solved board as framed text.
func (s *Server) handleLevelBoard(w http.ResponseWriter, r *http.Request) {
	level := s.store.GetLevel(r.PathValue("id"))
	if level == nil {
		jsonError(w, "Niveau introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, level.Board(nil).String())
}

// --- Game handlers ---

// POST /api/games — create a game from a level.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LevelID string `json:"level_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LevelID == "" {
		jsonError(w, "Champ 'level_id' requis", http.StatusBadRequest)
		return
	}

	game, err := s.store.CreateGame(req.LevelID)
	if err != nil {
		jsonError(w, "Niveau introuvable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(game.State())
}

// GET /api/games — list all game sessions.
func (s *Server) handleListGames(w http.ResponseWriter, _ *http.Request) {
	games := s.store.ListGames()
	states := make([]GameState, 0, len(games))
	for _, g := range games {
		states = append(states, g.State())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(states)
}

// GET /api/games/{id} — get current game state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game := s.store.GetGame(r.PathValue("id"))
	if game == nil {
		jsonError(w, "Partie introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(game.State())
}

// POST /api/games/{id}/join — join a game with a pseudo.
func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	game := s.store.GetGame(r.PathValue("id"))
	if game == nil {
		jsonError(w, "Partie introuvable", http.StatusNotFound)
		return
	}

	var req struct {
		Pseudo string `json:"pseudo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Pseudo == "" {
		jsonError(w, "Champ 'pseudo' requis", http.StatusBadRequest)
		return
	}

	pseudo := sanitizePseudo(req.Pseudo)
	if pseudo == "" {
		jsonError(w, "Pseudo invalide", http.StatusBadRequest)
		return
	}

	player := game.AddPlayer(pseudo)
	s.sse.Broadcast(game.ID, Event{Type: "player_joined", Data: map[string]any{
		"pseudo": player.Pseudo,
		"color":  player.Color,
	}})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(player)
}

// POST /api/games/{id}/guess — propose a word.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	if !s.guessRL.allow(r.RemoteAddr) {
		jsonError(w, "Trop de requêtes, réessayez plus tard", http.StatusTooManyRequests)
		return
	}

	game := s.store.GetGame(r.PathValue("id"))
	if game == nil {
		jsonError(w, "Partie introuvable", http.StatusNotFound)
		return
	}

	var req struct {
		Pseudo string `json:"pseudo"`
		Word   string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Requête invalide", http.StatusBadRequest)
		return
	}
	word := normalizeWord(req.Word)
	if word == "" || utf8.RuneCountInString(word) > 32 {
		jsonError(w, "Mot invalide", http.StatusBadRequest)
		return
	}

	pseudo := sanitizePseudo(req.Pseudo)
	res := game.Guess(pseudo, word)

	switch res.Outcome {
	case GuessFound:
		s.sse.Broadcast(game.ID, Event{Type: "word_found", Data: map[string]any{
			"word":      res.Word,
			"pseudo":    pseudo,
			"placement": res.Placement,
			"board":     game.State().Board,
		}})
		if res.Solved {
			s.sse.Broadcast(game.ID, Event{Type: "level_solved", Data: map[string]any{
				"pseudo": pseudo,
			}})
		}
	case GuessBonus:
		s.sse.Broadcast(game.ID, Event{Type: "bonus_found", Data: map[string]any{
			"word":   res.Word,
			"pseudo": pseudo,
		}})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// GET /api/games/{id}/events — SSE stream.
func (s *Server) handleGameEvents(w http.ResponseWriter, r *http.Request) {
	game := s.store.GetGame(r.PathValue("id"))
	if game == nil {
		jsonError(w, "Partie introuvable", http.StatusNotFound)
		return
	}

	playerPseudo := sanitizePseudo(r.URL.Query().Get("pseudo"))

	s.sse.ServeSSE(w, r, game.ID, func(c *client) {
		c.Send(Event{Type: "game_state", Data: map[string]any{
			"state": game.State(),
		}})
	}, func() {
		if playerPseudo != "" {
			game.RemovePlayer(playerPseudo)
			s.sse.Broadcast(game.ID, Event{Type: "player_left", Data: map[string]any{
				"pseudo": playerPseudo,
			}})
		}
	})
}

// --- Frontend page handlers ---

// GET /game/{id} — serve the game page.
func (s *Server) handleGamePage(w http.ResponseWriter, _ *http.Request) {
	data, _ := frontendFS.ReadFile("frontend/game.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// --- Helpers ---

// levelError maps level creation errors to HTTP responses.
func levelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNoSuggester):
		jsonError(w, "Suggestion de mots non configurée : fournissez le champ 'words'", http.StatusServiceUnavailable)
	case errors.Is(err, layout.ErrConfiguration), errors.Is(err, errLetters):
		jsonError(w, "Niveau invalide : "+err.Error(), http.StatusBadRequest)
	case errors.Is(err, layout.ErrLayoutImpossible):
		jsonError(w, "Placement impossible dans les dimensions demandées", http.StatusUnprocessableEntity)
	default:
		log.Printf("build level error: %v", err)
		jsonError(w, "Erreur lors de la génération du niveau", http.StatusInternalServerError)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizePseudo(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 20 {
		s = string([]rune(s)[:20])
	}
	return s
}
