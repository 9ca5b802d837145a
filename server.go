package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

//go:embed frontend
var frontendFS embed.FS

const (
	maxBodySize = 4 << 10 // request bodies are tiny JSON documents

	// maxHeadlineLen caps how many characters of headline end up in the
	// grid; longer candidates are filtered or truncated.
	maxHeadlineLen = 60

	defaultHintBudget = 3

	// hintHighlightDelay is how long the hinted column stays visually
	// marked before the transient cue clears.
	hintHighlightDelay = 3 * time.Second
)

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server is the main HTTP server.
type Server struct {
	mux       *http.ServeMux
	store     *Store
	feeds     *FeedClient
	sse       *Broadcaster
	hints     int
	newGameRL *rateLimiter
	moveRL    *rateLimiter

	// newRNG is the randomness seam: every random decision in a session
	// (headline pick, filler letters, scramble, hint tie-breaks) flows
	// from the *rand.Rand it hands out. Tests swap in fixed seeds.
	newRNG func() *rand.Rand
}

// NewServer creates a configured HTTP server.
func NewServer(store *Store, feeds *FeedClient, hints int) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		store:     store,
		feeds:     feeds,
		sse:       NewBroadcaster(),
		hints:     hints,
		newGameRL: newRateLimiter(10, time.Minute),  // 10 new games/min per IP
		moveRL:    newRateLimiter(60, time.Second),  // 60 rotations/sec per IP
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/feeds", s.handleListFeeds)

	s.mux.HandleFunc("POST /api/games", s.handleNewGame)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /api/games/{id}/rotate", s.handleRotate)
	s.mux.HandleFunc("POST /api/games/{id}/hint", s.handleHint)
	s.mux.HandleFunc("GET /api/games/{id}/events", s.handleGameEvents)

	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	fileServer := http.FileServer(http.FS(frontendDir))
	s.mux.HandleFunc("GET /game/{id}", s.handleGamePage)
	s.mux.Handle("GET /", fileServer)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// GET /api/feeds — the category table for the UI selector.
func (s *Server) handleListFeeds(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feeds)
}

// POST /api/games — fetch a headline and build a fresh puzzle session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if !s.newGameRL.allow(r.RemoteAddr) {
		jsonError(w, "Liikaa pyyntöjä, yritä hetken päästä", http.StatusTooManyRequests)
		return
	}

	if s.feeds == nil {
		jsonError(w, "Uutislähdettä ei ole määritetty", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Category string `json:"category"`
		Rows     int    `json:"rows"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Virheellinen pyyntö", http.StatusBadRequest)
		return
	}

	rng := s.newRNG()
	feed := lookupFeed(req.Category, rng)

	cands, err := s.feeds.Fetch(r.Context(), feed)
	if err != nil {
		log.Printf("feed fetch error: %v", err)
	}
	if len(cands) == 0 {
		// The engine could still serve its one-cell placeholder here,
		// but an unsolvable puzzle is worse than an honest error.
		jsonError(w, "Uutisia ei saatu haettua, yritä uudelleen", http.StatusBadGateway)
		return
	}

	chosen := SelectHeadline(cands, maxHeadlineLen, rng)
	sess := NewSession(chosen, req.Rows, s.hints, rng)
	s.store.SaveSession(sess)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sess.View())
}

// GET /api/games/{id} — current puzzle state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess := s.store.GetSession(r.PathValue("id"))
	if sess == nil {
		jsonError(w, "Peliä ei löydy", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.View())
}

// POST /api/games/{id}/rotate — rotate one column.
func (s *Server) handleRotate(w http.ResponseWriter, r *http.Request) {
	if !s.moveRL.allow(r.RemoteAddr) {
		jsonError(w, "Liikaa pyyntöjä, yritä hetken päästä", http.StatusTooManyRequests)
		return
	}

	sess := s.store.GetSession(r.PathValue("id"))
	if sess == nil {
		jsonError(w, "Peliä ei löydy", http.StatusNotFound)
		return
	}

	var req struct {
		Col   int `json:"col"`
		Shift int `json:"shift"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Virheellinen pyyntö", http.StatusBadRequest)
		return
	}

	applied, solved := sess.Rotate(req.Col, req.Shift)

	if applied {
		s.sse.BroadcastEvent(sess.ID, "rotate", map[string]any{
			"col":   req.Col,
			"shift": req.Shift,
		})
	}
	if applied && solved {
		s.sse.BroadcastEvent(sess.ID, "solved", map[string]any{
			"link": sess.Link,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.View())
}

// POST /api/games/{id}/hint — resolve and lock one mismatched column.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	sess := s.store.GetSession(r.PathValue("id"))
	if sess == nil {
		jsonError(w, "Peliä ei löydy", http.StatusNotFound)
		return
	}

	if col, ok := sess.Hint(); ok {
		sess.ScheduleHintClear(hintHighlightDelay, func() {
			s.sse.BroadcastEvent(sess.ID, "hint_clear", nil)
		})
		s.sse.BroadcastEvent(sess.ID, "hint", map[string]any{"col": col})
		if sess.Solved() {
			s.sse.BroadcastEvent(sess.ID, "solved", map[string]any{
				"link": sess.Link,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.View())
}

// GET /api/games/{id}/events — SSE stream.
func (s *Server) handleGameEvents(w http.ResponseWriter, r *http.Request) {
	sess := s.store.GetSession(r.PathValue("id"))
	if sess == nil {
		jsonError(w, "Peliä ei löydy", http.StatusNotFound)
		return
	}

	s.sse.ServeSSE(w, r, sess.ID, func(c *client) {
		// Send the full state on connect.
		evt, _ := json.Marshal(map[string]any{
			"type":  "game_state",
			"state": sess.View(),
		})
		c.ch <- string(evt)
	})
}

// GET /game/{id} — serve the game page.
func (s *Server) handleGamePage(w http.ResponseWriter, _ *http.Request) {
	data, _ := frontendFS.ReadFile("frontend/game.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
