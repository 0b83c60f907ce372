// Package api provides the HTTP API for observing a running zoo.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talgya/ozzoo/internal/chronicle"
	"github.com/talgya/ozzoo/internal/engine"
)

// Server serves the zoo state over HTTP.
type Server struct {
	Manager  *engine.Manager
	Loop     *engine.Loop
	DB       *chronicle.DB
	Hub      *Hub
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/enclosures", s.handleEnclosures)
	mux.HandleFunc("/api/v1/animals", s.handleAnimals)
	mux.HandleFunc("/api/v1/reports", s.handleReports)
	mux.HandleFunc("/api/v1/alerts", s.handleAlerts)
	mux.HandleFunc("/api/v1/actions", s.handleActions)
	mux.HandleFunc("/api/v1/history", s.handleHistory)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))

	// Live day report stream.
	if s.Hub != nil {
		mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(s.Hub, w, r)
		})
	}

	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
// GET requests pass through (for endpoints that support both GET and POST).
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no OZZOO_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.Manager.Status()
	writeJSON(w, map[string]any{
		"zoo":       status,
		"day":       s.Manager.Day(),
		"speed":     s.Loop.Speed,
		"running":   s.Loop.Running,
		"game_over": s.Manager.IsGameOver(),
	})
}

func (s *Server) handleEnclosures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Manager.Status().Enclosures)
}

func (s *Server) handleAnimals(w http.ResponseWriter, r *http.Request) {
	status := s.Manager.Status()

	type animalEntry struct {
		Enclosure string  `json:"enclosure"`
		Name      string  `json:"name"`
		Species   string  `json:"species"`
		Age       int     `json:"age"`
		Health    float64 `json:"health"`
		Hunger    float64 `json:"hunger"`
		Happiness float64 `json:"happiness"`
		Critical  bool    `json:"critical"`
	}

	critical := make(map[string]bool)
	for _, key := range s.Manager.Critical() {
		critical[key] = true
	}

	var result []animalEntry
	for _, enc := range status.Enclosures {
		for _, a := range enc.Animals {
			result = append(result, animalEntry{
				Enclosure: enc.Name,
				Name:      a.Name,
				Species:   a.Species,
				Age:       a.Age,
				Health:    a.Health,
				Hunger:    a.Hunger,
				Happiness: a.Happiness,
				Critical:  critical[a.Name+"_"+a.Species],
			})
		}
	}
	writeJSON(w, result)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	reports := s.Manager.Reports()

	limit := len(reports)
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	writeJSON(w, reports[len(reports)-limit:])
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := s.Manager.Alerts()

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if len(alerts) > limit {
		alerts = alerts[len(alerts)-limit:]
	}
	writeJSON(w, alerts)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	writeJSON(w, s.Manager.RecentActions(limit))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "chronicle not available", http.StatusServiceUnavailable)
		return
	}

	limit := 30
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	rows, err := s.DB.RecentDays(limit)
	if err != nil {
		slog.Error("history query failed", "error", err)
		writeJSON(w, []chronicle.DayRecord{})
		return
	}
	if rows == nil {
		rows = []chronicle.DayRecord{}
	}
	writeJSON(w, rows)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < 0 || req.Speed > 1000 {
			http.Error(w, "speed must be 0-1000", http.StatusBadRequest)
			return
		}
		s.Loop.Speed = req.Speed
		slog.Info("speed changed", "speed", req.Speed)
	}

	writeJSON(w, map[string]float64{"speed": s.Loop.Speed})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSON encode failed", "error", err)
	}
}
