// Package server exposes a loaded graph as a read-only HTTP JSON API.
//
// The server never mutates the graph: it is handed an engine that was
// fully loaded beforehand, which makes every handler safe for concurrent
// requests. Out-of-range node ids follow the engine's absence policy and
// come back as empty results with status 200; only syntactically invalid
// parameters produce a 400.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/neurograph/neurograph/pkg/graph"
)

// Server serves structural queries over a frozen graph.
type Server struct {
	graph  graph.Graph
	logger *log.Logger
}

// New creates a server over g. The graph must be fully loaded before any
// request arrives; the server itself never loads or resets it. A nil
// logger falls back to the default logger.
func New(g graph.Graph, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{graph: g, logger: logger}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/nodes/{id}/degree", s.handleDegree)
		r.Get("/nodes/{id}/neighbors", s.handleNeighbors)
		r.Get("/edges/{from}/{to}", s.handleEdge)
		r.Get("/bfs", s.handleBFS)
		r.Get("/dfs", s.handleDFS)
		r.Get("/path", s.handlePath)
		r.Get("/top", s.handleTop)
		r.Post("/subgraph", s.handleSubgraph)
	})
	return r
}

// requestLog logs each request with its status and duration.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes":        s.graph.NodeCount(),
		"edges":        s.graph.EdgeCount(),
		"memory_bytes": s.graph.MemoryUsage(),
	})
}

func (s *Server) handleDegree(w http.ResponseWriter, r *http.Request) {
	node, ok := pathNode(w, r, "id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"node": node,
		"out":  s.graph.OutDegree(node),
		"in":   s.graph.InDegree(node),
	})
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	node, ok := pathNode(w, r, "id")
	if !ok {
		return
	}
	nbrs := s.graph.Neighbors(node)
	if nbrs == nil {
		nbrs = []uint32{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"node":      node,
		"neighbors": nbrs,
	})
}

func (s *Server) handleEdge(w http.ResponseWriter, r *http.Request) {
	from, ok := pathNode(w, r, "from")
	if !ok {
		return
	}
	to, ok := pathNode(w, r, "to")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":   from,
		"to":     to,
		"exists": s.graph.HasEdge(from, to),
	})
}

func (s *Server) handleBFS(w http.ResponseWriter, r *http.Request) {
	start, ok := queryNode(w, r, "start")
	if !ok {
		return
	}
	maxDepth, ok := queryDepth(w, r)
	if !ok {
		return
	}
	visits := s.graph.BFS(start, maxDepth)
	if visits == nil {
		visits = []graph.Visit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start":  start,
		"visits": visits,
	})
}

func (s *Server) handleDFS(w http.ResponseWriter, r *http.Request) {
	start, ok := queryNode(w, r, "start")
	if !ok {
		return
	}
	maxDepth, ok := queryDepth(w, r)
	if !ok {
		return
	}
	order := s.graph.DFS(start, maxDepth)
	if order == nil {
		order = []uint32{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start": start,
		"order": order,
	})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from, ok := queryNode(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryNode(w, r, "to")
	if !ok {
		return
	}
	path := s.graph.ShortestPath(from, to)
	if path == nil {
		path = []uint32{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from": from,
		"to":   to,
		"path": path,
		"hops": len(path) - 1,
	})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	k := 10
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "k must be a non-negative integer")
			return
		}
		k = parsed
	}
	ranked := s.graph.TopK(k)
	if ranked == nil {
		ranked = []graph.Degree{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"top": ranked})
}

func (s *Server) handleSubgraph(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nodes []uint32 `json:"nodes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be {\"nodes\": [...]}")
		return
	}
	edges := s.graph.SubgraphEdges(req.Nodes)
	if edges == nil {
		edges = []graph.Edge{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"edges": edges})
}

// pathNode parses a node id from a URL path segment, answering 400 on
// syntax errors. Out-of-range but well-formed ids pass through; the
// engine treats them as absent.
func pathNode(w http.ResponseWriter, r *http.Request, name string) (uint32, bool) {
	return parseNode(w, chi.URLParam(r, name), name)
}

// queryNode parses a node id from a query parameter.
func queryNode(w http.ResponseWriter, r *http.Request, name string) (uint32, bool) {
	return parseNode(w, r.URL.Query().Get(name), name)
}

func parseNode(w http.ResponseWriter, raw, name string) (uint32, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an unsigned node id")
		return 0, false
	}
	return uint32(id), true
}

// queryDepth parses the optional max_depth parameter; absence means
// unbounded.
func queryDepth(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("max_depth")
	if raw == "" {
		return -1, true
	}
	depth, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "max_depth must be an integer")
		return 0, false
	}
	return depth, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
