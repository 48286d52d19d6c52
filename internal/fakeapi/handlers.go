package fakeapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	minScore = 0
	maxScore = 5
)

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	r.HandleFunc("/regions", s.handleRegions).Methods(http.MethodGet)
	r.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	r.HandleFunc("/restaurants", s.handleRestaurants).Methods(http.MethodGet)
	r.HandleFunc("/restaurants/{id:[0-9]+}", s.handleRestaurant).Methods(http.MethodGet)
	r.HandleFunc("/restaurants/{id:[0-9]+}/reviews", s.handleCreateReview).Methods(http.MethodPost)
	r.HandleFunc("/session", s.handleSession).Methods(http.MethodPost)
	return r
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.listRegions())
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.listCategories())
}

func (s *Server) handleRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	categoryID, err := strconv.ParseInt(q.Get("category"), 10, 64)
	if err != nil {
		http.Error(w, "category must be an integer", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.findRestaurants(q.Get("region"), categoryID))
}

func (s *Server) handleRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	rest, ok := s.restaurant(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		http.Error(w, "missing bearer token", http.StatusUnauthorized)
		return
	}
	u, ok := s.userForToken(token)
	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var body struct {
		Score       int    `json:"score"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Score < minScore || body.Score > maxScore || strings.TrimSpace(body.Description) == "" {
		http.Error(w, "score must be 0-5 and description non-empty", http.StatusBadRequest)
		return
	}

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	rv, ok := s.addReview(id, u.name, body.Score, body.Description)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, ok := s.login(body.Email, body.Password)
	if !ok {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"accessToken": token})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &recorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.String("request_id", r.Header.Get("X-Request-ID")),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
