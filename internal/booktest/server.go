// Package booktest provides an in-memory book service for tests.
package booktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/blackwell-systems/bookctl/internal/catalog"
)

// Server is a fake of the remote book service.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	books    map[int]catalog.Book
	nextID   int
	requests map[string]int
	failNext map[string]int
}

// New starts a fake service seeded with books. IDs of seeded books are
// kept; new books get the next free ID. The server is closed at test end.
func New(t testing.TB, books ...catalog.Book) *Server {
	s := &Server{
		books:    make(map[int]catalog.Book),
		nextID:   1,
		requests: make(map[string]int),
		failNext: make(map[string]int),
	}
	for _, b := range books {
		s.books[b.ID] = b
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Requests returns how many requests were made with method (e.g. "POST").
// An empty method counts all requests.
func (s *Server) Requests(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if method == "" {
		total := 0
		for _, n := range s.requests {
			total += n
		}
		return total
	}
	return s.requests[method]
}

// FailNext makes the next request with method answer status with no
// detail body.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	s.failNext[method] = status
	s.mu.Unlock()
}

// Books returns the stored books ordered by ID.
func (s *Server) Books() []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *Server) sortedLocked() []catalog.Book {
	out := make([]catalog.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests[r.Method]++
	if status, ok := s.failNext[r.Method]; ok {
		delete(s.failNext, r.Method)
		w.WriteHeader(status)
		return
	}

	path := strings.Trim(r.URL.Path, "/")
	parts := strings.Split(path, "/")
	if parts[0] != "books" || len(parts) > 2 {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, s.sortedLocked())
		case http.MethodPost:
			p, ok := decodePayload(w, r)
			if !ok {
				return
			}
			b := fromPayload(s.nextID, p)
			s.nextID++
			s.books[b.ID] = b
			writeJSON(w, http.StatusCreated, b)
		default:
			writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		}
		return
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "book_id: Input should be a valid integer")
		return
	}
	existing, found := s.books[id]
	if !found && r.Method != http.MethodPost {
		writeDetail(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found", id))
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, existing)
	case http.MethodPut:
		p, ok := decodePayload(w, r)
		if !ok {
			return
		}
		b := fromPayload(id, p)
		s.books[id] = b
		writeJSON(w, http.StatusOK, b)
	case http.MethodDelete:
		delete(s.books, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

func decodePayload(w http.ResponseWriter, r *http.Request) (catalog.Payload, bool) {
	var p catalog.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid JSON body")
		return p, false
	}
	var issues []map[string]interface{}
	if p.Title == "" {
		issues = append(issues, issue("title", "String should have at least 1 character"))
	}
	if p.Author == "" {
		issues = append(issues, issue("author", "String should have at least 1 character"))
	}
	if p.Year != nil && (*p.Year < 1000 || *p.Year > 9999) {
		issues = append(issues, issue("year", "Input should be greater than or equal to 1000"))
	}
	if len(issues) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"detail": issues})
		return p, false
	}
	return p, true
}

func issue(field, msg string) map[string]interface{} {
	return map[string]interface{}{
		"loc":  []interface{}{"body", field},
		"msg":  msg,
		"type": "value_error",
	}
}

func fromPayload(id int, p catalog.Payload) catalog.Book {
	return catalog.Book{ID: id, Title: p.Title, Author: p.Author, Year: p.Year, Genre: p.Genre}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
