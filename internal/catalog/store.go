package catalog

import (
	"context"
	"sync"
)

// Lister fetches the full remote collection.
type Lister interface {
	List(ctx context.Context) ([]Book, error)
}

// Store is the local cache of the remote collection. It is only ever
// replaced wholesale by Refresh, never patched.
type Store struct {
	src Lister

	mu      sync.RWMutex
	books   []Book
	loading bool

	onChange func()
}

// NewStore creates an empty store backed by src.
func NewStore(src Lister) *Store {
	return &Store{src: src, books: []Book{}}
}

// OnChange registers fn to be called after every change of the store.
// fn runs without the store lock held.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Refresh reloads the whole collection. On failure the previous books are
// kept and the error is returned. Loading is false again on every exit.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)

	books, err := s.src.List(ctx)

	s.mu.Lock()
	if err == nil {
		if books == nil {
			books = []Book{}
		}
		s.books = books
	}
	s.loading = false
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return err
}

// Books returns a copy of the cached books in service order.
func (s *Store) Books() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Loading reports whether a refresh is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Len returns the number of cached books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Find returns a copy of the cached book with the given ID.
func (s *Store) Find(id int) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b := ByID(s.books, id); b != nil {
		return *b, true
	}
	return Book{}, false
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
