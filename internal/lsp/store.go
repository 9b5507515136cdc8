package lsp

import "sync"

// Store holds the analyzed state of every open document.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document // uri -> document
}

func NewStore() *Store {
	return &Store{docs: map[string]*Document{}}
}

func (s *Store) Set(uri string, doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
}

func (s *Store) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[uri]
	return d, ok
}

func (s *Store) Delete(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
