// Package store keeps analyzed patent documents in memory, keyed by
// document ID with a content-hash index for duplicate detection. The
// documents it holds are fully warmed by the pipeline before insertion,
// so reads need no further synchronization beyond the store's own lock.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/priorart/patdoc/internal/textmodel"
)

// Record is a stored patent document with its ingestion provenance.
type Record struct {
	DocID       string
	Filename    string
	ContentHash string
	CreatedAt   time.Time
	Doc         *textmodel.PatentDoc
}

// Store is a thread-safe in-memory patent document registry.
type Store struct {
	mu     sync.RWMutex
	docs   map[string]*Record
	byHash map[string]string // content hash -> doc ID
}

// New returns an empty store.
func New() *Store {
	return &Store{
		docs:   make(map[string]*Record),
		byHash: make(map[string]string),
	}
}

// Put inserts or replaces a record.
func (s *Store) Put(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.docs[rec.DocID]; ok {
		delete(s.byHash, old.ContentHash)
	}
	s.docs[rec.DocID] = rec
	if rec.ContentHash != "" {
		s.byHash[rec.ContentHash] = rec.DocID
	}
}

// Get returns the record for a doc ID, or nil.
func (s *Store) Get(docID string) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[docID]
}

// Delete removes a record and reports whether it existed.
func (s *Store) Delete(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.docs[docID]
	if !ok {
		return false
	}
	delete(s.docs, docID)
	delete(s.byHash, rec.ContentHash)
	return true
}

// FindByHash returns the doc ID already holding the given content hash,
// or "".
func (s *Store) FindByHash(hash string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byHash[hash]
}

// List returns all records ordered by creation time, newest first.
func (s *Store) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.docs))
	for _, rec := range s.docs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
