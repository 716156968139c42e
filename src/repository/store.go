package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/roshdman/backend/src/domain"
	"github.com/rs/zerolog"
)

// Store persists the whole record document as one pretty-printed JSON file.
// Every access re-reads the file; every mutation rewrites it in full,
// last-write-wins. The mutex serializes the load-mutate-save cycle inside
// this process so two concurrent requests cannot drop each other's writes.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// logger wraps the execution context with component info
func (s *Store) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("component", "store").Logger()
	return &l
}

// load reads and decodes the backing file. It fails open: a missing file,
// unreadable file or corrupt document all resolve to the default document,
// so callers cannot distinguish an empty system from a broken one.
func (s *Store) load(ctx context.Context) *domain.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.logger(ctx).Warn().Err(err).Str("path", s.path).Msg("reading data file failed, using default document")
		return domain.DefaultDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger(ctx).Warn().Err(err).Str("path", s.path).Msg("decoding data file failed, using default document")
		return domain.DefaultDocument()
	}

	return &doc
}

// save serializes the full document, human-readable, and overwrites the
// backing file. No atomic rename: a failed write surfaces to the caller and
// the in-memory mutation is simply lost.
func (s *Store) save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger(ctx).Error().Err(err).Msg("encoding document failed")
		return err
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger(ctx).Error().Err(err).Str("path", s.path).Msg("writing data file failed")
		return err
	}

	return nil
}

// View runs fn against a freshly loaded document without persisting.
func (s *Store) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.load(ctx))
}

// Update runs fn against a freshly loaded document and, if fn succeeds,
// writes the document back. An error from fn aborts without persisting.
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(ctx, doc)
}
