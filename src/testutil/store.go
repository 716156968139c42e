package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roshdman/backend/src/repository"
	"github.com/rs/zerolog"
)

// Context returns a context carrying a disabled logger, matching what
// services expect from the HTTP layer.
func Context() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

// SetupTestStore returns a store backed by a file in a per-test temp dir.
func SetupTestStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(filepath.Join(t.TempDir(), "data.json"))
}
