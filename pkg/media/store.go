package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded files under a local directory and hands back the URL
// path they are served from.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data under a random unique name derived from the original file
// name and returns the public URL path.
func (s *Store) Save(originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + "_" + filepath.Base(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/media/" + name, nil
}
