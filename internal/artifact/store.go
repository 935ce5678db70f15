package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists artifacts between stages. The filesystem implementation is
// the default; the db package provides a Postgres-backed mirror for runs.
type Store interface {
	Load(path string) (*Artifact, error)
	Save(path string, a *Artifact) error
}

// FSStore reads and writes artifacts as plain files at caller-specified paths.
type FSStore struct{}

// NewFSStore returns a filesystem-backed artifact store.
func NewFSStore() *FSStore {
	return &FSStore{}
}

// Load reads an artifact from disk. The kind is inferred from the extension.
func (s *FSStore) Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Cause: err}
	}
	return &Artifact{
		Name:    filepath.Base(path),
		Kind:    kindFromPath(path),
		Content: string(data),
	}, nil
}

// Save writes an artifact to disk. The parent directory must already exist;
// the driver fails the stage rather than silently creating output trees.
func (s *FSStore) Save(path string, a *Artifact) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	if !info.IsDir() {
		return &IOError{Op: "write", Path: path, Cause: fmt.Errorf("parent %s is not a directory", dir)}
	}
	if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	return nil
}

func kindFromPath(path string) Kind {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return KindJSON
	}
	return KindMarkdown
}
