package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

type fileSource struct {
	dir string
}

// NewFileSource resolves relative artifact names against dir.
func NewFileSource(dir string) ports.ArtifactSource {
	return &fileSource{dir: dir}
}

func (s *fileSource) path(name string) string {
	if filepath.IsAbs(name) || s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

func (s *fileSource) Describe(name string) string {
	return s.path(name)
}

func (s *fileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := s.path(name)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, p)
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrArtifactCorrupt, p, err)
	}
	return data, nil
}
