package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

// Schema expected by the artifact repository:
//
//	CREATE TABLE model_artifact (
//		name       TEXT PRIMARY KEY,
//		content    BYTEA NOT NULL,
//		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type artifactRepo struct {
	db querier
}

// NewArtifactRepository serves artifact blobs stored in the model_artifact table.
func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactSource {
	return &artifactRepo{db: pool}
}

func (r *artifactRepo) Describe(name string) string {
	return "postgres:model_artifact/" + name
}

func (r *artifactRepo) Fetch(ctx context.Context, name string) ([]byte, error) {
	query := `
		SELECT content
		FROM model_artifact
		WHERE name = $1
	`

	var content []byte
	if err := r.db.QueryRow(ctx, query, name).Scan(&content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, r.Describe(name))
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrArtifactCorrupt, r.Describe(name), err)
	}
	return content, nil
}
