package ports

import "context"

// ArtifactSource fetches serialized artifacts by name.
// Implementations return an error wrapping domain.ErrArtifactNotFound
// when the named artifact does not exist.
type ArtifactSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Describe returns a human-readable location for the named artifact.
	Describe(name string) string
}

// ArtifactDecoder turns raw artifact blobs into in-memory model components.
// Malformed or inconsistent blobs yield an error wrapping domain.ErrArtifactCorrupt.
type ArtifactDecoder interface {
	DecodeVectorizer(name string, data []byte) (Vectorizer, error)
	DecodeClassifier(name string, data []byte) (Classifier, error)
}
