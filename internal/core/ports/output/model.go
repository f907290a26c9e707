package ports

import "mental-health-predictor/internal/core/domain"

// Vectorizer is a pre-fitted text-to-feature transformer.
// Implementations must be safe for concurrent read-only use.
type Vectorizer interface {
	Transform(text string) (domain.FeatureVector, error)
	Dimensions() int
	Kind() string
}

// Classifier is a pre-fitted model mapping a feature vector to one label.
// Implementations must be safe for concurrent read-only use.
type Classifier interface {
	Predict(vec domain.FeatureVector) (domain.Label, error)
	Labels() domain.LabelSet
	Dimensions() int
	Kind() string
	Name() string
}
