package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

type ArtifactLoader struct {
	source   ports.ArtifactSource
	decoder  ports.ArtifactDecoder
	expected domain.LabelSet
}

// NewArtifactLoader builds a loader. When expectedLabels is non-empty the
// classifier's label set must match it exactly.
func NewArtifactLoader(source ports.ArtifactSource, decoder ports.ArtifactDecoder, expectedLabels []string) *ArtifactLoader {
	var expected domain.LabelSet
	for _, l := range expectedLabels {
		expected = append(expected, domain.Label(l))
	}
	return &ArtifactLoader{source: source, decoder: decoder, expected: expected}
}

// Load fetches and decodes the classifier and vectorizer artifacts and returns
// a ready PredictionService. It does not retry.
func (l *ArtifactLoader) Load(ctx context.Context, modelName, vectorizerName string) (*PredictionService, error) {
	modelBlob, err := l.source.Fetch(ctx, modelName)
	if err != nil {
		return nil, err
	}
	vectorizerBlob, err := l.source.Fetch(ctx, vectorizerName)
	if err != nil {
		return nil, err
	}

	classifier, err := l.decoder.DecodeClassifier(modelName, modelBlob)
	if err != nil {
		return nil, err
	}
	vectorizer, err := l.decoder.DecodeVectorizer(vectorizerName, vectorizerBlob)
	if err != nil {
		return nil, err
	}

	if len(l.expected) > 0 && !l.expected.Equal(classifier.Labels()) {
		return nil, fmt.Errorf("%w: classifier labels %v do not match configured labels %v",
			domain.ErrArtifactCorrupt, classifier.Labels().Sorted(), l.expected.Sorted())
	}

	svc, err := NewPredictionService(vectorizer, classifier)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"model":      l.source.Describe(modelName),
		"vectorizer": l.source.Describe(vectorizerName),
		"classifier": classifier.Kind(),
		"features":   vectorizer.Dimensions(),
		"labels":     classifier.Labels().Strings(),
	}).Info("artifacts loaded")

	return svc, nil
}
