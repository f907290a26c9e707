package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

// PredictionService runs the transform-then-predict path over a loaded
// vectorizer and classifier. Both are immutable after construction, so the
// service is safe for concurrent use without locking.
type PredictionService struct {
	vectorizer ports.Vectorizer
	classifier ports.Classifier
}

func NewPredictionService(vectorizer ports.Vectorizer, classifier ports.Classifier) (*PredictionService, error) {
	if vectorizer == nil || classifier == nil {
		return nil, domain.ErrModelNotLoaded
	}
	if vectorizer.Dimensions() != classifier.Dimensions() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features but classifier expects %d",
			domain.ErrArtifactCorrupt, vectorizer.Dimensions(), classifier.Dimensions())
	}
	return &PredictionService{vectorizer: vectorizer, classifier: classifier}, nil
}

// Predict returns exactly one label for text. Blank input is rejected with
// domain.ErrEmptyInput before the model is touched.
func (s *PredictionService) Predict(ctx context.Context, text string) (pred domain.Prediction, err error) {
	if strings.TrimSpace(text) == "" {
		return domain.Prediction{}, domain.ErrEmptyInput
	}

	defer func() {
		if r := recover(); r != nil {
			pred = domain.Prediction{}
			err = fmt.Errorf("%w: %v", domain.ErrInferenceFailure, r)
		}
	}()

	vec, err := s.vectorizer.Transform(text)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %s", domain.ErrInferenceFailure, err.Error())
	}

	label, err := s.classifier.Predict(vec)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %s", domain.ErrInferenceFailure, err.Error())
	}
	if !s.classifier.Labels().Contains(label) {
		return domain.Prediction{}, fmt.Errorf("%w: classifier returned unknown label %q", domain.ErrInferenceFailure, label)
	}

	log.WithContext(ctx).WithFields(log.Fields{
		"model":        s.classifier.Name(),
		"label":        label,
		"input_length": len(text),
		"nnz":          vec.NNZ(),
	}).Debug("prediction completed")

	return domain.Prediction{Label: label, Model: s.classifier.Name()}, nil
}

func (s *PredictionService) Labels() domain.LabelSet {
	return s.classifier.Labels()
}

func (s *PredictionService) Info() domain.ModelInfo {
	return domain.ModelInfo{
		Name:           s.classifier.Name(),
		ClassifierKind: s.classifier.Kind(),
		VectorizerKind: s.vectorizer.Kind(),
		Features:       s.vectorizer.Dimensions(),
		Labels:         s.classifier.Labels(),
	}
}
