package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

// MockVectorizer is a mock of ports.Vectorizer.
type MockVectorizer struct {
	mock.Mock
}

func (m *MockVectorizer) Transform(text string) (domain.FeatureVector, error) {
	args := m.Called(text)
	return args.Get(0).(domain.FeatureVector), args.Error(1)
}

func (m *MockVectorizer) Dimensions() int {
	return m.Called().Int(0)
}

func (m *MockVectorizer) Kind() string {
	return m.Called().String(0)
}

// MockClassifier is a mock of ports.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(vec domain.FeatureVector) (domain.Label, error) {
	args := m.Called(vec)
	return args.Get(0).(domain.Label), args.Error(1)
}

func (m *MockClassifier) Labels() domain.LabelSet {
	return m.Called().Get(0).(domain.LabelSet)
}

func (m *MockClassifier) Dimensions() int {
	return m.Called().Int(0)
}

func (m *MockClassifier) Kind() string {
	return m.Called().String(0)
}

func (m *MockClassifier) Name() string {
	return m.Called().String(0)
}

// MockArtifactSource is a mock of ports.ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArtifactSource) Describe(name string) string {
	return name
}

// MockArtifactDecoder is a mock of ports.ArtifactDecoder.
type MockArtifactDecoder struct {
	mock.Mock
}

func (m *MockArtifactDecoder) DecodeVectorizer(name string, data []byte) (ports.Vectorizer, error) {
	args := m.Called(name, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Vectorizer), args.Error(1)
}

func (m *MockArtifactDecoder) DecodeClassifier(name string, data []byte) (ports.Classifier, error) {
	args := m.Called(name, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Classifier), args.Error(1)
}
