package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mental-health-predictor/internal/adapters/secondary/filesystem"
	"mental-health-predictor/internal/adapters/secondary/textmodel"
	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/testutil"
)

func TestArtifactLoader_Load(t *testing.T) {
	dir := testutil.WriteArtifacts(t)
	loader := NewArtifactLoader(filesystem.NewFileSource(dir), textmodel.NewDecoder(), testutil.FixtureLabels)

	svc, err := loader.Load(context.Background(), "trained_model.json", "vectorizer.json")
	require.NoError(t, err)

	pred, err := svc.Predict(context.Background(), "I feel hopeless and can't sleep")
	require.NoError(t, err)
	assert.Equal(t, domain.Label("Depression"), pred.Label)
	assert.True(t, svc.Labels().Contains(pred.Label))
}

func TestArtifactLoader_MissingArtifact(t *testing.T) {
	loader := NewArtifactLoader(filesystem.NewFileSource(t.TempDir()), textmodel.NewDecoder(), nil)

	_, err := loader.Load(context.Background(), "trained_model.json", "vectorizer.json")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestArtifactLoader_LabelSetMismatch(t *testing.T) {
	dir := testutil.WriteArtifacts(t)
	loader := NewArtifactLoader(filesystem.NewFileSource(dir), textmodel.NewDecoder(), []string{"Anxiety", "Depression", "Bipolar"})

	_, err := loader.Load(context.Background(), "trained_model.json", "vectorizer.json")
	assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)
}

func TestArtifactLoader_LabelSetOrderInsensitive(t *testing.T) {
	dir := testutil.WriteArtifacts(t)
	loader := NewArtifactLoader(filesystem.NewFileSource(dir), textmodel.NewDecoder(), []string{"Normal", "Anxiety", "Depression"})

	_, err := loader.Load(context.Background(), "trained_model.json", "vectorizer.json")
	assert.NoError(t, err)
}

func TestArtifactLoader_DecodeFailure(t *testing.T) {
	source := new(testutil.MockArtifactSource)
	decoder := new(testutil.MockArtifactDecoder)
	source.On("Fetch", mock.Anything, "model.json").Return([]byte("garbage"), nil)
	source.On("Fetch", mock.Anything, "vec.json").Return([]byte("{}"), nil)
	decoder.On("DecodeClassifier", "model.json", []byte("garbage")).
		Return(nil, fmt.Errorf("%w: model.json: invalid character", domain.ErrArtifactCorrupt))

	_, err := NewArtifactLoader(source, decoder, nil).Load(context.Background(), "model.json", "vec.json")
	assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)
	decoder.AssertNotCalled(t, "DecodeVectorizer", mock.Anything, mock.Anything)
}

func TestArtifactLoader_StopsOnFirstMissing(t *testing.T) {
	source := new(testutil.MockArtifactSource)
	decoder := new(testutil.MockArtifactDecoder)
	source.On("Fetch", mock.Anything, "model.json").Return(nil, fmt.Errorf("%w: model.json", domain.ErrArtifactNotFound))

	_, err := NewArtifactLoader(source, decoder, nil).Load(context.Background(), "model.json", "vec.json")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	source.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestPredictionService_IdempotentAndConcurrent(t *testing.T) {
	dir := testutil.WriteArtifacts(t)
	svc, err := NewArtifactLoader(filesystem.NewFileSource(dir), textmodel.NewDecoder(), nil).
		Load(context.Background(), "trained_model.json", "vectorizer.json")
	require.NoError(t, err)

	inputs := []string{
		"I feel hopeless and can't sleep",
		"I am so anxious and worried all the time",
		"Feeling happy and great today",
	}
	want := make([]domain.Label, len(inputs))
	for i, in := range inputs {
		pred, err := svc.Predict(context.Background(), in)
		require.NoError(t, err)
		want[i] = pred.Label
	}

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				pred, err := svc.Predict(context.Background(), in)
				assert.NoError(t, err)
				assert.Equal(t, want[i], pred.Label)
			}
		}()
	}
	wg.Wait()
}
