package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Small fitted artifacts shared by tests. The vocabulary and weights are
// chosen so that each class has obvious trigger words.

const VectorizerJSON = `{
  "kind": "tfidf",
  "lowercase": true,
  "ngram_range": [1, 2],
  "vocabulary": {
    "feel": 0, "hopeless": 1, "sleep": 2, "anxious": 3, "worried": 4,
    "happy": 5, "great": 6, "feel hopeless": 7, "can": 8
  },
  "idf": [1.0, 2.0, 1.5, 2.0, 2.0, 1.5, 1.5, 2.5, 1.2],
  "norm": "l2"
}`

const ClassifierJSON = `{
  "kind": "logistic_regression",
  "name": "mental-health-lr",
  "classes": ["Anxiety", "Depression", "Normal"],
  "coef": [
    [0.0, 0.0, 0.5, 3.0, 3.0, 0.0, 0.0, 0.0, 0.0],
    [0.2, 3.0, 1.0, 0.0, 0.0, 0.0, 0.0, 2.0, 0.0],
    [0.0, 0.0, 0.0, 0.0, 0.0, 3.0, 3.0, 0.0, 0.0]
  ],
  "intercept": [0.0, 0.0, 0.1]
}`

const ClassifierYAML = `kind: multinomial_nb
name: mental-health-nb
classes: [Anxiety, Depression, Normal]
class_log_prior: [-1.1, -1.1, -1.0]
feature_log_prob:
  - [-3.0, -4.0, -2.5, -0.5, -0.5, -4.0, -4.0, -4.0, -3.0]
  - [-2.0, -0.5, -1.0, -4.0, -4.0, -4.0, -4.0, -0.7, -3.0]
  - [-3.0, -4.0, -4.0, -4.0, -4.0, -0.5, -0.5, -4.0, -3.0]
`

var FixtureLabels = []string{"Anxiety", "Depression", "Normal"}

// WriteArtifacts writes the fixture artifacts into a temp dir and returns it.
func WriteArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trained_model.json"), []byte(ClassifierJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vectorizer.json"), []byte(VectorizerJSON), 0o600))
	return dir
}
