package textmodel

import (
	"fmt"

	"mental-health-predictor/internal/core/domain"
)

const (
	KindLogisticRegression = "logistic_regression"
	KindLinearSVC          = "linear_svc"
	KindSGD                = "sgd"
)

// LinearClassifier predicts with a one-vs-rest linear decision function.
// A binary model carries a single weight row that scores the second class.
type LinearClassifier struct {
	name      string
	kind      string
	classes   domain.LabelSet
	coef      [][]float64
	intercept []float64
	dim       int
}

func newLinearClassifier(name string, a classifierArtifact) (*LinearClassifier, error) {
	classes, err := domain.NewLabelSet(a.Classes)
	if err != nil {
		return nil, err
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("need at least two classes, got %d", len(classes))
	}

	rows := len(a.Coef)
	switch {
	case len(classes) == 2 && rows == 1:
	case len(classes) > 2 && rows == len(classes):
	default:
		return nil, fmt.Errorf("coef has %d rows for %d classes", rows, len(classes))
	}

	dim, err := rectangular(a.Coef, "coef")
	if err != nil {
		return nil, err
	}

	intercept := a.Intercept
	if intercept == nil {
		intercept = make([]float64, rows)
	}
	if len(intercept) != rows {
		return nil, fmt.Errorf("intercept has %d values for %d coef rows", len(intercept), rows)
	}

	return &LinearClassifier{
		name:      name,
		kind:      a.Kind,
		classes:   classes,
		coef:      a.Coef,
		intercept: intercept,
		dim:       dim,
	}, nil
}

func (c *LinearClassifier) Name() string            { return c.name }
func (c *LinearClassifier) Kind() string            { return c.kind }
func (c *LinearClassifier) Dimensions() int         { return c.dim }
func (c *LinearClassifier) Labels() domain.LabelSet { return c.classes }

func (c *LinearClassifier) Predict(vec domain.FeatureVector) (domain.Label, error) {
	if err := checkVector(vec, c.dim); err != nil {
		return "", err
	}

	if len(c.coef) == 1 {
		if vec.Dot(c.coef[0])+c.intercept[0] > 0 {
			return c.classes[1], nil
		}
		return c.classes[0], nil
	}

	scores := make([]float64, len(c.coef))
	for k, row := range c.coef {
		scores[k] = vec.Dot(row) + c.intercept[k]
	}
	return c.classes[argmax(scores)], nil
}

func checkVector(vec domain.FeatureVector, dim int) error {
	if vec.Dim != dim {
		return fmt.Errorf("feature vector has %d dimensions, classifier expects %d", vec.Dim, dim)
	}
	if len(vec.Indices) != len(vec.Values) {
		return fmt.Errorf("feature vector has %d indices but %d values", len(vec.Indices), len(vec.Values))
	}
	for _, idx := range vec.Indices {
		if idx < 0 || idx >= dim {
			return fmt.Errorf("feature index %d out of range [0, %d)", idx, dim)
		}
	}
	return nil
}

// argmax returns the first index holding the maximum score.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}

func rectangular(m [][]float64, field string) (int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, fmt.Errorf("%s is empty", field)
	}
	dim := len(m[0])
	for i, row := range m {
		if len(row) != dim {
			return 0, fmt.Errorf("%s row %d has %d values, expected %d", field, i, len(row), dim)
		}
	}
	return dim, nil
}
