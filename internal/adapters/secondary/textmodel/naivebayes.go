package textmodel

import (
	"fmt"

	"mental-health-predictor/internal/core/domain"
)

const KindMultinomialNB = "multinomial_nb"

// NaiveBayesClassifier scores classes by their joint log likelihood.
type NaiveBayesClassifier struct {
	name           string
	classes        domain.LabelSet
	classLogPrior  []float64
	featureLogProb [][]float64
	dim            int
}

func newNaiveBayesClassifier(name string, a classifierArtifact) (*NaiveBayesClassifier, error) {
	classes, err := domain.NewLabelSet(a.Classes)
	if err != nil {
		return nil, err
	}
	if len(a.FeatureLogProb) != len(classes) {
		return nil, fmt.Errorf("feature_log_prob has %d rows for %d classes", len(a.FeatureLogProb), len(classes))
	}
	if len(a.ClassLogPrior) != len(classes) {
		return nil, fmt.Errorf("class_log_prior has %d values for %d classes", len(a.ClassLogPrior), len(classes))
	}
	dim, err := rectangular(a.FeatureLogProb, "feature_log_prob")
	if err != nil {
		return nil, err
	}

	return &NaiveBayesClassifier{
		name:           name,
		classes:        classes,
		classLogPrior:  a.ClassLogPrior,
		featureLogProb: a.FeatureLogProb,
		dim:            dim,
	}, nil
}

func (c *NaiveBayesClassifier) Name() string            { return c.name }
func (c *NaiveBayesClassifier) Kind() string            { return KindMultinomialNB }
func (c *NaiveBayesClassifier) Dimensions() int         { return c.dim }
func (c *NaiveBayesClassifier) Labels() domain.LabelSet { return c.classes }

func (c *NaiveBayesClassifier) Predict(vec domain.FeatureVector) (domain.Label, error) {
	if err := checkVector(vec, c.dim); err != nil {
		return "", err
	}
	scores := make([]float64, len(c.classes))
	for k := range c.classes {
		scores[k] = c.classLogPrior[k] + vec.Dot(c.featureLogProb[k])
	}
	return c.classes[argmax(scores)], nil
}
