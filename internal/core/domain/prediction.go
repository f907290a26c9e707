package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Label is a single categorical prediction emitted by a classifier.
type Label string

// LabelSet is the closed, ordered set of labels a classifier was trained on.
type LabelSet []Label

// NewLabelSet validates that labels is non-empty and free of duplicates.
func NewLabelSet(labels []string) (LabelSet, error) {
	if len(labels) == 0 {
		return nil, errors.New("empty label set")
	}
	seen := make(map[string]struct{}, len(labels))
	set := make(LabelSet, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, errors.New("empty label in label set")
		}
		if _, ok := seen[l]; ok {
			return nil, fmt.Errorf("duplicate label %q", l)
		}
		seen[l] = struct{}{}
		set = append(set, Label(l))
	}
	return set, nil
}

func (s LabelSet) Contains(l Label) bool {
	for _, v := range s {
		if v == l {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same labels, ignoring order.
func (s LabelSet) Equal(other LabelSet) bool {
	if len(s) != len(other) {
		return false
	}
	a, b := s.Sorted(), other.Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s LabelSet) Sorted() []string {
	out := s.Strings()
	sort.Strings(out)
	return out
}

func (s LabelSet) Strings() []string {
	out := make([]string, len(s))
	for i, l := range s {
		out[i] = string(l)
	}
	return out
}

// FeatureVector is a sparse numeric representation of a text.
// Indices are sorted ascending and lie in [0, Dim).
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Dot returns the inner product of the vector with a dense weight row.
func (v FeatureVector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * weights[idx]
	}
	return sum
}

// NNZ is the number of non-zero entries.
func (v FeatureVector) NNZ() int {
	return len(v.Indices)
}

type Prediction struct {
	Label Label
	Model string
}

// ModelInfo describes the loaded artifact pair.
type ModelInfo struct {
	Name           string
	ClassifierKind string
	VectorizerKind string
	Features       int
	Labels         LabelSet
}
