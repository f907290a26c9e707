package textmodel

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"mental-health-predictor/internal/core/domain"
)

const KindTFIDF = "tfidf"

type Norm string

const (
	NormL2   Norm = "l2"
	NormL1   Norm = "l1"
	NormNone Norm = "none"
)

// TFIDFVectorizer is a fitted word-level TF-IDF transformer. All fields are
// set once at decode time and never mutated.
type TFIDFVectorizer struct {
	lowercase   bool
	minN, maxN  int
	minTokenLen int
	stopWords   map[string]struct{}
	vocabulary  map[string]int
	idf         []float64
	sublinearTF bool
	norm        Norm
}

func newTFIDFVectorizer(a vectorizerArtifact) (*TFIDFVectorizer, error) {
	if len(a.Vocabulary) == 0 {
		return nil, errors.New("vocabulary is empty")
	}

	dim := len(a.Vocabulary)
	seen := make([]bool, dim)
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("vocabulary index %d for %q out of range [0, %d)", idx, term, dim)
		}
		if seen[idx] {
			return nil, fmt.Errorf("vocabulary index %d assigned twice", idx)
		}
		seen[idx] = true
	}

	if a.IDF != nil && len(a.IDF) != dim {
		return nil, fmt.Errorf("idf has %d weights for %d vocabulary terms", len(a.IDF), dim)
	}

	minN, maxN := 1, 1
	if len(a.NgramRange) != 0 {
		if len(a.NgramRange) != 2 {
			return nil, fmt.Errorf("ngram_range must have two elements, got %d", len(a.NgramRange))
		}
		minN, maxN = a.NgramRange[0], a.NgramRange[1]
		if minN < 1 || maxN < minN {
			return nil, fmt.Errorf("invalid ngram_range [%d, %d]", minN, maxN)
		}
	}

	norm := Norm(strings.ToLower(a.Norm))
	switch norm {
	case "":
		norm = NormL2
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("unsupported norm %q", a.Norm)
	}

	minTokenLen := a.MinTokenLength
	if minTokenLen <= 0 {
		minTokenLen = defaultMinTokenLength
	}

	lowercase := true
	if a.Lowercase != nil {
		lowercase = *a.Lowercase
	}

	var stop map[string]struct{}
	if len(a.StopWords) > 0 {
		stop = make(map[string]struct{}, len(a.StopWords))
		for _, w := range a.StopWords {
			stop[w] = struct{}{}
		}
	}

	return &TFIDFVectorizer{
		lowercase:   lowercase,
		minN:        minN,
		maxN:        maxN,
		minTokenLen: minTokenLen,
		stopWords:   stop,
		vocabulary:  a.Vocabulary,
		idf:         a.IDF,
		sublinearTF: a.SublinearTF,
		norm:        norm,
	}, nil
}

func (v *TFIDFVectorizer) Kind() string    { return KindTFIDF }
func (v *TFIDFVectorizer) Dimensions() int { return len(v.vocabulary) }

// Transform maps text onto the fitted vocabulary. Terms outside the
// vocabulary are ignored; text with no known terms yields an all-zero vector.
func (v *TFIDFVectorizer) Transform(text string) (domain.FeatureVector, error) {
	if !utf8.ValidString(text) {
		return domain.FeatureVector{}, errors.New("input is not valid UTF-8")
	}
	if v.lowercase {
		text = strings.ToLower(text)
	}

	tokens := tokenize(text, v.minTokenLen)
	if v.stopWords != nil {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, stop := v.stopWords[t]; !stop {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	counts := make(map[int]float64)
	for _, term := range ngrams(tokens, v.minN, v.maxN) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := domain.FeatureVector{
		Dim:     len(v.vocabulary),
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	for _, idx := range vec.Indices {
		tf := counts[idx]
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		if v.idf != nil {
			tf *= v.idf[idx]
		}
		vec.Values = append(vec.Values, tf)
	}

	normalize(vec.Values, v.norm)
	return vec, nil
}

func normalize(values []float64, norm Norm) {
	var total float64
	switch norm {
	case NormL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
