// Package pipeline composes the scoring path for one URL: feature
// extraction, column ordering, classifier scoring, protocol
// adjustment, and the final decision.
package pipeline

import (
	"github.com/phishsense-ai/phishsense/internal/detector"
	"github.com/phishsense-ai/phishsense/internal/features"
)

// DefaultThreshold is the post-adjustment cutoff for the phishing label.
const DefaultThreshold = 0.6

// modelCutoff applies to the raw classifier score. It is a property of
// the reported raw verdict, not serving policy, so it is fixed.
const modelCutoff = 0.5

// Scorer produces a phishing probability for a feature vector laid out
// in Columns order. detector.Model satisfies it; tests substitute a
// stub.
type Scorer interface {
	Score(vector []float32) (float64, error)
	Columns() []string
}

// Prediction carries the raw classifier verdict and the final verdict
// after the protocol adjustment. Computed per request, never stored.
type Prediction struct {
	Label               int
	PhishingProbability float64
	ModelProbability    float64
	ModelLabel          int
}

// Predictor runs the full scoring pipeline. It holds no mutable state
// and is safe for concurrent use.
type Predictor struct {
	scorer    Scorer
	threshold float64
}

// New builds a Predictor with the given decision threshold; values
// outside (0, 1] fall back to DefaultThreshold.
func New(scorer Scorer, threshold float64) *Predictor {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Predictor{scorer: scorer, threshold: threshold}
}

// Predict classifies one URL. Errors from column ordering or scoring
// propagate unmodified; no feature value is ever guessed and the
// classifier is never skipped.
func (p *Predictor) Predict(url string) (Prediction, error) {
	feats := features.Extract(url)

	vector, err := detector.BuildVector(feats, p.scorer.Columns())
	if err != nil {
		return Prediction{}, err
	}

	raw, err := p.scorer.Score(vector)
	if err != nil {
		return Prediction{}, err
	}

	adjusted := AdjustForScheme(url, raw)

	pred := Prediction{
		PhishingProbability: adjusted,
		ModelProbability:    raw,
	}
	if raw >= modelCutoff {
		pred.ModelLabel = 1
	}
	if adjusted >= p.threshold {
		pred.Label = 1
	}
	return pred, nil
}
