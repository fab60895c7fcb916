package pipeline

import (
	"errors"
	"testing"

	"github.com/phishsense-ai/phishsense/internal/detector"
	"github.com/phishsense-ai/phishsense/internal/features"
)

// stubScorer returns a fixed probability over the extractor's schema.
type stubScorer struct {
	prob    float64
	columns []string
	err     error
}

func (s *stubScorer) Score(vector []float32) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.prob, nil
}

func (s *stubScorer) Columns() []string {
	if s.columns != nil {
		return s.columns
	}
	return features.Schema
}

func TestPredictAppliesProtocolAdjustment(t *testing.T) {
	p := New(&stubScorer{prob: 0.8}, DefaultThreshold)

	pred, err := p.Predict("http://secure-login-bank-update.com/verify?user=abc&token=123")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if pred.PhishingProbability != 1.0 {
		t.Fatalf("adjusted probability = %v, want 1.0", pred.PhishingProbability)
	}
	if pred.ModelProbability != 0.8 {
		t.Fatalf("model probability = %v, want 0.8", pred.ModelProbability)
	}
	if pred.Label != 1 {
		t.Fatalf("label = %d, want 1", pred.Label)
	}
	if pred.ModelLabel != 1 {
		t.Fatalf("model label = %d, want 1", pred.ModelLabel)
	}
}

func TestPredictThresholdBoundary(t *testing.T) {
	// A schemeless URL keeps the adjusted probability equal to the
	// raw score, isolating the threshold comparison.
	cases := []struct {
		prob      float64
		wantLabel int
	}{
		{0.59, 0},
		{0.60, 1},
	}
	for _, c := range cases {
		p := New(&stubScorer{prob: c.prob}, DefaultThreshold)
		pred, err := p.Predict("example.com/login")
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if pred.Label != c.wantLabel {
			t.Errorf("label at %v = %d, want %d", c.prob, pred.Label, c.wantLabel)
		}
	}
}

func TestPredictModelCutoffIndependentOfAdjustment(t *testing.T) {
	// Raw 0.55 passes the model's 0.5 cutoff, but the https
	// adjustment pulls the final probability down to 0.22.
	p := New(&stubScorer{prob: 0.55}, DefaultThreshold)

	pred, err := p.Predict("https://example.com")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if pred.ModelLabel != 1 {
		t.Fatalf("model label = %d, want 1", pred.ModelLabel)
	}
	if pred.Label != 0 {
		t.Fatalf("label = %d, want 0", pred.Label)
	}
}

func TestPredictPropagatesMissingColumns(t *testing.T) {
	p := New(&stubScorer{prob: 0.5, columns: []string{"not_a_feature"}}, DefaultThreshold)

	_, err := p.Predict("http://example.com")

	var missing *detector.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %T: %v", err, err)
	}
	if len(missing.Columns) != 1 || missing.Columns[0] != "not_a_feature" {
		t.Fatalf("expected [not_a_feature], got %v", missing.Columns)
	}
}

func TestPredictPropagatesScorerError(t *testing.T) {
	scoreErr := errors.New("onnx run: boom")
	p := New(&stubScorer{err: scoreErr}, DefaultThreshold)

	if _, err := p.Predict("http://example.com"); !errors.Is(err, scoreErr) {
		t.Fatalf("expected scorer error to propagate, got %v", err)
	}
}

func TestNewFallsBackToDefaultThreshold(t *testing.T) {
	for _, bad := range []float64{0, -0.5, 1.5} {
		p := New(&stubScorer{prob: 0.6}, bad)
		pred, err := p.Predict("example.com")
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if pred.Label != 1 {
			t.Errorf("threshold %v: expected default 0.6 cutoff to label 1", bad)
		}
	}
}
