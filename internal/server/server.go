// Package server exposes the scoring pipeline over HTTP: a predict
// endpoint, health checks, and the embedded browser UI.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/phishsense-ai/phishsense/internal/config"
	"github.com/phishsense-ai/phishsense/internal/detector"
	"github.com/phishsense-ai/phishsense/internal/pipeline"
	"github.com/phishsense-ai/phishsense/internal/webui"
)

// Predictor classifies one URL. *pipeline.Predictor satisfies it;
// tests substitute a stub.
type Predictor interface {
	Predict(url string) (pipeline.Prediction, error)
}

// Server wraps the HTTP components for PhishSense.
type Server struct {
	mux       *http.ServeMux
	cfg       *config.Config
	predictor Predictor
}

// New creates a new PhishSense server with all routes registered.
func New(cfg *config.Config, predictor Predictor) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		cfg:       cfg,
		predictor: predictor,
	}

	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/predict", s.handlePredict)
	s.mux.HandleFunc("/robots.txt", handleRobots)
	s.mux.Handle("/", webui.Handler())

	return s
}

// Start blocks serving HTTP on addr until the listener fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: time.Duration(s.cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Server.IdleTimeoutSeconds) * time.Second,
	}
	log.Printf("PhishSense serving on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method not allowed", "invalid_request_error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type predictRequest struct {
	URL string `json:"url"`
}

type predictResponse struct {
	URL                 string  `json:"url"`
	Label               int     `json:"label"`
	Prediction          string  `json:"prediction"`
	ProbabilityPhishing float64 `json:"probability_phishing"`
	ModelProbability    float64 `json:"model_probability"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method not allowed", "invalid_request_error")
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxRequestBodyBytes)
	var req predictRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAPIError(w, http.StatusRequestEntityTooLarge, "request body too large", "invalid_request_error")
			return
		}
		writeAPIError(w, http.StatusBadRequest, "invalid JSON body", "invalid_request_error")
		return
	}

	pred, err := s.predictor.Predict(req.URL)
	if err != nil {
		var missing *detector.MissingColumnsError
		if errors.As(err, &missing) {
			log.Printf("feature schema mismatch: %v", missing)
			writeAPIError(w, http.StatusInternalServerError, missing.Error(), "schema_error")
			return
		}
		log.Printf("predict failed: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "prediction failed", "model_error")
		return
	}

	prediction := "legitimate"
	if pred.Label == 1 {
		prediction = "phishing"
	}

	resp := predictResponse{
		URL:                 req.URL,
		Label:               pred.Label,
		Prediction:          prediction,
		ProbabilityPhishing: round4(pred.PhishingProbability),
		ModelProbability:    round4(pred.ModelProbability),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to write predict response: %v", err)
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
