// Package detector wraps the pre-trained phishing classifier. The
// model ships as an ONNX bundle loaded once at startup; scoring is
// safe to call from concurrent requests.
package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

const (
	modelFile   = "phishing_rf.onnx"
	columnsFile = "feature_columns.json"
)

// Model wraps the ONNX session and the column-order artifact the
// classifier was trained with. Immutable after Load.
type Model struct {
	session *ort.AdvancedSession
	columns []string

	input  *ort.Tensor[float32]
	output *ort.Tensor[float32]

	mu sync.Mutex
}

// Load initializes the ONNX session from the bundle directory. The
// bundle must hold the model and its feature column list; callers
// treat a failure here as fatal, so errors name the exact missing
// path.
func Load(bundleDir string) (*Model, error) {
	if bundleDir == "" {
		return nil, errors.New("bundleDir is empty")
	}

	modelPath := filepath.Join(bundleDir, modelFile)
	columnsPath := filepath.Join(bundleDir, columnsFile)

	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file missing at %s: %w", modelPath, err)
	}
	if _, err := os.Stat(columnsPath); err != nil {
		return nil, fmt.Errorf("feature columns file missing at %s: %w", columnsPath, err)
	}

	columns, err := loadColumns(columnsPath)
	if err != nil {
		return nil, fmt.Errorf("load feature columns: %w", err)
	}

	libPath := resolveSharedLibraryPath(bundleDir)
	if libPath == "" {
		return nil, errors.New("onnxruntime shared library not found; set ONNXRUNTIME_SHARED_LIBRARY_PATH or install the runtime")
	}
	ort.SetSharedLibraryPath(libPath)
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	inputShape := ort.NewShape(1, int64(len(columns)))
	input, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	outputShape := ort.NewShape(1, 2)
	output, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	// skl2onnx export conventions: one float_input tensor and, with
	// zipmap disabled, a [1,2] probabilities tensor (class 1 = phishing).
	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"float_input"},
		[]string{"probabilities"},
		[]ort.Value{input},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &Model{
		session: session,
		columns: columns,
		input:   input,
		output:  output,
	}, nil
}

// Columns returns the feature order the classifier was trained on.
func (m *Model) Columns() []string {
	return m.columns
}

// Score runs the classifier over one feature vector laid out in
// Columns order and returns the phishing-class probability. The mutex
// serializes access to the shared tensors, so concurrent callers need
// no synchronization of their own.
func (m *Model) Score(vector []float32) (float64, error) {
	if m == nil || m.session == nil {
		return 0, errors.New("phishing model not initialized")
	}
	if len(vector) != len(m.columns) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(vector), len(m.columns))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.input.GetData(), vector)

	if err := m.session.Run(); err != nil {
		return 0, fmt.Errorf("onnx run: %w", err)
	}

	probs := m.output.GetData()
	return float64(probs[1]), nil
}

func loadColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, errors.New("feature columns list is empty")
	}
	return columns, nil
}

// resolveSharedLibraryPath attempts to locate a platform-specific onnxruntime shared library.
// If ONNXRUNTIME_SHARED_LIBRARY_PATH is set, it wins; otherwise we probe common names/locations.
func resolveSharedLibraryPath(bundleDir string) string {
	if env := strings.TrimSpace(os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")); env != "" {
		return env
	}

	names := []string{
		"libonnxruntime.dylib",
		"onnxruntime.dylib",
		"libonnxruntime.so",
		"onnxruntime.so",
		"onnxruntime.dll",
	}
	dirs := []string{
		bundleDir,
		filepath.Join(bundleDir, "lib"),
		".",
		"/opt/homebrew/lib",
		"/usr/local/lib",
		"/usr/lib",
	}

	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
