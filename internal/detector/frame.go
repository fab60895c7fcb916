package detector

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports every column the classifier expects that
// the extracted feature set did not provide. It indicates a schema
// mismatch between the extractor and the training-time columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("feature set is missing columns the model expects: %s", strings.Join(e.Columns, ", "))
}

// BuildVector orders extracted features into the positional encoding
// fixed by columns. Features absent from columns are dropped; columns
// absent from feats fail with every missing name listed so the
// mismatch is diagnosable in one pass.
func BuildVector(feats map[string]float64, columns []string) ([]float32, error) {
	var missing []string
	for _, col := range columns {
		if _, ok := feats[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	vector := make([]float32, len(columns))
	for i, col := range columns {
		vector[i] = float32(feats[col])
	}
	return vector, nil
}
