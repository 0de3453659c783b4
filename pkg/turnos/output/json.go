// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

// ToJSON serializes appointments as a JSON array. Non-ASCII text is written
// literally and the document has no trailing newline, so the same input
// always yields the same bytes.
func ToJSON(appts []models.Appointment, pretty bool) ([]byte, error) {
	if appts == nil {
		appts = []models.Appointment{}
	}
	return encode(appts, pretty)
}

// ResultToJSON serializes a full result including per-sheet reports.
func ResultToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return encode(res, pretty)
}

func encode(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
