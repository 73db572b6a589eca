/*
PURPOSE:
  Appends metric reports to a JSON Lines file (NDJSON).
  Optimized for machine parsing alongside the CSV accumulation file.

REQUIREMENTS:
  User-specified:
  - Optional; only written when a path is configured.

  Implementation-discovered:
  - JSON Lines is append-friendly, same lifecycle as the CSV file.
  - Unavailable values are encoded as null, not omitted.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns error on open or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  w, err := output.NewJSONWriter("metrics.jsonl")
  w.Write(report)
  w.Close()

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

// JSONWriter handles appending reports to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter opens path for appending, creating it if needed.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single report as a JSON line.
func (jw *JSONWriter) Write(r model.Report) error {
	return jw.encoder.Encode(r)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

// AppendJSON appends one report line to path.
func AppendJSON(path string, r model.Report) (err error) {
	jw, err := NewJSONWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := jw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return jw.Write(r)
}
