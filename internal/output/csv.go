/*
PURPOSE:
  Appends metric reports to a CSV accumulation file.
  One row per invocation; the header is written only when the file is new.

REQUIREMENTS:
  User-specified:
  - Append, never truncate.
  - 13 fixed columns, empty string for unavailable values.
  - Header exactly once, on first creation.

  Implementation-discovered:
  - The existence check and the open are separate steps. Two processes
    appending to a fresh path at once can both write a header. Accepted.
  - Rows use CRLF terminators to match existing accumulation files.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns error on open, write or flush failure.
  - A failure mid-row can leave a partial line behind. No rollback.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("metrics.csv")
  w.Write(report)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If the CSV format changes, update model.CSVHeader and Report.CSVRecord().

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Existing files are never migrated when columns change.
*/

package output

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

// CSVWriter handles appending reports to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter opens path for appending, creating it if needed.
// The header row is written only if the file did not exist beforehand.
func NewCSVWriter(path string) (*CSVWriter, error) {
	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if writeHeader {
		if err := w.Write(model.CSVHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write appends a single report row.
func (cw *CSVWriter) Write(r model.Report) error {
	if err := cw.writer.Write(r.CSVRecord()); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// AppendCSV appends one report row to path, writing the header first if
// the file is being created.
func AppendCSV(path string, r model.Report) (err error) {
	cw, err := NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return cw.Write(r)
}
