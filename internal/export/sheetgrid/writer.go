package sheetgrid

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Payload is the finished product of one export: rendered rows plus
// the template layout a writer needs to place them.
type Payload struct {
	Width   int      `json:"width"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// RowWriter delivers a rendered payload to a destination. The local
// implementation writes a JSON document; a remote implementation would
// locate the insertion row and call the spreadsheet API.
type RowWriter interface {
	WriteRows(payload *Payload, destination string) error
}

// FileWriter writes the payload as an indented JSON document to a
// local path, creating parent directories as needed.
type FileWriter struct{}

func (FileWriter) WriteRows(payload *Payload, destination string) error {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing sheet payload")
	}

	if dir := filepath.Dir(destination); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory "+dir)
		}
	}
	if err := os.WriteFile(destination, append(body, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "writing sheet payload to "+destination)
	}
	return nil
}

// ValidateSpreadsheetID checks a destination meant for the remote
// writer. Real spreadsheet IDs are long opaque tokens; anything
// shorter than 20 characters is a pasted fragment or a typo.
func ValidateSpreadsheetID(id string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("spreadsheet_id", id, vb)
	if id != "" {
		errors.ValidateMinLength("spreadsheet_id", id, 20, vb)
	}
	return vb.Build()
}
