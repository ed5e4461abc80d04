// Package sheetgrid renders monsters into the two-row-per-part cell
// layout of the encounter spreadsheet template. The renderer only
// produces relative rows and merge metadata; placing them at an
// absolute grid position belongs to the RowWriter.
package sheetgrid

import (
	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Exporter renders monsters and hands the payload to a row writer.
type Exporter struct {
	writer RowWriter
}

// NewExporter builds an exporter around the given writer. A nil
// writer falls back to the local file writer.
func NewExporter(w RowWriter) *Exporter {
	if w == nil {
		w = FileWriter{}
	}
	return &Exporter{writer: w}
}

// Name identifies the exporter in logs and messages.
func (*Exporter) Name() string { return "Spreadsheet Exporter" }

// Export renders every monster into consecutive 2-row blocks and
// delivers one payload to the writer.
func (e *Exporter) Export(monsters []sw25.Monster, destination string) error {
	if len(monsters) == 0 {
		return errors.InvalidArgument("nothing to export: empty monster list")
	}

	rows := make([]Row, 0, 2*len(monsters))
	next := 1
	for i := range monsters {
		block := Render(&monsters[i], next)
		rows = append(rows, block...)
		next += len(block)
	}

	payload := &Payload{Width: rowColumns, Columns: Columns(), Rows: rows}
	return e.writer.WriteRows(payload, destination)
}
