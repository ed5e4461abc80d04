// Package export routes a filtered monster collection to one of the
// renderers by declared output format.
package export

import (
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/export/jsonfile"
	"github.com/kazuyasi/trpg-json/internal/export/sheetgrid"
	"github.com/kazuyasi/trpg-json/internal/export/udonarium"
)

// Format is a declared output format tag.
type Format string

const (
	FormatJSON      Format = "json"
	FormatSheets    Format = "sheets"
	FormatUdonarium Format = "udonarium"
)

// ParseFormat maps a user-supplied tag to a Format. Matching is
// case-insensitive and accepts the spreadsheet aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "sheets", "google-sheets", "googlesheets":
		return FormatSheets, nil
	case "udonarium":
		return FormatUdonarium, nil
	default:
		return "", errors.InvalidArgumentf(
			"unknown export format %q, supported: json, sheets, udonarium", s)
	}
}

// Exporter delivers a monster collection to a destination.
type Exporter interface {
	// Export renders the monsters and writes them to the destination.
	Export(monsters []sw25.Monster, destination string) error

	// Name identifies the exporter in logs and messages.
	Name() string
}

// New returns the exporter for a format.
func New(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return jsonfile.Exporter{}, nil
	case FormatSheets:
		return sheetgrid.NewExporter(nil), nil
	case FormatUdonarium:
		return udonarium.Exporter{}, nil
	default:
		return nil, errors.InvalidArgumentf("unsupported export format %q", format)
	}
}

// ValidateDestination checks the destination string a format needs
// before any rendering work starts. JSON and archive formats take a
// file path; the spreadsheet format takes a spreadsheet ID.
func ValidateDestination(format Format, destination string) error {
	if format == FormatSheets {
		return sheetgrid.ValidateSpreadsheetID(destination)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("destination", destination, vb)
	return vb.Build()
}
