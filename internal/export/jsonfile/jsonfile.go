// Package jsonfile writes a filtered monster collection back out as a
// plain JSON array. Unknown wire properties survive unchanged.
package jsonfile

import (
	"encoding/json"
	"os"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Exporter writes the collection as an indented JSON document.
type Exporter struct{}

// Name identifies the exporter in logs and messages.
func (Exporter) Name() string { return "JSON Exporter" }

// Export serializes the monsters to the destination path. An empty
// collection writes an empty array, not an error.
func (Exporter) Export(monsters []sw25.Monster, destination string) error {
	if monsters == nil {
		monsters = []sw25.Monster{}
	}

	body, err := json.MarshalIndent(monsters, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing monster collection")
	}
	if err := os.WriteFile(destination, append(body, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "writing "+destination)
	}
	return nil
}
