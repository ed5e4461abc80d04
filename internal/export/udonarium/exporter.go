// Package udonarium renders monsters into the Udonarium character
// format: one XML document per part, packaged into a ZIP archive with
// deterministic member names. Core parts carry the whole-record
// knowledge, info, and preparedness sections that auxiliary parts
// must omit.
package udonarium

import (
	"os"
	"path/filepath"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Exporter writes monster archives to the filesystem.
type Exporter struct{}

// Name identifies the exporter in logs and messages.
func (Exporter) Name() string { return "Udonarium Exporter" }

// Export renders monsters and writes the archive to the destination
// path, creating parent directories as needed.
func (Exporter) Export(monsters []sw25.Monster, destination string) error {
	if dir := filepath.Dir(destination); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.CodePackagingFailed,
				"creating output directory "+dir)
		}
	}

	f, err := os.Create(destination)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodePackagingFailed,
			"creating archive "+destination)
	}
	defer func() { _ = f.Close() }()

	if err := WriteArchive(f, monsters); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithCode(err, errors.CodePackagingFailed, "closing archive")
	}
	return nil
}
