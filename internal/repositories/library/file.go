package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// FileRepository implements Repository over JSON array files on disk.
type FileRepository struct{}

// NewFileRepository creates a file-backed repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// LoadMonsters reads every path in order and merges the records into
// one collection. Under SkipOnSchemaError a bad record is counted and
// dropped instead of failing the load.
func (r *FileRepository) LoadMonsters(ctx context.Context, input *LoadMonstersInput) (*LoadMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Paths) == 0 {
		return nil, errors.InvalidArgument("at least one dataset path is required")
	}

	out := &LoadMonstersOutput{}
	for _, path := range input.Paths {
		records, err := readArray(path)
		if err != nil {
			return nil, err
		}
		for i, raw := range records {
			var m sw25.Monster
			if err := json.Unmarshal(raw, &m); err != nil {
				if input.OnSchemaError == SkipOnSchemaError {
					out.Skipped++
					continue
				}
				return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation,
					fmt.Sprintf("record %d in %s", i, path))
			}
			out.Monsters = append(out.Monsters, m)
		}
	}
	return out, nil
}

// LoadSpells reads every path in order and merges the records into one
// collection, with the same schema-error handling as LoadMonsters.
func (r *FileRepository) LoadSpells(ctx context.Context, input *LoadSpellsInput) (*LoadSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Paths) == 0 {
		return nil, errors.InvalidArgument("at least one dataset path is required")
	}

	out := &LoadSpellsOutput{}
	for _, path := range input.Paths {
		records, err := readArray(path)
		if err != nil {
			return nil, err
		}
		for i, raw := range records {
			var s sw25.Spell
			if err := json.Unmarshal(raw, &s); err != nil {
				if input.OnSchemaError == SkipOnSchemaError {
					out.Skipped++
					continue
				}
				return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation,
					fmt.Sprintf("record %d in %s", i, path))
			}
			out.Spells = append(out.Spells, s)
		}
	}
	return out, nil
}

// SaveMonsters replaces the dataset wholesale. The write goes through
// a temporary file and a rename so a crash mid-write cannot corrupt
// the dataset.
func (r *FileRepository) SaveMonsters(ctx context.Context, input *SaveMonstersInput) (*SaveMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("dataset path is required")
	}

	monsters := input.Monsters
	if monsters == nil {
		monsters = []sw25.Monster{}
	}
	body, err := json.MarshalIndent(monsters, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "serializing monster dataset")
	}

	if err := writeFileAtomic(input.Path, append(body, '\n'), 0o644); err != nil {
		return nil, errors.Wrap(err, "writing "+input.Path)
	}
	return &SaveMonstersOutput{Written: len(monsters)}, nil
}

// readArray reads one dataset file as a JSON array of raw records.
func readArray(path string) ([]json.RawMessage, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("dataset %s not found", path)
		}
		return nil, errors.Wrap(err, "reading "+path)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation,
			path+" is not a JSON array")
	}
	return records, nil
}

// writeFileAtomic writes data through a temporary file, fsyncs, and
// renames it onto the target path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
