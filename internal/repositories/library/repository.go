// Package library provides the repository interface for monster and
// spell datasets stored as JSON arrays on disk.
package library

import (
	"context"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=librarymock github.com/kazuyasi/trpg-json/internal/repositories/library Repository

// SchemaErrorMode controls what a load does with a record that fails
// schema validation.
type SchemaErrorMode int

const (
	// AbortOnSchemaError fails the whole load on the first bad record.
	AbortOnSchemaError SchemaErrorMode = iota

	// SkipOnSchemaError drops bad records and reports how many were
	// skipped.
	SkipOnSchemaError
)

// LoadMonstersInput contains parameters for loading monster datasets.
// Paths are merged in order into one collection.
type LoadMonstersInput struct {
	Paths         []string
	OnSchemaError SchemaErrorMode
}

// LoadMonstersOutput contains the result of loading monster datasets
type LoadMonstersOutput struct {
	Monsters []sw25.Monster

	// Skipped counts records dropped under SkipOnSchemaError.
	Skipped int
}

// LoadSpellsInput contains parameters for loading spell datasets
type LoadSpellsInput struct {
	Paths         []string
	OnSchemaError SchemaErrorMode
}

// LoadSpellsOutput contains the result of loading spell datasets
type LoadSpellsOutput struct {
	Spells  []sw25.Spell
	Skipped int
}

// SaveMonstersInput contains parameters for replacing a monster
// dataset on disk. The whole collection is written, never a patch.
type SaveMonstersInput struct {
	Path     string
	Monsters []sw25.Monster
}

// SaveMonstersOutput contains the result of saving a monster dataset
type SaveMonstersOutput struct {
	Written int
}

// Repository defines the interface for dataset storage operations
type Repository interface {
	// LoadMonsters reads and merges the monster datasets at the given paths
	LoadMonsters(ctx context.Context, input *LoadMonstersInput) (*LoadMonstersOutput, error)

	// LoadSpells reads and merges the spell datasets at the given paths
	LoadSpells(ctx context.Context, input *LoadSpellsInput) (*LoadSpellsOutput, error)

	// SaveMonsters atomically replaces the dataset at the given path
	SaveMonsters(ctx context.Context, input *SaveMonstersInput) (*SaveMonstersOutput, error)
}
