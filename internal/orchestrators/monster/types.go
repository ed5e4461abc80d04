package monster

import (
	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/stats"
)

// FindMonstersInput contains the filter parameters for a search. An
// empty name matches every record; nil filters are inactive.
type FindMonstersInput struct {
	Name     string
	Level    *int
	Category *string
}

// FindMonstersOutput contains the matching monsters in dataset order
type FindMonstersOutput struct {
	Monsters []sw25.Monster
}

// ListMonstersInput contains parameters for listing by name pattern
type ListMonstersInput struct {
	Name string
}

// ListMonstersOutput contains the matching monsters in dataset order
type ListMonstersOutput struct {
	Monsters []sw25.Monster
}

// GetMonsterInput contains parameters for an exact-name lookup
type GetMonsterInput struct {
	Name string
}

// GetMonsterOutput contains the matched monster
type GetMonsterOutput struct {
	Monster *sw25.Monster
}

// AddMonsterInput contains the monster to add to the primary dataset
type AddMonsterInput struct {
	Monster *sw25.Monster
}

// AddMonsterOutput contains the result of an add
type AddMonsterOutput struct {
	// Replaced reports whether an existing record of the same name
	// was overwritten.
	Replaced bool
}

// DeleteMonsterInput contains parameters for deleting by exact name
type DeleteMonsterInput struct {
	Name string
}

// DeleteMonsterOutput contains the result of a delete
type DeleteMonsterOutput struct {
	Deleted int
}

// ExportMonstersInput contains the filter, the declared output format
// tag, and the destination the format needs.
type ExportMonstersInput struct {
	Name     string
	Level    *int
	Category *string

	Format      string
	Destination string
}

// ExportMonstersOutput contains the result of an export
type ExportMonstersOutput struct {
	Exported int

	// ExporterName identifies which renderer handled the collection.
	ExporterName string
}

// GetStatsInput contains parameters for computing dataset statistics
type GetStatsInput struct{}

// GetStatsOutput contains the dataset summary
type GetStatsOutput struct {
	Stats *stats.MonsterStats
}
