package spell

import (
	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/stats"
)

// FindSpellsInput contains the filter parameters for a search. An
// empty name matches every record; nil filters are inactive. Level
// and Rank are mutually exclusive.
type FindSpellsInput struct {
	Name          string
	Level         *int
	Rank          *int
	School        *string
	SchoolVariant *string
	God           *string
}

// FindSpellsOutput contains the matching spells in dataset order
type FindSpellsOutput struct {
	Spells []sw25.Spell
}

// ListSpellsInput contains parameters for listing by name pattern
type ListSpellsInput struct {
	Name string
}

// ListSpellsOutput contains the matching spells in dataset order
type ListSpellsOutput struct {
	Spells []sw25.Spell
}

// GetStatsInput contains parameters for computing dataset statistics
type GetStatsInput struct{}

// GetStatsOutput contains the dataset summary
type GetStatsOutput struct {
	Stats *stats.SpellStats
}

// GeneratePalettesInput contains the filter for a palette run. At
// least one filter must be active.
type GeneratePalettesInput struct {
	Name          *string
	Level         *int
	Rank          *int
	School        *string
	SchoolVariant *string
	God           *string
}

// Palette pairs a spell with its rendered chat-palette line.
type Palette struct {
	SpellName string
	Text      string
}

// GeneratePalettesOutput contains one rendered line per matched spell.
// Spells that fail to render are reported, not fatal.
type GeneratePalettesOutput struct {
	Palettes []Palette
	Failures []RenderFailure
}

// RenderFailure records a spell the renderer rejected.
type RenderFailure struct {
	SpellName string
	Err       error
}
