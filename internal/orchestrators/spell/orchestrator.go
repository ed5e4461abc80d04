// Package spell implements the orchestrator for spell dataset
// operations: search, list, stats, and chat-palette generation.
package spell

//go:generate mockgen -destination=mock/mock_service.go -package=spellmock github.com/kazuyasi/trpg-json/internal/orchestrators/spell Service

import (
	"context"
	"log/slog"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/export/palette"
	"github.com/kazuyasi/trpg-json/internal/query"
	"github.com/kazuyasi/trpg-json/internal/repositories/library"
	"github.com/kazuyasi/trpg-json/internal/stats"
)

// Service defines the interface for spell operations
type Service interface {
	FindSpells(ctx context.Context, input *FindSpellsInput) (*FindSpellsOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// GeneratePalettes renders the chat-palette line for every spell
	// matching the filter. At least one filter must be active.
	GeneratePalettes(ctx context.Context, input *GeneratePalettesInput) (*GeneratePalettesOutput, error)
}

// Config holds the dependencies for the spell orchestrator
type Config struct {
	Repo library.Repository

	// Paths are the dataset files, merged in order.
	Paths []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if len(c.Paths) == 0 {
		vb.RequiredField("Paths")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  library.Repository
	paths []string
}

// NewOrchestrator creates a new spell orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{repo: cfg.Repo, paths: cfg.Paths}, nil
}

func (o *orchestrator) FindSpells(ctx context.Context, input *FindSpellsInput) (*FindSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level != nil && input.Rank != nil {
		return nil, errors.InvalidArgument("level and rank filters cannot be combined")
	}

	spells, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	filter := query.SpellFilter{
		Level:         input.Level,
		Rank:          input.Rank,
		School:        input.School,
		SchoolVariant: input.SchoolVariant,
		God:           input.God,
	}
	if input.Name != "" {
		filter.Name = &input.Name
	}

	results := query.FilterSpells(spells, filter)
	slog.DebugContext(ctx, "spell search",
		"loaded", len(spells),
		"matched", len(results))
	return &FindSpellsOutput{Spells: results}, nil
}

func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spells, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSpellsOutput{Spells: query.SpellsByName(spells, input.Name)}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	spells, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return &GetStatsOutput{Stats: stats.CalculateSpellStats(spells)}, nil
}

func (o *orchestrator) GeneratePalettes(ctx context.Context, input *GeneratePalettesInput) (*GeneratePalettesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level != nil && input.Rank != nil {
		return nil, errors.InvalidArgument("level and rank filters cannot be combined")
	}

	filter := query.SpellFilter{
		Name:          input.Name,
		Level:         input.Level,
		Rank:          input.Rank,
		School:        input.School,
		SchoolVariant: input.SchoolVariant,
		God:           input.God,
	}
	if !filter.Active() {
		return nil, errors.InvalidArgument("at least one filter is required")
	}

	spells, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	out := &GeneratePalettesOutput{}
	for _, s := range query.FilterSpells(spells, filter) {
		text, err := palette.Render(&s)
		if err != nil {
			slog.WarnContext(ctx, "palette render failed",
				"spell", s.Name,
				"error", err)
			out.Failures = append(out.Failures, RenderFailure{SpellName: s.Name, Err: err})
			continue
		}
		out.Palettes = append(out.Palettes, Palette{SpellName: s.Name, Text: text})
	}
	return out, nil
}

func (o *orchestrator) load(ctx context.Context) ([]sw25.Spell, error) {
	out, err := o.repo.LoadSpells(ctx, &library.LoadSpellsInput{Paths: o.paths})
	if err != nil {
		return nil, errors.Wrap(err, "loading spell datasets")
	}
	return out.Spells, nil
}
