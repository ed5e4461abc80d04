// Package monster implements the orchestrator for monster dataset
// operations: search, list, add, delete, stats, and export.
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/kazuyasi/trpg-json/internal/orchestrators/monster Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/export"
	"github.com/kazuyasi/trpg-json/internal/query"
	"github.com/kazuyasi/trpg-json/internal/repositories/library"
	"github.com/kazuyasi/trpg-json/internal/stats"
)

// Service defines the interface for monster operations
type Service interface {
	FindMonsters(ctx context.Context, input *FindMonstersInput) (*FindMonstersOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)

	// AddMonster appends to the primary dataset. A record with the
	// same name is overwritten after the confirmer approves.
	AddMonster(ctx context.Context, input *AddMonsterInput) (*AddMonsterOutput, error)

	// DeleteMonster removes every record with the exact name after
	// the confirmer approves.
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	ExportMonsters(ctx context.Context, input *ExportMonstersInput) (*ExportMonstersOutput, error)
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Config holds the dependencies for the monster orchestrator
type Config struct {
	Repo library.Repository

	// Paths are the dataset files, merged in order. Writes go to the
	// first path.
	Paths []string

	Confirmer Confirmer
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
	if c.Confirmer == nil {
		vb.RequiredField("Confirmer")
	}

	return vb.Build()
}

type orchestrator struct {
	repo      library.Repository
	paths     []string
	confirmer Confirmer
}

// NewOrchestrator creates a new monster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:      cfg.Repo,
		paths:     cfg.Paths,
		confirmer: cfg.Confirmer,
	}, nil
}

func (o *orchestrator) FindMonsters(ctx context.Context, input *FindMonstersInput) (*FindMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	filter := query.MonsterFilter{Level: input.Level, Category: input.Category}
	if input.Name != "" {
		filter.Name = &input.Name
	}

	results := query.FilterMonsters(monsters, filter)
	slog.DebugContext(ctx, "monster search",
		"loaded", len(monsters),
		"matched", len(results))
	return &FindMonstersOutput{Monsters: results}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListMonstersOutput{Monsters: query.MonstersByName(monsters, input.Name)}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	matches := query.MonstersByExactName(monsters, input.Name)
	if len(matches) == 0 {
		return nil, errors.NotFoundf("monster %q not found", input.Name)
	}
	return &GetMonsterOutput{Monster: &matches[0]}, nil
}

func (o *orchestrator) AddMonster(ctx context.Context, input *AddMonsterInput) (*AddMonsterOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if input.Monster.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	if len(query.MonstersByExactName(monsters, input.Monster.Name)) > 0 {
		prompt := fmt.Sprintf("%q という名前のモンスターは既に存在します。上書きしますか？", input.Monster.Name)
		if !o.confirmer.Confirm(prompt) {
			return nil, errors.FailedPrecondition("cancelled")
		}
		monsters = removeByName(monsters, input.Monster.Name)
		replaced = true
	}

	monsters = append(monsters, *input.Monster)
	if err := o.save(ctx, monsters); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "monster added",
		"name", input.Monster.Name,
		"replaced", replaced)
	return &AddMonsterOutput{Replaced: replaced}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := len(query.MonstersByExactName(monsters, input.Name))
	if matched == 0 {
		return nil, errors.NotFoundf("monster %q not found", input.Name)
	}

	if !o.confirmer.Confirm(fmt.Sprintf("%q を削除しますか？", input.Name)) {
		return nil, errors.FailedPrecondition("cancelled")
	}

	if err := o.save(ctx, removeByName(monsters, input.Name)); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "monster deleted", "name", input.Name, "count", matched)
	return &DeleteMonsterOutput{Deleted: matched}, nil
}

func (o *orchestrator) ExportMonsters(ctx context.Context, input *ExportMonstersInput) (*ExportMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}
	if err := export.ValidateDestination(format, input.Destination); err != nil {
		return nil, err
	}

	found, err := o.FindMonsters(ctx, &FindMonstersInput{
		Name:     input.Name,
		Level:    input.Level,
		Category: input.Category,
	})
	if err != nil {
		return nil, err
	}

	exporter, err := export.New(format)
	if err != nil {
		return nil, err
	}
	if err := exporter.Export(found.Monsters, input.Destination); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "monsters exported",
		"format", string(format),
		"count", len(found.Monsters),
		"destination", input.Destination)
	return &ExportMonstersOutput{
		Exported:     len(found.Monsters),
		ExporterName: exporter.Name(),
	}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	monsters, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return &GetStatsOutput{Stats: stats.CalculateMonsterStats(monsters)}, nil
}

func (o *orchestrator) load(ctx context.Context) ([]sw25.Monster, error) {
	out, err := o.repo.LoadMonsters(ctx, &library.LoadMonstersInput{Paths: o.paths})
	if err != nil {
		return nil, errors.Wrap(err, "loading monster datasets")
	}
	return out.Monsters, nil
}

func (o *orchestrator) save(ctx context.Context, monsters []sw25.Monster) error {
	_, err := o.repo.SaveMonsters(ctx, &library.SaveMonstersInput{
		Path:     o.paths[0],
		Monsters: monsters,
	})
	if err != nil {
		return errors.Wrap(err, "saving monster dataset")
	}
	return nil
}

func removeByName(monsters []sw25.Monster, name string) []sw25.Monster {
	kept := monsters[:0:0]
	for i := range monsters {
		if monsters[i].Name != name {
			kept = append(kept, monsters[i])
		}
	}
	return kept
}
