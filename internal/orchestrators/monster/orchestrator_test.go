package monster_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/orchestrators/monster"
	"github.com/kazuyasi/trpg-json/internal/repositories/library"
	librarymock "github.com/kazuyasi/trpg-json/internal/repositories/library/mock"
)

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

type OrchestratorSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	repo      *librarymock.MockRepository
	confirmer *fakeConfirmer
	service   monster.Service
	ctx       context.Context
}

func (s *OrchestratorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = librarymock.NewMockRepository(s.ctrl)
	s.confirmer = &fakeConfirmer{answer: true}
	s.ctx = context.Background()

	svc, err := monster.NewOrchestrator(&monster.Config{
		Repo:      s.repo,
		Paths:     []string{"monsters.json", "homebrew.json"},
		Confirmer: s.confirmer,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorSuite) dataset() []sw25.Monster {
	part := sw25.Part{IsCore: true, HP: 30, MP: 10, Armor: 3, HitRate: 12, Dodge: 11, Damage: 4, PartCount: 1}
	return []sw25.Monster{
		{Name: "Goblin", Level: 2, Category: "蛮族", Parts: []sw25.Part{part}},
		{Name: "Goblin Shaman", Level: 4, Category: "蛮族", Parts: []sw25.Part{part}},
		{Name: "Treant", Level: 8, Category: "植物", Parts: []sw25.Part{part}},
	}
}

func (s *OrchestratorSuite) expectLoad() {
	s.repo.EXPECT().
		LoadMonsters(s.ctx, &library.LoadMonstersInput{Paths: []string{"monsters.json", "homebrew.json"}}).
		Return(&library.LoadMonstersOutput{Monsters: s.dataset()}, nil)
}

func (s *OrchestratorSuite) TestFindMonsters_ByName() {
	s.expectLoad()

	out, err := s.service.FindMonsters(s.ctx, &monster.FindMonstersInput{Name: "Goblin"})
	s.Require().NoError(err)
	s.Require().Len(out.Monsters, 2)
	s.Equal("Goblin", out.Monsters[0].Name)
	s.Equal("Goblin Shaman", out.Monsters[1].Name)
}

func (s *OrchestratorSuite) TestFindMonsters_Conjunction() {
	s.expectLoad()

	level := 2
	category := "蛮族"
	out, err := s.service.FindMonsters(s.ctx, &monster.FindMonstersInput{
		Name:     "Goblin",
		Level:    &level,
		Category: &category,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Monsters, 1)
	s.Equal("Goblin", out.Monsters[0].Name)
}

func (s *OrchestratorSuite) TestFindMonsters_EmptyFilterMatchesAll() {
	s.expectLoad()

	out, err := s.service.FindMonsters(s.ctx, &monster.FindMonstersInput{})
	s.Require().NoError(err)
	s.Len(out.Monsters, 3)
}

func (s *OrchestratorSuite) TestGetMonster_ExactName() {
	s.expectLoad()

	out, err := s.service.GetMonster(s.ctx, &monster.GetMonsterInput{Name: "Goblin"})
	s.Require().NoError(err)
	s.Equal("Goblin", out.Monster.Name)
	s.Equal(2, out.Monster.Level)
}

func (s *OrchestratorSuite) TestGetMonster_NotFound() {
	s.expectLoad()

	_, err := s.service.GetMonster(s.ctx, &monster.GetMonsterInput{Name: "Gob"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorSuite) TestAddMonster_New() {
	s.expectLoad()
	s.repo.EXPECT().
		SaveMonsters(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *library.SaveMonstersInput) (*library.SaveMonstersOutput, error) {
			s.Equal("monsters.json", input.Path)
			s.Len(input.Monsters, 4)
			s.Equal("Orc", input.Monsters[3].Name)
			return &library.SaveMonstersOutput{Written: len(input.Monsters)}, nil
		})

	out, err := s.service.AddMonster(s.ctx, &monster.AddMonsterInput{
		Monster: &sw25.Monster{Name: "Orc", Level: 4, Category: "蛮族", Parts: []sw25.Part{{IsCore: true}}},
	})
	s.Require().NoError(err)
	s.False(out.Replaced)
	s.Empty(s.confirmer.prompts)
}

func (s *OrchestratorSuite) TestAddMonster_OverwriteConfirmed() {
	s.expectLoad()
	s.repo.EXPECT().
		SaveMonsters(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *library.SaveMonstersInput) (*library.SaveMonstersOutput, error) {
			s.Len(input.Monsters, 3)
			s.Equal("Goblin", input.Monsters[2].Name)
			s.Equal(3, input.Monsters[2].Level)
			return &library.SaveMonstersOutput{Written: len(input.Monsters)}, nil
		})

	out, err := s.service.AddMonster(s.ctx, &monster.AddMonsterInput{
		Monster: &sw25.Monster{Name: "Goblin", Level: 3, Category: "蛮族", Parts: []sw25.Part{{IsCore: true}}},
	})
	s.Require().NoError(err)
	s.True(out.Replaced)
	s.Len(s.confirmer.prompts, 1)
}

func (s *OrchestratorSuite) TestAddMonster_OverwriteDeclined() {
	s.expectLoad()
	s.confirmer.answer = false

	_, err := s.service.AddMonster(s.ctx, &monster.AddMonsterInput{
		Monster: &sw25.Monster{Name: "Goblin", Level: 3, Parts: []sw25.Part{{IsCore: true}}},
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorSuite) TestDeleteMonster() {
	s.expectLoad()
	s.repo.EXPECT().
		SaveMonsters(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *library.SaveMonstersInput) (*library.SaveMonstersOutput, error) {
			s.Len(input.Monsters, 2)
			for _, m := range input.Monsters {
				s.NotEqual("Goblin", m.Name)
			}
			return &library.SaveMonstersOutput{Written: len(input.Monsters)}, nil
		})

	out, err := s.service.DeleteMonster(s.ctx, &monster.DeleteMonsterInput{Name: "Goblin"})
	s.Require().NoError(err)
	s.Equal(1, out.Deleted)
}

func (s *OrchestratorSuite) TestDeleteMonster_NotFound() {
	s.expectLoad()

	_, err := s.service.DeleteMonster(s.ctx, &monster.DeleteMonsterInput{Name: "Nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(s.confirmer.prompts)
}

func (s *OrchestratorSuite) TestDeleteMonster_Declined() {
	s.expectLoad()
	s.confirmer.answer = false

	_, err := s.service.DeleteMonster(s.ctx, &monster.DeleteMonsterInput{Name: "Goblin"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorSuite) TestExportMonsters_JSON() {
	s.expectLoad()

	dest := filepath.Join(s.T().TempDir(), "out.json")
	out, err := s.service.ExportMonsters(s.ctx, &monster.ExportMonstersInput{
		Format:      "json",
		Destination: dest,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Exported)
	s.Equal("JSON Exporter", out.ExporterName)
	s.FileExists(dest)
}

func (s *OrchestratorSuite) TestExportMonsters_UnknownFormat() {
	_, err := s.service.ExportMonsters(s.ctx, &monster.ExportMonstersInput{
		Format:      "csv",
		Destination: "out.csv",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorSuite) TestExportMonsters_MissingDestination() {
	_, err := s.service.ExportMonsters(s.ctx, &monster.ExportMonstersInput{Format: "json"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorSuite) TestGetStats() {
	s.expectLoad()

	out, err := s.service.GetStats(s.ctx, &monster.GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(3, out.Stats.TotalCount)
}

func (s *OrchestratorSuite) TestConfigValidation() {
	_, err := monster.NewOrchestrator(&monster.Config{})
	s.Require().Error(err)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}
