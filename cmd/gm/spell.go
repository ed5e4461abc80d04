package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/orchestrators/spell"
)

var spellCmd = &cobra.Command{
	Use:   "spell",
	Short: "Search the spell datasets and generate chat palettes",
}

var spellFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Search spells by name, level or rank, school, variant, and god",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := spellService()
		if err != nil {
			return err
		}

		out, err := svc.FindSpells(cmd.Context(), &spell.FindSpellsInput{
			Name:          args[0],
			Level:         intFlag(cmd, "level"),
			Rank:          intFlag(cmd, "rank"),
			School:        stringFlag(cmd, "school"),
			SchoolVariant: stringFlag(cmd, "variant"),
			God:           stringFlag(cmd, "god"),
		})
		if err != nil {
			return err
		}
		if len(out.Spells) == 0 {
			return errors.NotFoundf("no spells match %q", args[0])
		}
		if len(out.Spells) == 1 {
			return printJSON(out.Spells)
		}
		for i := range out.Spells {
			fmt.Println(out.Spells[i].Name)
		}
		return nil
	},
}

var spellListCmd = &cobra.Command{
	Use:   "list <pattern>",
	Short: "List spell names matching a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := spellService()
		if err != nil {
			return err
		}

		out, err := svc.ListSpells(cmd.Context(), &spell.ListSpellsInput{Name: args[0]})
		if err != nil {
			return err
		}
		if len(out.Spells) == 0 {
			return errors.NotFoundf("no spells match %q", args[0])
		}
		for i := range out.Spells {
			fmt.Println(out.Spells[i].Name)
		}
		return nil
	},
}

var spellStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spell dataset statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := spellService()
		if err != nil {
			return err
		}
		out, err := svc.GetStats(cmd.Context(), &spell.GetStatsInput{})
		if err != nil {
			return err
		}
		fmt.Print(out.Stats.Format())
		return nil
	},
}

var spellPaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate chat-palette lines for spells matching a filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := spellService()
		if err != nil {
			return err
		}

		out, err := svc.GeneratePalettes(cmd.Context(), &spell.GeneratePalettesInput{
			Name:          stringFlag(cmd, "name"),
			Level:         intFlag(cmd, "level"),
			Rank:          intFlag(cmd, "rank"),
			School:        stringFlag(cmd, "school"),
			SchoolVariant: stringFlag(cmd, "variant"),
			God:           stringFlag(cmd, "god"),
		})
		if err != nil {
			return err
		}
		if len(out.Palettes) == 0 && len(out.Failures) == 0 {
			return errors.NotFound("no spells match the filter")
		}

		for _, p := range out.Palettes {
			fmt.Println(p.Text)
		}
		for _, f := range out.Failures {
			fmt.Fprintf(os.Stderr, "エラー: %s: %v\n", f.SpellName, f.Err)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{spellFindCmd, spellPaletteCmd} {
		cmd.Flags().IntP("level", "l", 0, "filter by exact level (includes value_plus minimums)")
		cmd.Flags().IntP("rank", "r", 0, "filter by exact rank")
		cmd.Flags().StringP("school", "s", "", "filter by exact school")
		cmd.Flags().String("variant", "", "filter by exact school variant")
		cmd.Flags().String("god", "", "filter by exact god")
	}
	spellPaletteCmd.Flags().StringP("name", "n", "", "filter by name substring")

	spellCmd.AddCommand(spellFindCmd)
	spellCmd.AddCommand(spellListCmd)
	spellCmd.AddCommand(spellStatsCmd)
	spellCmd.AddCommand(spellPaletteCmd)
}
