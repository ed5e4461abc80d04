package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/orchestrators/monster"
)

var monsterCmd = &cobra.Command{
	Use:   "monster",
	Short: "Search, edit, and export the monster datasets",
}

var monsterFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Search monsters by name, level, and category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := monsterService()
		if err != nil {
			return err
		}

		out, err := svc.FindMonsters(cmd.Context(), &monster.FindMonstersInput{
			Name:     args[0],
			Level:    intFlag(cmd, "level"),
			Category: stringFlag(cmd, "category"),
		})
		if err != nil {
			return err
		}

		if len(out.Monsters) == 0 {
			return errors.NotFoundf("no monsters match %q", args[0])
		}
		if len(out.Monsters) == 1 {
			return printJSON(out.Monsters)
		}
		for i := range out.Monsters {
			fmt.Println(out.Monsters[i].Name)
		}
		return nil
	},
}

var monsterListCmd = &cobra.Command{
	Use:   "list <pattern>",
	Short: "List monster names matching a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := monsterService()
		if err != nil {
			return err
		}

		out, err := svc.ListMonsters(cmd.Context(), &monster.ListMonstersInput{Name: args[0]})
		if err != nil {
			return err
		}
		if len(out.Monsters) == 0 {
			return errors.NotFoundf("no monsters match %q", args[0])
		}
		for i := range out.Monsters {
			fmt.Println(out.Monsters[i].Name)
		}
		return nil
	},
}

var monsterSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select monsters by query and print or export them",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := monsterService()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		level := intFlag(cmd, "level")
		category := stringFlag(cmd, "category")

		format, _ := cmd.Flags().GetString("export")
		if format != "" {
			destination, _ := cmd.Flags().GetString("output")
			out, err := svc.ExportMonsters(cmd.Context(), &monster.ExportMonstersInput{
				Name:        name,
				Level:       level,
				Category:    category,
				Format:      format,
				Destination: destination,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "%s: %d 件を出力しました\n", out.ExporterName, out.Exported)
			return nil
		}

		out, err := svc.FindMonsters(cmd.Context(), &monster.FindMonstersInput{
			Name:     name,
			Level:    level,
			Category: category,
		})
		if err != nil {
			return err
		}
		return printJSON(out.Monsters)
	},
}

var monsterAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a monster from a single-record JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading "+args[0])
		}
		var m sw25.Monster
		if err := json.Unmarshal(body, &m); err != nil {
			return errors.WrapWithCode(err, errors.CodeSchemaViolation, "parsing "+args[0])
		}

		svc, err := monsterService()
		if err != nil {
			return err
		}
		out, err := svc.AddMonster(cmd.Context(), &monster.AddMonsterInput{Monster: &m})
		if err != nil {
			return err
		}

		if out.Replaced {
			fmt.Printf("成功: %q を上書きしました\n", m.Name)
		} else {
			fmt.Printf("成功: %q を追加しました\n", m.Name)
		}
		return nil
	},
}

var monsterDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a monster by exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := monsterService()
		if err != nil {
			return err
		}
		if _, err := svc.DeleteMonster(cmd.Context(), &monster.DeleteMonsterInput{Name: args[0]}); err != nil {
			return err
		}
		fmt.Printf("成功: %q を削除しました\n", args[0])
		return nil
	},
}

var monsterStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show monster dataset statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := monsterService()
		if err != nil {
			return err
		}
		out, err := svc.GetStats(cmd.Context(), &monster.GetStatsInput{})
		if err != nil {
			return err
		}
		fmt.Print(out.Stats.Format())
		return nil
	},
}

func init() {
	monsterFindCmd.Flags().IntP("level", "l", 0, "filter by exact level")
	monsterFindCmd.Flags().StringP("category", "c", "", "filter by exact category")

	monsterSelectCmd.Flags().StringP("name", "n", "", "filter by name substring")
	monsterSelectCmd.Flags().IntP("level", "l", 0, "filter by exact level")
	monsterSelectCmd.Flags().StringP("category", "c", "", "filter by exact category")
	monsterSelectCmd.Flags().String("export", "", "export format (json, sheets, udonarium)")
	monsterSelectCmd.Flags().String("output", "", "export destination (file path or spreadsheet ID)")

	monsterCmd.AddCommand(monsterFindCmd)
	monsterCmd.AddCommand(monsterListCmd)
	monsterCmd.AddCommand(monsterSelectCmd)
	monsterCmd.AddCommand(monsterAddCmd)
	monsterCmd.AddCommand(monsterDeleteCmd)
	monsterCmd.AddCommand(monsterStatsCmd)
}
