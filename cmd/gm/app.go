package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kazuyasi/trpg-json/internal/config"
	"github.com/kazuyasi/trpg-json/internal/errors"
	"github.com/kazuyasi/trpg-json/internal/orchestrators/monster"
	"github.com/kazuyasi/trpg-json/internal/orchestrators/spell"
	"github.com/kazuyasi/trpg-json/internal/repositories/library"
)

// loadConfig reads the configured file, or falls back to the default
// configuration when no file exists at the conventional location.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		if configPath == "" && errors.IsNotFound(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func monsterService() (monster.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	return monster.NewOrchestrator(&monster.Config{
		Repo:      library.NewFileRepository(),
		Paths:     cfg.MonsterPaths(home),
		Confirmer: stdinConfirmer{},
	})
}

func spellService() (spell.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if len(cfg.Data.Spells) == 0 {
		return nil, errors.FailedPrecondition("no spell datasets configured: add data.spells to the config file")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	return spell.NewOrchestrator(&spell.Config{
		Repo:  library.NewFileRepository(),
		Paths: cfg.SpellPaths(home),
	})
}

// stdinConfirmer asks on stderr and reads the answer from stdin.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printJSON(v interface{}) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing output")
	}
	fmt.Println(string(body))
	return nil
}

// intFlag returns a pointer to the flag's value when the user set it,
// nil otherwise.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// stringFlag returns a pointer to the flag's value when the user set
// it, nil otherwise.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
