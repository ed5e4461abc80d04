package query

import (
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

// MonsterFilter is a conjunction of optional predicates. A nil field
// means the predicate is inactive.
type MonsterFilter struct {
	Name     *string
	Level    *int
	Category *string
}

// Active reports whether at least one predicate is set.
func (f MonsterFilter) Active() bool {
	return f.Name != nil || f.Level != nil || f.Category != nil
}

// MonstersByName returns monsters whose name contains pattern.
// Matching is case-sensitive; an empty pattern matches everything.
func MonstersByName(monsters []sw25.Monster, pattern string) []sw25.Monster {
	return filterMonsters(monsters, func(m *sw25.Monster) bool {
		return strings.Contains(m.Name, pattern)
	})
}

// MonstersByExactName returns monsters whose name equals name.
func MonstersByExactName(monsters []sw25.Monster, name string) []sw25.Monster {
	return filterMonsters(monsters, func(m *sw25.Monster) bool {
		return m.Name == name
	})
}

// MonstersByLevel returns monsters of exactly level n.
func MonstersByLevel(monsters []sw25.Monster, n int) []sw25.Monster {
	return filterMonsters(monsters, func(m *sw25.Monster) bool {
		return m.Level == n
	})
}

// MonstersByCategory returns monsters whose category equals category.
func MonstersByCategory(monsters []sw25.Monster, category string) []sw25.Monster {
	return filterMonsters(monsters, func(m *sw25.Monster) bool {
		return m.Category == category
	})
}

// FilterMonsters applies every active predicate of f as a conjunction.
func FilterMonsters(monsters []sw25.Monster, f MonsterFilter) []sw25.Monster {
	if !f.Active() {
		return append([]sw25.Monster(nil), monsters...)
	}
	out := monsters
	if f.Name != nil {
		out = MonstersByName(out, *f.Name)
	}
	if f.Level != nil {
		out = MonstersByLevel(out, *f.Level)
	}
	if f.Category != nil {
		out = MonstersByCategory(out, *f.Category)
	}
	return out
}

func filterMonsters(monsters []sw25.Monster, keep func(*sw25.Monster) bool) []sw25.Monster {
	out := make([]sw25.Monster, 0, len(monsters))
	for i := range monsters {
		if keep(&monsters[i]) {
			out = append(out, monsters[i])
		}
	}
	return out
}
