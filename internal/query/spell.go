package query

import (
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

// SpellFilter is a conjunction of optional predicates. A nil field
// means the predicate is inactive. Level and Rank are distinct axes;
// callers decide whether supplying both is an error.
type SpellFilter struct {
	Name          *string
	Level         *int
	Rank          *int
	School        *string
	SchoolVariant *string
	God           *string
}

// Active reports whether at least one predicate is set.
func (f SpellFilter) Active() bool {
	return f.Name != nil || f.Level != nil || f.Rank != nil ||
		f.School != nil || f.SchoolVariant != nil || f.God != nil
}

// SpellsByName returns spells whose name contains pattern.
// Matching is case-sensitive; an empty pattern matches everything.
func SpellsByName(spells []sw25.Spell, pattern string) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return strings.Contains(s.Name, pattern)
	})
}

// SpellsByExactName returns spells whose name equals name.
func SpellsByExactName(spells []sw25.Spell, name string) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.Name == name
	})
}

// SpellsByLevel returns spells castable at character level n: exact
// levels must equal n, minimum levels must not exceed n. Rank-based
// spells never match.
func SpellsByLevel(spells []sw25.Spell, n int) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.Level.MatchesLevel(n)
	})
}

// SpellsByRank returns rank-based spells of exactly rank r.
func SpellsByRank(spells []sw25.Spell, r int) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.Level.MatchesRank(r)
	})
}

// SpellsBySchool returns spells whose school equals school.
func SpellsBySchool(spells []sw25.Spell, school string) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.School == school
	})
}

// SpellsBySchoolVariant returns spells whose school_variant equals
// variant. Records without the field never match.
func SpellsBySchoolVariant(spells []sw25.Spell, variant string) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.SchoolVariant != nil && *s.SchoolVariant == variant
	})
}

// SpellsByGod returns spells whose god equals god. Records without the
// field never match.
func SpellsByGod(spells []sw25.Spell, god string) []sw25.Spell {
	return filterSpells(spells, func(s *sw25.Spell) bool {
		return s.God != nil && *s.God == god
	})
}

// FilterSpells applies every active predicate of f as a conjunction.
func FilterSpells(spells []sw25.Spell, f SpellFilter) []sw25.Spell {
	if !f.Active() {
		return append([]sw25.Spell(nil), spells...)
	}
	out := spells
	if f.Name != nil {
		out = SpellsByName(out, *f.Name)
	}
	if f.Level != nil {
		out = SpellsByLevel(out, *f.Level)
	}
	if f.Rank != nil {
		out = SpellsByRank(out, *f.Rank)
	}
	if f.School != nil {
		out = SpellsBySchool(out, *f.School)
	}
	if f.SchoolVariant != nil {
		out = SpellsBySchoolVariant(out, *f.SchoolVariant)
	}
	if f.God != nil {
		out = SpellsByGod(out, *f.God)
	}
	return out
}

func filterSpells(spells []sw25.Spell, keep func(*sw25.Spell) bool) []sw25.Spell {
	out := make([]sw25.Spell, 0, len(spells))
	for i := range spells {
		if keep(&spells[i]) {
			out = append(out, spells[i])
		}
	}
	return out
}
