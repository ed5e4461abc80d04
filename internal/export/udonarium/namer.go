package udonarium

import (
	"fmt"
	"strconv"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// PartName carries the archive member base name and the display name
// rendered into the XML for one part.
type PartName struct {
	// File is the member name without the .xml extension.
	File string
	// Display is the character name shown by the session tool.
	Display string
}

// partNames derives deterministic member and display names for every
// part of a monster.
//
// A single-part monster uses the monster name alone. Multi-part
// monsters use "{monster}_{label}" where label is the part name, or
// "core" for an unnamed core part, or the part's sequence index for
// unnamed auxiliary parts. Parts sharing a non-empty name get a
// zero-based suffix in encounter order.
func partNames(m *sw25.Monster) ([]PartName, error) {
	names := make([]PartName, len(m.Parts))

	if len(m.Parts) == 1 {
		names[0] = PartName{File: m.Name, Display: displayName(m.Name, &m.Parts[0])}
		return names, nil
	}

	counts := make(map[string]int)
	for i := range m.Parts {
		if m.Parts[i].Name != "" {
			counts[m.Parts[i].Name]++
		}
	}

	seen := make(map[string]int)
	for i := range m.Parts {
		p := &m.Parts[i]
		var label string
		switch {
		case p.Name != "" && counts[p.Name] > 1:
			label = fmt.Sprintf("%s%d", p.Name, seen[p.Name])
			seen[p.Name]++
		case p.Name != "":
			label = p.Name
		case p.IsCore:
			label = "core"
		default:
			label = strconv.Itoa(i)
		}
		names[i] = PartName{
			File:    fmt.Sprintf("%s_%s", m.Name, label),
			Display: displayName(m.Name, p),
		}
	}

	taken := make(map[string]int, len(names))
	for _, n := range names {
		taken[n.File]++
		if taken[n.File] > 1 {
			return nil, errors.PackagingFailedf("duplicate archive member %q for monster %q", n.File, m.Name)
		}
	}
	return names, nil
}

// displayName renders the character name: the part name joins on its
// own line, core parts get the emphasis marker.
func displayName(monster string, p *sw25.Part) string {
	s := monster
	if p.Name != "" {
		s = fmt.Sprintf("%s\n(%s)", s, p.Name)
	}
	if p.IsCore {
		s = "★" + s
	}
	return s
}
