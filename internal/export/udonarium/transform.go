package udonarium

import (
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

// renderedMonster is a monster flattened for XML generation. Whole
// record fields that only core parts display are copied onto the core
// parts so the document builder never reaches back into the record.
type renderedMonster struct {
	Name            string
	Category        string
	Level           int
	Fame            int
	Initiative      int
	CommonAbilities string
	Parts           []renderedPart
}

type renderedPart struct {
	DisplayName       string
	IsCore            bool
	HP                int
	MP                int
	Armor             int
	HitRate           int
	Dodge             int
	Damage            int
	LifeResistance    int
	MentalResistance  int
	SpecificAbilities string
	Weakness          string
	WeaknessValue     int
}

// transform flattens a monster for rendering. MP pools of -1 become 0.
func transform(m *sw25.Monster, names []PartName) renderedMonster {
	parts := make([]renderedPart, len(m.Parts))
	for i := range m.Parts {
		p := &m.Parts[i]
		mp := p.MP
		if mp < 0 {
			mp = 0
		}
		rp := renderedPart{
			DisplayName:       names[i].Display,
			IsCore:            p.IsCore,
			HP:                p.HP,
			MP:                mp,
			Armor:             p.Armor,
			HitRate:           p.HitRate,
			Dodge:             p.Dodge,
			Damage:            p.Damage,
			LifeResistance:    m.LifeResistance,
			MentalResistance:  m.MentalResistance,
			SpecificAbilities: p.SpecificAbilities,
		}
		if p.IsCore {
			rp.Weakness = m.Weakness
			rp.WeaknessValue = m.WeaknessValue
		}
		parts[i] = rp
	}

	return renderedMonster{
		Name:            m.Name,
		Category:        m.Category,
		Level:           m.Level,
		Fame:            m.Fame,
		Initiative:      m.Initiative,
		CommonAbilities: m.CommonAbilities,
		Parts:           parts,
	}
}

// AdjustValue converts an expected-value combat score to the base value
// the session tool works with. Damage is already a base value and is
// never adjusted.
func AdjustValue(v int) int {
	return v - 7
}

var weaknessReplacer = strings.NewReplacer(
	"エネルギー", "E",
	"ダメージ", "ダメ",
	"属性", "",
)

// TransformWeakness shortens weakness text for display cells:
// エネルギー becomes E, ダメージ becomes ダメ, 属性 is dropped.
func TransformWeakness(weakness string) string {
	return weaknessReplacer.Replace(weakness)
}
