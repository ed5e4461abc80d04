// Package palette renders a spell into a single chat-palette line for
// an online session tool. Support spells render as a plain description
// line; regular spells get a casting-roll command prefix whose bonus
// placeholder the session tool substitutes later.
package palette

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// castingPlaceholder is emitted literally; the session tool resolves it.
const castingPlaceholder = "行使修正"

// Render produces the chat-palette line for a spell.
func Render(spell *sw25.Spell) (string, error) {
	if spell.Name == "" {
		return "", errors.MissingField("name", "spell name is required for a palette line")
	}

	if spell.IsSupport {
		return renderSupport(spell)
	}
	return renderRegular(spell)
}

func renderSupport(spell *sw25.Spell) (string, error) {
	body, err := renderBody(spell)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s / %s", spell.Name, body), nil
}

func renderRegular(spell *sw25.Spell) (string, error) {
	if spell.School == "" {
		return "", errors.MissingField("school", "school is required for regular spells")
	}
	body, err := renderBody(spell)
	if err != nil {
		return "", err
	}
	// Two spaces separate the roll command from the description.
	return fmt.Sprintf("2d+{%s}+{%s}  %s / %s",
		MagicCategory(spell.School), castingPlaceholder, spell.Name, body), nil
}

func renderBody(spell *sw25.Spell) (string, error) {
	mp, err := formatCost(spell.Cost)
	if err != nil {
		return "", err
	}
	target, err := formatTarget(spell.Target)
	if err != nil {
		return "", err
	}
	if !spell.HasRange() {
		return "", errors.MissingField("range", "range is required for a palette line")
	}
	duration, err := formatDuration(spell.Duration)
	if err != nil {
		return "", err
	}
	if spell.Effect == "" {
		return "", errors.MissingField("effect", "effect is required for a palette line")
	}

	return fmt.Sprintf("MP:%s / 対象:%s / 射程:%s / 時間:%s / %s",
		mp, target, spell.Range, duration, spell.Effect), nil
}

// MagicCategory appends the 魔法 suffix to two-character school names.
// Longer and shorter names are used as is.
func MagicCategory(school string) string {
	if utf8.RuneCountInString(school) == 2 {
		return school + "魔法"
	}
	return school
}

func formatCost(cost sw25.Cost) (string, error) {
	switch cost.Kind {
	case sw25.CostValue:
		return strconv.Itoa(cost.Value), nil
	case sw25.CostValuePlus:
		return strconv.Itoa(cost.Value) + "～", nil
	case sw25.CostSpecial:
		return cost.Special, nil
	case "":
		return "", errors.MissingField("cost", "MP cost is required for a palette line")
	default:
		return "", errors.InvalidVariant("cost", string(cost.Kind))
	}
}

func formatTarget(target sw25.Target) (string, error) {
	switch target.Kind {
	case sw25.TargetIndividual:
		return target.Individual, nil
	case sw25.TargetArea:
		a := target.Area
		return fmt.Sprintf("%s(半径%sm%s)", a.Value, a.RadiusM, a.Suffix), nil
	case "":
		return "", errors.MissingField("target", "target is required for a palette line")
	default:
		return "", errors.InvalidVariant("target", string(target.Kind))
	}
}

func formatDuration(duration sw25.Duration) (string, error) {
	switch duration.Kind {
	case sw25.DurationText:
		return duration.Text, nil
	case sw25.DurationNumeric:
		return fmt.Sprintf("%d%s", duration.Num, duration.Unit), nil
	case "":
		return "", errors.MissingField("duration", "duration is required for a palette line")
	default:
		return "", errors.InvalidVariant("duration", string(duration.Kind))
	}
}
