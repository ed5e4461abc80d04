package sw25

import (
	"encoding/json"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

// NoMovement marks a movement speed that does not apply to the monster.
const NoMovement = -1

// Monster is a creature record. Whole-record fields like resistances
// and initiative belong to the monster; combat statistics live on its
// parts. Parts keep their wire order.
type Monster struct {
	Name     string
	Level    int
	Category string

	// Page is the rulebook reference for the entry.
	Page string

	LifeResistance   int
	MentalResistance int
	Fame             int
	WeaknessValue    int
	Initiative       int
	Weakness         string
	CommonAbilities  string

	GroundSpeed     int
	GroundSpeedDesc string
	AirSpeed        int
	AirSpeedDesc    string

	Parts []Part

	// Extra holds JSON properties not mapped to a named field,
	// re-emitted unchanged on serialization.
	Extra map[string]json.RawMessage
}

// Part is a sub-component of a monster with its own combat statistics.
// HitRate and Dodge are expected values; renderers convert them to base
// values with AdjustValue.
type Part struct {
	Name              string `json:"name"`
	IsCore            bool   `json:"is_core"`
	HP                int    `json:"hp"`
	MP                int    `json:"mp"`
	Armor             int    `json:"armor"`
	HitRate           int    `json:"hit_rate"`
	Dodge             int    `json:"dodge"`
	Damage            int    `json:"damage"`
	PartCount         int    `json:"part_count"`
	SpecificAbilities string `json:"part_specific_abilities"`
}

// CorePart returns the first part flagged as core, or the first part
// when none is flagged. The data format permits several core parts;
// callers that need one pick the first.
func (m *Monster) CorePart() *Part {
	for i := range m.Parts {
		if m.Parts[i].IsCore {
			return &m.Parts[i]
		}
	}
	if len(m.Parts) > 0 {
		return &m.Parts[0]
	}
	return nil
}

type monsterJSON struct {
	Name             string `json:"name"`
	Level            int    `json:"level"`
	Category         string `json:"category"`
	Page             string `json:"page"`
	LifeResistance   int    `json:"life_resistance"`
	MentalResistance int    `json:"mental_resistance"`
	Fame             int    `json:"fame"`
	WeaknessValue    int    `json:"weakness_value"`
	Initiative       int    `json:"initiative"`
	Weakness         string `json:"weakness"`
	CommonAbilities  string `json:"common_abilities"`
	GroundSpeed      int    `json:"ground_speed"`
	GroundSpeedDesc  string `json:"ground_speed_desc"`
	AirSpeed         int    `json:"air_speed"`
	AirSpeedDesc     string `json:"air_speed_desc"`
	Parts            []Part `json:"parts"`
}

var monsterKnownKeys = []string{
	"name", "level", "category", "page",
	"life_resistance", "mental_resistance",
	"fame", "weakness_value", "initiative",
	"weakness", "common_abilities",
	"ground_speed", "ground_speed_desc",
	"air_speed", "air_speed_desc",
	"parts",
}

// UnmarshalJSON decodes a monster record, keeping unrecognized
// properties in Extra. A record without parts is rejected.
func (m *Monster) UnmarshalJSON(data []byte) error {
	var mj monsterJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding monster record")
	}
	if len(mj.Parts) == 0 {
		return errors.SchemaViolation("parts", "monster record has no parts")
	}

	extra, err := splitExtra(data, monsterKnownKeys)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding monster record")
	}

	*m = Monster{
		Name:             mj.Name,
		Level:            mj.Level,
		Category:         mj.Category,
		Page:             mj.Page,
		LifeResistance:   mj.LifeResistance,
		MentalResistance: mj.MentalResistance,
		Fame:             mj.Fame,
		WeaknessValue:    mj.WeaknessValue,
		Initiative:       mj.Initiative,
		Weakness:         mj.Weakness,
		CommonAbilities:  mj.CommonAbilities,
		GroundSpeed:      mj.GroundSpeed,
		GroundSpeedDesc:  mj.GroundSpeedDesc,
		AirSpeed:         mj.AirSpeed,
		AirSpeedDesc:     mj.AirSpeedDesc,
		Parts:            mj.Parts,
		Extra:            extra,
	}
	return nil
}

// MarshalJSON re-emits named fields merged with Extra. Named fields win
// on key collisions.
func (m Monster) MarshalJSON() ([]byte, error) {
	mj := monsterJSON{
		Name:             m.Name,
		Level:            m.Level,
		Category:         m.Category,
		Page:             m.Page,
		LifeResistance:   m.LifeResistance,
		MentalResistance: m.MentalResistance,
		Fame:             m.Fame,
		WeaknessValue:    m.WeaknessValue,
		Initiative:       m.Initiative,
		Weakness:         m.Weakness,
		CommonAbilities:  m.CommonAbilities,
		GroundSpeed:      m.GroundSpeed,
		GroundSpeedDesc:  m.GroundSpeedDesc,
		AirSpeed:         m.AirSpeed,
		AirSpeedDesc:     m.AirSpeedDesc,
		Parts:            m.Parts,
	}
	return mergeExtra(mj, m.Extra)
}

// splitExtra returns the raw properties of data minus the known keys.
// Returns nil when nothing is left over.
func splitExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeExtra marshals named into an object and folds extra properties
// underneath it.
func mergeExtra(named interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(named)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
