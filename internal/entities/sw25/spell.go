package sw25

import (
	"encoding/json"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Spell is a magical effect record. IsSupport selects the chat-palette
// rendering path. SchoolVariant and God are optional; a nil pointer
// means the record never carried the field, which matters to queries.
type Spell struct {
	Name      string
	School    string
	IsSupport bool

	Level    Level
	Cost     Cost
	Target   Target
	Duration Duration

	// Range arrives under "range" or the older "range_m" spelling;
	// both are accepted and re-emitted under whichever key was read.
	Range       string
	rangeLegacy bool

	Effect string

	SchoolVariant *string
	God           *string

	// Extra holds JSON properties not mapped to a named field,
	// re-emitted unchanged on serialization.
	Extra map[string]json.RawMessage
}

// HasRange reports whether the record carried a range under either
// accepted spelling.
func (s *Spell) HasRange() bool {
	return s.Range != ""
}

type spellJSON struct {
	Name          string          `json:"name"`
	School        string          `json:"school,omitempty"`
	IsSupport     bool            `json:"is_support"`
	Level         *Level          `json:"level,omitempty"`
	Cost          *Cost           `json:"cost,omitempty"`
	Target        *Target         `json:"target,omitempty"`
	Duration      *Duration       `json:"duration,omitempty"`
	Range         json.RawMessage `json:"range,omitempty"`
	RangeM        json.RawMessage `json:"range_m,omitempty"`
	Effect        string          `json:"effect,omitempty"`
	SchoolVariant *string         `json:"school_variant,omitempty"`
	God           *string         `json:"god,omitempty"`
}

var spellKnownKeys = []string{
	"name", "school", "is_support",
	"level", "cost", "target", "duration",
	"range", "range_m", "effect",
	"school_variant", "god",
}

// UnmarshalJSON decodes a spell record, validating tagged unions and
// keeping unrecognized properties in Extra.
func (s *Spell) UnmarshalJSON(data []byte) error {
	var sj spellJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding spell record")
	}

	extra, err := splitExtra(data, spellKnownKeys)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding spell record")
	}

	out := Spell{
		Name:          sj.Name,
		School:        sj.School,
		IsSupport:     sj.IsSupport,
		Effect:        sj.Effect,
		SchoolVariant: sj.SchoolVariant,
		God:           sj.God,
		Extra:         extra,
	}
	if sj.Level != nil {
		out.Level = *sj.Level
	}
	if sj.Cost != nil {
		out.Cost = *sj.Cost
	}
	if sj.Target != nil {
		out.Target = *sj.Target
	}
	if sj.Duration != nil {
		out.Duration = *sj.Duration
	}

	// "range" wins when both spellings are present.
	switch {
	case len(sj.Range) > 0 && string(sj.Range) != "null":
		r, ok := flexString(sj.Range)
		if !ok {
			return errors.SchemaViolation("range", "range must be a string or integer")
		}
		out.Range = r
	case len(sj.RangeM) > 0 && string(sj.RangeM) != "null":
		r, ok := flexString(sj.RangeM)
		if !ok {
			return errors.SchemaViolation("range_m", "range must be a string or integer")
		}
		out.Range = r
		out.rangeLegacy = true
	}

	*s = out
	return nil
}

// MarshalJSON re-emits named fields merged with Extra. Named fields win
// on key collisions; absent unions are omitted.
func (s Spell) MarshalJSON() ([]byte, error) {
	sj := spellJSON{
		Name:          s.Name,
		School:        s.School,
		IsSupport:     s.IsSupport,
		Effect:        s.Effect,
		SchoolVariant: s.SchoolVariant,
		God:           s.God,
	}
	if s.Level.Present() {
		l := s.Level
		sj.Level = &l
	}
	if s.Cost.Present() {
		c := s.Cost
		sj.Cost = &c
	}
	if s.Target.Present() {
		t := s.Target
		sj.Target = &t
	}
	if s.Duration.Present() {
		d := s.Duration
		sj.Duration = &d
	}
	if s.Range != "" {
		enc, err := json.Marshal(s.Range)
		if err != nil {
			return nil, err
		}
		if s.rangeLegacy {
			sj.RangeM = enc
		} else {
			sj.Range = enc
		}
	}
	return mergeExtra(sj, s.Extra)
}
