package sw25

import (
	"encoding/json"
	"strconv"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

// The wire format expresses each discriminated union as a "kind" string
// plus exactly one matching payload key. Decoding rejects records with
// zero payloads, several payloads, a payload that does not match kind,
// or an unknown kind. The zero value of each union type means the field
// was absent from the record.

// LevelKind discriminates the level union.
type LevelKind string

// Level kinds
const (
	LevelValue     LevelKind = "value"
	LevelValuePlus LevelKind = "value_plus"
	LevelRank      LevelKind = "rank"
)

// Level is a spell's progression requirement: an exact level, a minimum
// level, or a rank on the alternate progression axis.
type Level struct {
	Kind  LevelKind
	Value int
}

// Present reports whether the record carried the field at all.
func (l Level) Present() bool {
	return l.Kind != ""
}

// MatchesLevel reports whether a character of the given level satisfies
// this requirement. Rank-based spells never match a level.
func (l Level) MatchesLevel(n int) bool {
	switch l.Kind {
	case LevelValue:
		return l.Value == n
	case LevelValuePlus:
		return l.Value <= n
	default:
		return false
	}
}

// MatchesRank reports whether this is a rank-based spell of rank r.
func (l Level) MatchesRank(r int) bool {
	return l.Kind == LevelRank && l.Value == r
}

// UnmarshalJSON validates the kind/payload wire shape.
func (l *Level) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind      string `json:"kind"`
		Value     *int   `json:"value"`
		ValuePlus *int   `json:"value_plus"`
		Rank      *int   `json:"rank"`
	}
	if string(data) == "null" {
		*l = Level{}
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding level")
	}

	payloads := presentKeys(
		payload{"value", raw.Value != nil},
		payload{"value_plus", raw.ValuePlus != nil},
		payload{"rank", raw.Rank != nil},
	)
	if err := checkUnionShape("level", raw.Kind, payloads); err != nil {
		return err
	}

	switch LevelKind(raw.Kind) {
	case LevelValue:
		*l = Level{Kind: LevelValue, Value: *raw.Value}
	case LevelValuePlus:
		*l = Level{Kind: LevelValuePlus, Value: *raw.ValuePlus}
	case LevelRank:
		*l = Level{Kind: LevelRank, Value: *raw.Rank}
	default:
		return errors.SchemaViolationf("level", "unknown level kind %q", raw.Kind)
	}
	return nil
}

// MarshalJSON emits the kind plus its single payload key.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"kind":         string(l.Kind),
		string(l.Kind): l.Value,
	})
}

// CostKind discriminates the MP cost union.
type CostKind string

// Cost kinds
const (
	CostValue     CostKind = "value"
	CostValuePlus CostKind = "value_plus"
	CostSpecial   CostKind = "special"
)

// Cost is a spell's MP cost: a fixed value, a minimum value, or a
// free-form special rule rendered verbatim.
type Cost struct {
	Kind    CostKind
	Value   int
	Special string
}

// Present reports whether the record carried the field at all.
func (c Cost) Present() bool {
	return c.Kind != ""
}

// UnmarshalJSON validates the kind/payload wire shape.
func (c *Cost) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind      string  `json:"kind"`
		Value     *int    `json:"value"`
		ValuePlus *int    `json:"value_plus"`
		Special   *string `json:"special"`
	}
	if string(data) == "null" {
		*c = Cost{}
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding cost")
	}

	payloads := presentKeys(
		payload{"value", raw.Value != nil},
		payload{"value_plus", raw.ValuePlus != nil},
		payload{"special", raw.Special != nil},
	)
	if err := checkUnionShape("cost", raw.Kind, payloads); err != nil {
		return err
	}

	switch CostKind(raw.Kind) {
	case CostValue:
		*c = Cost{Kind: CostValue, Value: *raw.Value}
	case CostValuePlus:
		*c = Cost{Kind: CostValuePlus, Value: *raw.ValuePlus}
	case CostSpecial:
		*c = Cost{Kind: CostSpecial, Special: *raw.Special}
	default:
		return errors.SchemaViolationf("cost", "unknown cost kind %q", raw.Kind)
	}
	return nil
}

// MarshalJSON emits the kind plus its single payload key.
func (c Cost) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{"kind": string(c.Kind)}
	if c.Kind == CostSpecial {
		out["special"] = c.Special
	} else {
		out[string(c.Kind)] = c.Value
	}
	return json.Marshal(out)
}

// TargetKind discriminates the target union.
type TargetKind string

// Target kinds
const (
	TargetIndividual TargetKind = "individual"
	TargetArea       TargetKind = "area"
)

// Area describes an area target. RadiusM and Suffix arrive as strings
// or integers on the wire; both are held as strings.
type Area struct {
	Value   string
	RadiusM string
	Suffix  string
}

// Target is what a spell affects: a described individual or an area.
type Target struct {
	Kind       TargetKind
	Individual string
	Area       *Area
}

// Present reports whether the record carried the field at all.
func (t Target) Present() bool {
	return t.Kind != ""
}

// UnmarshalJSON validates the kind/payload wire shape.
func (t *Target) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind       string          `json:"kind"`
		Individual *string         `json:"individual"`
		Area       json.RawMessage `json:"area"`
	}
	if string(data) == "null" {
		*t = Target{}
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding target")
	}

	payloads := presentKeys(
		payload{"individual", raw.Individual != nil},
		payload{"area", len(raw.Area) > 0 && string(raw.Area) != "null"},
	)
	if err := checkUnionShape("target", raw.Kind, payloads); err != nil {
		return err
	}

	switch TargetKind(raw.Kind) {
	case TargetIndividual:
		*t = Target{Kind: TargetIndividual, Individual: *raw.Individual}
	case TargetArea:
		area, err := decodeArea(raw.Area)
		if err != nil {
			return err
		}
		*t = Target{Kind: TargetArea, Area: area}
	default:
		return errors.SchemaViolationf("target", "unknown target kind %q", raw.Kind)
	}
	return nil
}

func decodeArea(data json.RawMessage) (*Area, error) {
	var raw struct {
		Value   json.RawMessage `json:"value"`
		RadiusM json.RawMessage `json:"radius_m"`
		Suffix  json.RawMessage `json:"suffix"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding area target")
	}

	area := &Area{}
	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"value", raw.Value, &area.Value},
		{"radius_m", raw.RadiusM, &area.RadiusM},
		{"suffix", raw.Suffix, &area.Suffix},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			return nil, errors.SchemaViolationf("target", "area target missing %s", f.name)
		}
		s, ok := flexString(f.raw)
		if !ok {
			return nil, errors.SchemaViolationf("target", "area %s must be a string or integer", f.name)
		}
		*f.dst = s
	}
	return area, nil
}

// MarshalJSON emits the kind plus its single payload key.
func (t Target) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{"kind": string(t.Kind)}
	switch t.Kind {
	case TargetIndividual:
		out["individual"] = t.Individual
	case TargetArea:
		out["area"] = map[string]string{
			"value":    t.Area.Value,
			"radius_m": t.Area.RadiusM,
			"suffix":   t.Area.Suffix,
		}
	}
	return json.Marshal(out)
}

// DurationKind discriminates the duration shapes.
type DurationKind string

// Duration kinds
const (
	DurationText    DurationKind = "text"
	DurationNumeric DurationKind = "numeric"
)

// Duration is how long a spell lasts: free text, or a count with a
// unit rendered as plain concatenation.
type Duration struct {
	Kind DurationKind
	Text string
	Num  int
	Unit string
}

// Present reports whether the record carried the field at all.
func (d Duration) Present() bool {
	return d.Kind != ""
}

// UnmarshalJSON accepts {"value": "instant"} and {"value": 3, "unit": "years"}.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value json.RawMessage `json:"value"`
		Unit  *string         `json:"unit"`
	}
	if string(data) == "null" {
		*d = Duration{}
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeSchemaViolation, "decoding duration")
	}
	if len(raw.Value) == 0 {
		return errors.SchemaViolation("duration", "duration missing value")
	}

	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		*d = Duration{Kind: DurationText, Text: s}
		return nil
	}

	var n int
	if err := json.Unmarshal(raw.Value, &n); err == nil {
		if raw.Unit == nil {
			return errors.SchemaViolation("duration", "numeric duration requires a unit")
		}
		*d = Duration{Kind: DurationNumeric, Num: n, Unit: *raw.Unit}
		return nil
	}

	return errors.SchemaViolation("duration", "duration value must be a string or integer")
}

// MarshalJSON emits the wire shape for the active kind.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.Kind == DurationNumeric {
		return json.Marshal(map[string]interface{}{"value": d.Num, "unit": d.Unit})
	}
	return json.Marshal(map[string]string{"value": d.Text})
}

type payload struct {
	key     string
	present bool
}

func presentKeys(candidates ...payload) []string {
	var keys []string
	for _, c := range candidates {
		if c.present {
			keys = append(keys, c.key)
		}
	}
	return keys
}

// checkUnionShape enforces the exactly-one-payload-matching-kind rule.
func checkUnionShape(field, kind string, payloads []string) error {
	if kind == "" {
		return errors.SchemaViolationf(field, "%s is missing its kind discriminator", field)
	}
	if len(payloads) == 0 {
		return errors.SchemaViolationf(field, "%s kind %q has no payload", field, kind).
			WithMeta("payloads", payloads)
	}
	if len(payloads) > 1 {
		return errors.SchemaViolationf(field, "%s carries multiple payloads: %v", field, payloads).
			WithMeta("payloads", payloads)
	}
	if payloads[0] != kind {
		return errors.SchemaViolationf(field, "%s kind %q does not match payload %q", field, kind, payloads[0]).
			WithMeta("payloads", payloads)
	}
	return nil
}

// flexString reads a JSON string or integer as a string.
func flexString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}
