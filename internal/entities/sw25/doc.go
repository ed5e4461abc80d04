// Package sw25 defines the Sword World 2.5 game-data records the gm
// tool manages: monsters with their parts, and spells.
//
// Records are decoded from JSON arrays. Spell sub-fields expressed on
// the wire as tagged unions (a "kind" discriminator plus exactly one
// payload key) are validated at this boundary and surfaced as sum-type
// values, so renderers and queries never re-check wire shapes. Any
// JSON property not mapped to a named attribute is kept verbatim in
// the record's Extra map and re-emitted on serialization.
package sw25
