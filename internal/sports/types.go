// internal/sports/types.go
//
// Core type definitions for sport configurations.
// Defines:
//   - Value: the attribute value union (string/number/bool/absent).
//   - Player, Team: roster records loaded from generated JSON.
//   - Column, Evaluator: the declarative guess-comparison schema.
//   - Variant, Config: alternate rulesets and the per-sport aggregate.

package sports

import "encoding/json"

// ID identifies a supported league.
type ID string

const (
	NFL ID = "nfl"
	MLB ID = "mlb"
	NHL ID = "nhl"
	NBA ID = "nba"
)

// Value is a single player attribute: string, float64, bool, or nil when the
// attribute is absent. Generated data may carry numeric values as strings;
// comparison columns parse them at evaluation time.
type Value any

// Player is one roster entry. Attrs holds the sport-specific attribute bag
// (teamAbbr, position, number, avg, ...) referenced by column keys.
type Player struct {
	ID    string
	Name  string
	Attrs map[string]Value
}

// Attr returns the named attribute, or nil if the player does not define it.
func (p Player) Attr(key string) Value {
	return p.Attrs[key]
}

// HasAttr reports whether the attribute key exists on the player record,
// even when its value is null.
func (p Player) HasAttr(key string) bool {
	_, ok := p.Attrs[key]
	return ok
}

// UnmarshalJSON decodes a flat generated player object. The id and name
// fields are lifted out; every other scalar field lands in Attrs. Nested
// arrays/objects are dropped so attribute values stay comparable.
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Attrs = make(map[string]Value, len(raw))
	for k, v := range raw {
		switch k {
		case "id":
			p.ID, _ = v.(string)
		case "name":
			p.Name, _ = v.(string)
		default:
			switch v.(type) {
			case string, float64, bool, nil:
				p.Attrs[k] = v
			}
		}
	}
	return nil
}

// Team is static team metadata. Colors, when present, holds at least a
// primary and secondary hex color used for celebratory effects.
type Team struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Abbr   string   `json:"abbr"`
	Colors []string `json:"colors,omitempty"`
}

// Info is the cheap static metadata for a sport, available without loading
// the full config. The primary sport has an empty slug and owns the root path.
type Info struct {
	ID          ID
	Slug        string
	DisplayName string
	Subtitle    string
}

// EvaluatorKind selects how a column compares guess and answer values.
type EvaluatorKind string

const (
	// EvalMatch is correct iff the values are strictly equal.
	EvalMatch EvaluatorKind = "match"
	// EvalMismatch is correct iff the values strictly differ.
	EvalMismatch EvaluatorKind = "mismatch"
	// EvalComparison compares numerically, with an optional closeness
	// tolerance and directional hint.
	EvalComparison EvaluatorKind = "comparison"
)

// Evaluator is the tagged comparison rule for a column. CloseWithin and
// ShowDirection only apply to EvalComparison.
type Evaluator struct {
	Kind          EvaluatorKind
	CloseWithin   *float64
	ShowDirection bool
}

// Example is a fixed illustrative cell shown in help UI.
type Example struct {
	Value    string
	TopValue string
	Status   string
	Arrow    string
}

// Column describes one comparable attribute rendered as a tile in the guess
// grid. Key names the player attribute it reads; TopKey optionally names a
// second attribute displayed above the main value.
type Column struct {
	ID        string
	Label     string
	Key       string
	TopKey    string
	Evaluator Evaluator
	Example   Example
}

// Variant is an alternate ruleset for a sport. When active it fully replaces
// the base players, answer pool, and columns; teams and sport identity are
// inherited.
type Variant struct {
	ID         string
	Label      string
	Subtitle   string
	Players    []Player
	AnswerPool []Player
	Columns    []Column
}

// Config is the root aggregate for one sport. AnswerPool is the subset of
// Players eligible as hidden targets. ActiveVariantID/ActiveVariantLabel are
// set only on configs produced by Resolve.
type Config struct {
	Info
	Teams      []Team
	Players    []Player
	AnswerPool []Player
	Columns    []Column
	Variants   []Variant

	ActiveVariantID    string
	ActiveVariantLabel string
}

// FindPlayer returns the roster entry with the given id.
func (c *Config) FindPlayer(id string) (Player, bool) {
	for _, p := range c.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
