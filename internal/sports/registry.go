// internal/sports/registry.go
//
// Maps sport identifiers to static metadata and full configurations.
// Responsibilities:
//   - Static Info table for every supported league.
//   - Total path → sport resolution (unknown segments fall back to NFL).
//   - Load: build a fresh Config for a sport from embedded data. Load is
//     stateless; callers that want a per-session cache own it themselves.

package sports

import (
	"fmt"
	"strings"
)

// order fixes the presentation order of leagues in menus and CLI output.
var order = []ID{NFL, MLB, NHL, NBA}

var meta = map[ID]Info{
	NFL: {ID: NFL, Slug: "", DisplayName: "NFL", Subtitle: "Guess the NFL player in 6 tries"},
	MLB: {ID: MLB, Slug: "mlb", DisplayName: "MLB", Subtitle: "Guess the MLB player in 6 tries"},
	NHL: {ID: NHL, Slug: "nhl", DisplayName: "NHL", Subtitle: "Guess the NHL player in 6 tries"},
	NBA: {ID: NBA, Slug: "nba", DisplayName: "NBA", Subtitle: "Guess the NBA player in 6 tries"},
}

// FromPath resolves the leading path segment of a request path to a sport.
// The mapping is total: unrecognized or absent segments resolve to the
// primary sport (NFL, which owns the root path).
func FromPath(path string) ID {
	first := strings.ToLower(strings.Split(strings.TrimLeft(path, "/"), "/")[0])
	switch first {
	case "mlb":
		return MLB
	case "nhl":
		return NHL
	case "nba":
		return NBA
	}
	return NFL
}

// MetaByID returns the static metadata for a sport.
func MetaByID(id ID) Info {
	return meta[id]
}

// AllIDs returns every supported sport in presentation order.
func AllIDs() []ID {
	return append([]ID(nil), order...)
}

// AllMeta returns metadata for every supported sport in presentation order.
func AllMeta() []Info {
	out := make([]Info, 0, len(order))
	for _, id := range order {
		out = append(out, meta[id])
	}
	return out
}

// Load builds the full configuration for a sport from embedded generated
// data. Each call returns a freshly constructed Config.
func Load(id ID) (*Config, error) {
	switch id {
	case NFL:
		return buildNFL()
	case MLB:
		return buildMLB()
	case NHL:
		return buildNHL()
	case NBA:
		return buildNBA()
	}
	return nil, fmt.Errorf("sports: unknown sport %q", id)
}

// LoadAll builds every sport's configuration, in presentation order.
func LoadAll() ([]*Config, error) {
	out := make([]*Config, 0, len(order))
	for _, id := range order {
		cfg, err := Load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}
