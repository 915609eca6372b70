// internal/sports/config.go
//
// Shared plumbing for building sport configs out of embedded generated data.
// The JSON files under data/ are produced offline by the roster/stat scraping
// scripts; only their output format matters here: flat player objects keyed
// by the attribute names the column sets reference, team metadata records,
// and answer-pool id lists.

package sports

import (
	"encoding/json"
	"fmt"
)

func decodePlayers(name string, raw []byte) ([]Player, error) {
	var players []Player
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return players, nil
}

func decodeTeams(name string, raw []byte) ([]Team, error) {
	var teams []Team
	if err := json.Unmarshal(raw, &teams); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	for i := range teams {
		// Colors are optional and only meaningful as a [primary, secondary] pair.
		if len(teams[i].Colors) < 2 {
			teams[i].Colors = nil
		} else {
			teams[i].Colors = teams[i].Colors[:2]
		}
	}
	return teams, nil
}

func decodePool(name string, raw []byte) (map[string]struct{}, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// filterPool keeps roster order so pool indices stay stable across loads.
func filterPool(players []Player, ids map[string]struct{}) []Player {
	out := make([]Player, 0, len(ids))
	for _, p := range players {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func closeTo(v float64) *float64 {
	return &v
}
