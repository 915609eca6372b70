package sports

import (
	"encoding/json"
	"testing"
)

func TestPlayerUnmarshalKeepsScalars(t *testing.T) {
	raw := `{
		"id": "pm",
		"name": "Patrick Mahomes",
		"teamAbbr": "KC",
		"number": "15",
		"fppg": 22.4,
		"active": true,
		"college": null,
		"seasons": [2017, 2018],
		"meta": {"drafted": 2017}
	}`

	var p Player
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "pm" || p.Name != "Patrick Mahomes" {
		t.Errorf("id/name = %q/%q", p.ID, p.Name)
	}
	if p.HasAttr("id") || p.HasAttr("name") {
		t.Error("id/name leaked into the attribute bag")
	}
	if v := p.Attr("teamAbbr"); v != "KC" {
		t.Errorf("teamAbbr = %v", v)
	}
	if v := p.Attr("number"); v != "15" {
		t.Errorf("numeric string number = %v", v)
	}
	if v := p.Attr("fppg"); v != 22.4 {
		t.Errorf("fppg = %v", v)
	}
	if v := p.Attr("active"); v != true {
		t.Errorf("active = %v", v)
	}
	if !p.HasAttr("college") || p.Attr("college") != nil {
		t.Error("null attribute should exist with nil value")
	}
	if p.HasAttr("seasons") || p.HasAttr("meta") {
		t.Error("nested values should be dropped")
	}
}

func TestDecodeTeamsColorHandling(t *testing.T) {
	raw := []byte(`[
		{"id": "kc", "name": "Kansas City Chiefs", "abbr": "kc", "colors": ["#E31837", "#FFB81C", "#FFFFFF"]},
		{"id": "ne", "name": "New England Patriots", "abbr": "ne", "colors": ["#002244"]},
		{"id": "gb", "name": "Green Bay Packers", "abbr": "gb"}
	]`)

	teams, err := decodeTeams("test", raw)
	if err != nil {
		t.Fatalf("decodeTeams: %v", err)
	}
	if got := len(teams[0].Colors); got != 2 {
		t.Errorf("extra colors not truncated: %d", got)
	}
	if teams[1].Colors != nil {
		t.Errorf("single color should be dropped: %v", teams[1].Colors)
	}
	if teams[2].Colors != nil {
		t.Errorf("absent colors: %v", teams[2].Colors)
	}
}

func TestFilterPoolKeepsRosterOrder(t *testing.T) {
	players := []Player{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	pool := filterPool(players, map[string]struct{}{"d": {}, "b": {}})

	if len(pool) != 2 || pool[0].ID != "b" || pool[1].ID != "d" {
		t.Errorf("pool = %v, want roster order b then d", playerIDs(pool))
	}
}

func TestNormalizeNFLDivision(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AFC East", "East"},
		{"NFC West", "West"},
		{"afc North", "North"},
		{"American Football Conference South", "South"},
		{"East", "East"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeNFLDivision(tt.in); got != tt.want {
			t.Errorf("normalizeNFLDivision(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
