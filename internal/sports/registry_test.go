package sports

import "testing"

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ID
	}{
		{"", NFL},
		{"/", NFL},
		{"/mlb", MLB},
		{"/mlb/daily", MLB},
		{"/nhl", NHL},
		{"/nba", NBA},
		{"/NBA", NBA},
		{"nhl/stats", NHL},
		{"/premier-league", NFL},
		{"/nfl", NFL},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FromPath(tt.path); got != tt.want {
				t.Errorf("FromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMetaByID(t *testing.T) {
	info := MetaByID(MLB)
	if info.ID != MLB || info.Slug != "mlb" || info.DisplayName != "MLB" {
		t.Errorf("MetaByID(MLB) = %+v", info)
	}
	if nfl := MetaByID(NFL); nfl.Slug != "" {
		t.Errorf("primary sport slug = %q, want empty (owns root path)", nfl.Slug)
	}
}

func TestAllIDsOrder(t *testing.T) {
	want := []ID{NFL, MLB, NHL, NBA}
	got := AllIDs()
	if len(got) != len(want) {
		t.Fatalf("AllIDs() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadUnknownSport(t *testing.T) {
	if _, err := Load(ID("cricket")); err == nil {
		t.Fatal("expected error for unknown sport id")
	}
}

func TestLoadAllShapes(t *testing.T) {
	cfgs, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(cfgs) != 4 {
		t.Fatalf("LoadAll returned %d configs", len(cfgs))
	}
	for _, cfg := range cfgs {
		if len(cfg.Players) == 0 {
			t.Errorf("[%s] empty roster", cfg.ID)
		}
		if len(cfg.AnswerPool) == 0 {
			t.Errorf("[%s] empty answer pool", cfg.ID)
		}
		if len(cfg.AnswerPool) > len(cfg.Players) {
			t.Errorf("[%s] answer pool larger than roster", cfg.ID)
		}
		if len(cfg.Columns) == 0 {
			t.Errorf("[%s] no columns", cfg.ID)
		}
		if len(cfg.Teams) == 0 {
			t.Errorf("[%s] no teams", cfg.ID)
		}
		if len(cfg.Variants) == 0 {
			t.Errorf("[%s] expected a fanatic variant", cfg.ID)
		}
		if cfg.ActiveVariantID != "" {
			t.Errorf("[%s] freshly loaded config has active variant %q", cfg.ID, cfg.ActiveVariantID)
		}
	}
}

func TestLoadReturnsFreshConfigs(t *testing.T) {
	a, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a.Players[0].Attrs["team"] = "mutated"
	if v, ok := b.Players[0].Attrs["team"]; ok && v == "mutated" {
		t.Error("Load shares player state between calls")
	}
}
