package sports

import "testing"

func TestFindVariant(t *testing.T) {
	cfg, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if v := FindVariant(cfg, "fanatic"); v == nil || v.ID != "fanatic" {
		t.Fatalf("FindVariant(fanatic) = %+v", v)
	}
	if v := FindVariant(cfg, ""); v != nil {
		t.Errorf("FindVariant(\"\") = %+v, want nil", v)
	}
	if v := FindVariant(cfg, "rookie"); v != nil {
		t.Errorf("FindVariant(rookie) = %+v, want nil", v)
	}
}

func TestResolveVariant(t *testing.T) {
	base, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	basePlayerCount := len(base.Players)

	resolved := Resolve(base, "fanatic")
	if resolved.ActiveVariantID != "fanatic" {
		t.Errorf("ActiveVariantID = %q", resolved.ActiveVariantID)
	}
	if resolved.ActiveVariantLabel == "" {
		t.Error("ActiveVariantLabel is empty")
	}
	if resolved.ID != base.ID {
		t.Errorf("sport identity changed: %q", resolved.ID)
	}
	if len(resolved.Teams) != len(base.Teams) {
		t.Error("teams should be inherited from the base config")
	}
	if len(resolved.Players) == 0 || len(resolved.AnswerPool) == 0 {
		t.Fatal("resolved variant has empty roster or pool")
	}

	// The base config must be untouched by resolution.
	if base.ActiveVariantID != "" {
		t.Errorf("base config mutated: ActiveVariantID = %q", base.ActiveVariantID)
	}
	if len(base.Players) != basePlayerCount {
		t.Errorf("base roster mutated: %d players", len(base.Players))
	}
}

func TestResolveUnknownVariant(t *testing.T) {
	base, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	resolved := Resolve(base, "rookie")
	if resolved.ActiveVariantID != "" || resolved.ActiveVariantLabel != "" {
		t.Errorf("unknown variant left markers: %q %q", resolved.ActiveVariantID, resolved.ActiveVariantLabel)
	}
	if len(resolved.Players) != len(base.Players) {
		t.Error("unknown variant changed the roster")
	}
	if resolved.Subtitle != base.Subtitle {
		t.Errorf("unknown variant changed subtitle to %q", resolved.Subtitle)
	}
}

func TestResolveVariantRostersDiffer(t *testing.T) {
	base, err := Load(NFL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	resolved := Resolve(base, "fanatic")

	baseIDs := make(map[string]struct{}, len(base.Players))
	for _, p := range base.Players {
		baseIDs[p.ID] = struct{}{}
	}
	overlap := 0
	for _, p := range resolved.Players {
		if _, ok := baseIDs[p.ID]; ok {
			overlap++
		}
	}
	if overlap == len(resolved.Players) {
		t.Error("fanatic roster is identical to the base roster")
	}
}
