package game

import (
	"testing"

	"github.com/playerdle/playerdle/internal/sports"
)

func playerWith(id string, attrs map[string]sports.Value) sports.Player {
	return sports.Player{ID: id, Name: id, Attrs: attrs}
}

func matchColumn(key string) sports.Column {
	return sports.Column{ID: key, Label: key, Key: key, Evaluator: sports.Evaluator{Kind: sports.EvalMatch}}
}

func comparisonColumn(key string, closeWithin float64, showDirection bool) sports.Column {
	return sports.Column{
		ID: key, Label: key, Key: key,
		Evaluator: sports.Evaluator{Kind: sports.EvalComparison, CloseWithin: &closeWithin, ShowDirection: showDirection},
	}
}

func TestEvaluateColumnMatch(t *testing.T) {
	col := matchColumn("teamAbbr")

	tests := []struct {
		name   string
		guess  sports.Value
		answer sports.Value
		want   Status
	}{
		{"same team", "NE", "NE", StatusCorrect},
		{"different team", "NE", "BUF", StatusIncorrect},
		{"both missing", nil, nil, StatusCorrect},
		{"guess missing", nil, "NE", StatusIncorrect},
		{"number vs numeric string differ", float64(10), "10", StatusIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := EvaluateColumn(
				playerWith("g", map[string]sports.Value{"teamAbbr": tt.guess}),
				playerWith("a", map[string]sports.Value{"teamAbbr": tt.answer}),
				col,
			)
			if cell.Status != tt.want {
				t.Errorf("status = %q, want %q", cell.Status, tt.want)
			}
			if cell.Arrow != "" {
				t.Errorf("match column produced arrow %q", cell.Arrow)
			}
		})
	}
}

func TestEvaluateColumnMismatch(t *testing.T) {
	col := sports.Column{ID: "pos", Label: "POS", Key: "position", Evaluator: sports.Evaluator{Kind: sports.EvalMismatch}}

	guess := playerWith("g", map[string]sports.Value{"position": "QB"})
	sameAnswer := playerWith("a", map[string]sports.Value{"position": "QB"})
	otherAnswer := playerWith("a", map[string]sports.Value{"position": "RB"})

	if got := EvaluateColumn(guess, otherAnswer, col).Status; got != StatusCorrect {
		t.Errorf("differing values: status = %q, want correct", got)
	}
	if got := EvaluateColumn(guess, sameAnswer, col).Status; got != StatusIncorrect {
		t.Errorf("equal values: status = %q, want incorrect", got)
	}
}

func TestEvaluateColumnComparison(t *testing.T) {
	col := comparisonColumn("number", 5, true)

	tests := []struct {
		name      string
		guess     sports.Value
		answer    sports.Value
		want      Status
		wantArrow string
	}{
		{"exact", float64(10), float64(10), StatusCorrect, ""},
		{"close answer higher", float64(10), float64(13), StatusClose, ArrowUp},
		{"close answer lower", float64(10), float64(7), StatusClose, ArrowDown},
		{"far answer higher", float64(10), float64(20), StatusIncorrect, ArrowUp},
		{"numeric string guess", "15", float64(15), StatusCorrect, ""},
		{"numeric string answer", float64(12), "15", StatusClose, ArrowUp},
		{"unparseable guess", "N/A", float64(15), StatusIncorrect, ""},
		{"unparseable answer", float64(15), "N/A", StatusIncorrect, ""},
		{"missing guess value", nil, float64(15), StatusIncorrect, ""},
		{"boolean is not numeric", true, float64(1), StatusIncorrect, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := EvaluateColumn(
				playerWith("g", map[string]sports.Value{"number": tt.guess}),
				playerWith("a", map[string]sports.Value{"number": tt.answer}),
				col,
			)
			if cell.Status != tt.want {
				t.Errorf("status = %q, want %q", cell.Status, tt.want)
			}
			if cell.Arrow != tt.wantArrow {
				t.Errorf("arrow = %q, want %q", cell.Arrow, tt.wantArrow)
			}
		})
	}
}

func TestEvaluateColumnBattingAverageTolerance(t *testing.T) {
	col := comparisonColumn("avg", 0.011, true)

	cell := EvaluateColumn(
		playerWith("g", map[string]sports.Value{"avg": 0.280}),
		playerWith("a", map[string]sports.Value{"avg": 0.287}),
		col,
	)
	if cell.Status != StatusClose {
		t.Errorf("diff 0.007 within 0.011: status = %q, want close", cell.Status)
	}
	if cell.Arrow != ArrowUp {
		t.Errorf("arrow = %q, want %q", cell.Arrow, ArrowUp)
	}
}

func TestEvaluateColumnExactMatchNeverClose(t *testing.T) {
	col := comparisonColumn("number", 5, true)
	cell := EvaluateColumn(
		playerWith("g", map[string]sports.Value{"number": float64(10)}),
		playerWith("a", map[string]sports.Value{"number": "10"}),
		col,
	)
	if cell.Status != StatusCorrect {
		t.Errorf("status = %q, want correct", cell.Status)
	}
	if cell.Arrow != "" {
		t.Errorf("exact match produced arrow %q", cell.Arrow)
	}
}

func TestEvaluateColumnTopValue(t *testing.T) {
	col := matchColumn("division")
	col.TopKey = "conference"

	cell := EvaluateColumn(
		playerWith("g", map[string]sports.Value{"division": "East", "conference": "AFC"}),
		playerWith("a", map[string]sports.Value{"division": "East", "conference": "NFC"}),
		col,
	)
	if cell.TopValue != "AFC" {
		t.Errorf("topValue = %q, want AFC", cell.TopValue)
	}

	cell = EvaluateColumn(
		playerWith("g", map[string]sports.Value{"division": "East"}),
		playerWith("a", map[string]sports.Value{"division": "East"}),
		col,
	)
	if cell.TopValue != "" {
		t.Errorf("missing topKey attr: topValue = %q, want empty", cell.TopValue)
	}
}

func TestEvaluateColumnDisplayValues(t *testing.T) {
	tests := []struct {
		name  string
		value sports.Value
		want  string
	}{
		{"string", "QB", "QB"},
		{"integer number", float64(87), "87"},
		{"fractional number", 0.287, "0.287"},
		{"boolean", true, "true"},
		{"absent", nil, ""},
	}

	col := matchColumn("v")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := EvaluateColumn(
				playerWith("g", map[string]sports.Value{"v": tt.value}),
				playerWith("a", map[string]sports.Value{"v": tt.value}),
				col,
			)
			if cell.Value != tt.want {
				t.Errorf("value = %q, want %q", cell.Value, tt.want)
			}
		})
	}
}
