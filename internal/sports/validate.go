// internal/sports/validate.go
//
// Structural validation for sport configurations. Intended as a build/CI
// gate over generated data, not a runtime path: Validate accumulates every
// violation as a message instead of stopping at the first.

package sports

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func duplicateIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	dup := make(map[string]struct{})
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			if _, already := dup[id]; !already {
				dup[id] = struct{}{}
				out = append(out, id)
			}
			continue
		}
		seen[id] = struct{}{}
	}
	return out
}

func playerIDs(players []Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

// isNumericValue reports whether a value is a finite number or parses to one.
func isNumericValue(v Value) bool {
	switch x := v.(type) {
	case float64:
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	case string:
		trimmed := strings.TrimSpace(x)
		if trimmed == "" {
			return false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		return err == nil && !math.IsInf(parsed, 0) && !math.IsNaN(parsed)
	}
	return false
}

func validatePlayersAndPool(players, answerPool []Player, prefix string) []string {
	var errs []string

	if dup := duplicateIDs(playerIDs(players)); len(dup) > 0 {
		errs = append(errs, fmt.Sprintf("%sduplicate player IDs: %s", prefix, strings.Join(dup, ", ")))
	}
	if dup := duplicateIDs(playerIDs(answerPool)); len(dup) > 0 {
		errs = append(errs, fmt.Sprintf("%sduplicate answer pool IDs: %s", prefix, strings.Join(dup, ", ")))
	}

	known := make(map[string]struct{}, len(players))
	for _, p := range players {
		known[p.ID] = struct{}{}
	}
	var missing []string
	for _, p := range answerPool {
		if _, ok := known[p.ID]; !ok {
			missing = append(missing, p.ID)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("%sanswer pool IDs missing from players list: %s", prefix, strings.Join(missing, ", ")))
	}
	return errs
}

func validateColumns(columns []Column, players []Player, prefix string) []string {
	var errs []string

	var ids []string
	for _, c := range columns {
		ids = append(ids, c.ID)
	}
	if dup := duplicateIDs(ids); len(dup) > 0 {
		errs = append(errs, fmt.Sprintf("%sduplicate column IDs: %s", prefix, strings.Join(dup, ", ")))
	}

	for _, col := range columns {
		if col.ID == "" || col.Key == "" || col.Label == "" {
			errs = append(errs, fmt.Sprintf("%scolumn is missing required fields (id/label/key): %+v", prefix, col))
			continue
		}

		if col.Evaluator.Kind != EvalComparison && col.Example.Arrow != "" {
			errs = append(errs, fmt.Sprintf("%scolumn %q example.arrow is only valid for comparison columns", prefix, col.ID))
		}
		if col.Evaluator.Kind == EvalComparison && col.Evaluator.CloseWithin != nil && *col.Evaluator.CloseWithin < 0 {
			errs = append(errs, fmt.Sprintf("%scolumn %q closeWithin must be >= 0", prefix, col.ID))
		}

		for _, p := range players {
			if !p.HasAttr(col.Key) {
				errs = append(errs, fmt.Sprintf("%scolumn %q key %q missing on player %q", prefix, col.ID, col.Key, p.ID))
				continue
			}
			if col.Evaluator.Kind == EvalComparison && !isNumericValue(p.Attr(col.Key)) {
				errs = append(errs, fmt.Sprintf("%scolumn %q uses comparison but player %q value is not numeric", prefix, col.ID, p.ID))
			}
		}
	}
	return errs
}

// Validate checks a loaded sport configuration for structural invariants and
// returns every violation found. The same checks run recursively over each
// declared variant, with messages prefixed by the variant's identifier. An
// empty result means the config is safe for selection and evaluation.
func Validate(cfg *Config) []string {
	var errs []string
	errs = append(errs, validatePlayersAndPool(cfg.Players, cfg.AnswerPool, "")...)
	errs = append(errs, validateColumns(cfg.Columns, cfg.Players, "")...)

	if len(cfg.AnswerPool) == 0 {
		errs = append(errs, "answer pool is empty")
	}

	for _, v := range cfg.Variants {
		prefix := fmt.Sprintf("variant %q: ", v.ID)
		errs = append(errs, validatePlayersAndPool(v.Players, v.AnswerPool, prefix)...)
		errs = append(errs, validateColumns(v.Columns, v.Players, prefix)...)
		if len(v.AnswerPool) == 0 {
			errs = append(errs, prefix+"answer pool is empty")
		}
	}
	return errs
}

// ValidateAll runs Validate over every config, prefixing each message with
// the sport identifier.
func ValidateAll(cfgs []*Config) []string {
	var errs []string
	for _, cfg := range cfgs {
		for _, msg := range Validate(cfg) {
			errs = append(errs, fmt.Sprintf("[%s] %s", cfg.ID, msg))
		}
	}
	return errs
}
