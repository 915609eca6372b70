// internal/game/evaluate.go
//
// Column evaluation: compares one guessed player against the answer for a
// single column definition and produces the feedback cell rendered in the
// guess grid. Evaluation is pure and total; malformed data degrades to an
// incorrect cell instead of failing, since config defects are caught by
// validation before shipping.

package game

import (
	"math"
	"strconv"
	"strings"

	"github.com/playerdle/playerdle/internal/sports"
)

// Status is the per-cell evaluation result.
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusClose     Status = "close"
	StatusIncorrect Status = "incorrect"
)

// Directional arrows point toward where the answer lies relative to the
// guess: ArrowUp means the answer is numerically higher.
const (
	ArrowUp   = "↑"
	ArrowDown = "↓"
)

// Cell is one evaluated tile of a guess row.
type Cell struct {
	Value    string
	Status   Status
	Arrow    string
	TopValue string
}

// displayValue stringifies an attribute for display: absent values render
// empty, numbers in their shortest decimal form, booleans as literals.
func displayValue(v sports.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

// toNumber parses an attribute as a finite number. Numeric values pass
// through; numeric strings parse; everything else is not a number.
func toNumber(v sports.Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsInf(x, 0) && !math.IsNaN(x)
	case string:
		trimmed := strings.TrimSpace(x)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// EvaluateColumn scores a single column of a guess against the answer.
//
// match/mismatch compare the raw attribute values with strict equality.
// comparison parses both sides numerically: exact equality is correct, a
// difference within the column's closeWithin tolerance is close (never both),
// and when the column requests direction the arrow points toward the answer.
// If either side fails to parse, the cell is incorrect and no comparison is
// attempted.
func EvaluateColumn(guess, answer sports.Player, col sports.Column) Cell {
	guessValue := guess.Attr(col.Key)
	answerValue := answer.Attr(col.Key)

	var topValue string
	if col.TopKey != "" {
		topValue = displayValue(guess.Attr(col.TopKey))
	}

	cell := Cell{
		Value:    displayValue(guessValue),
		Status:   StatusIncorrect,
		TopValue: topValue,
	}

	switch col.Evaluator.Kind {
	case sports.EvalMatch:
		if guessValue == answerValue {
			cell.Status = StatusCorrect
		}
		return cell

	case sports.EvalMismatch:
		if guessValue != answerValue {
			cell.Status = StatusCorrect
		}
		return cell
	}

	guessNumber, ok := toNumber(guessValue)
	if !ok {
		return cell
	}
	answerNumber, ok := toNumber(answerValue)
	if !ok {
		return cell
	}

	diff := math.Abs(guessNumber - answerNumber)
	isMatch := diff == 0
	isClose := !isMatch && col.Evaluator.CloseWithin != nil && diff <= *col.Evaluator.CloseWithin

	switch {
	case isMatch:
		cell.Status = StatusCorrect
	case isClose:
		cell.Status = StatusClose
	}

	if col.Evaluator.ShowDirection && !isMatch {
		if guessNumber < answerNumber {
			cell.Arrow = ArrowUp
		} else {
			cell.Arrow = ArrowDown
		}
	}
	return cell
}

// EvaluateRow scores a guess against the answer across every column of the
// active config, in column order.
func EvaluateRow(guess, answer sports.Player, columns []sports.Column) []Cell {
	cells := make([]Cell, len(columns))
	for i, col := range columns {
		cells[i] = EvaluateColumn(guess, answer, col)
	}
	return cells
}
