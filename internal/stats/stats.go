// internal/stats/stats.go
//
// Local statistics and streak tracking derived from per-sport game history.
// Responsibilities:
//   - Record one result per sport(+variant) per calendar day; a later write
//     for the same day replaces the earlier one.
//   - Derive played/win%/streaks/guess distribution from stored history.
//   - Persist and restore a half-finished daily round's guess ids.
//   - Remember whether the tutorial has been shown per sport(+variant).
//
// All reads treat corrupted or absent stored JSON as empty history; storage
// problems never surface to the player.

package stats

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/playerdle/playerdle/internal/daily"
	"github.com/playerdle/playerdle/internal/game"
	"github.com/playerdle/playerdle/internal/storage"
)

const (
	historyKeyPrefix  = "playerdle-stats"
	progressKeyPrefix = "playerdle-state"
	tutorialKeyPrefix = "playerdle-tutorial-seen-v2"
)

// GameResult is one finished daily round.
type GameResult struct {
	Date    string `json:"date"`
	Won     bool   `json:"won"`
	Guesses int    `json:"guesses"`
}

// Stats aggregates a sport's stored history. GuessDistribution maps guess
// counts 1..6 to the number of wins that took exactly that many guesses.
type Stats struct {
	Played            int
	WinPercentage     int
	CurrentStreak     int
	MaxStreak         int
	GuessDistribution map[int]int
}

// SavedProgress is the resumable state of today's daily round.
type SavedProgress struct {
	DateKey  string   `json:"dateKey"`
	GuessIDs []string `json:"guessIds"`
}

// SportKey scopes storage keys to a sport and, when active, its variant:
// "nfl" or "nfl:fanatic".
func SportKey(sportID, variantID string) string {
	if variantID == "" {
		return sportID
	}
	return sportID + ":" + variantID
}

// Engine folds game results into the injected store and derives statistics.
type Engine struct {
	store storage.Store
	now   func() time.Time // swapped out in tests
}

// NewEngine constructs an Engine over the given store.
func NewEngine(store storage.Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// History returns the stored result list for a sport key, oldest first as
// written. Unparseable or missing data yields an empty history.
func (e *Engine) History(sportKey string) []GameResult {
	raw, ok := e.store.Get(historyKeyPrefix + ":" + sportKey)
	if !ok {
		return nil
	}
	var history []GameResult
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Warn().Str("sport", sportKey).Msg("discarding corrupted game history")
		return nil
	}
	return history
}

// SaveResult records or overwrites today's result for the sport key. Exactly
// one result exists per calendar day; replaying the same day's puzzle never
// double-counts.
func (e *Engine) SaveResult(sportKey string, won bool, guesses int) error {
	today := daily.DateKey(e.now())
	result := GameResult{Date: today, Won: won, Guesses: guesses}

	history := e.History(sportKey)
	replaced := false
	for i := range history {
		if history[i].Date == today {
			history[i] = result
			replaced = true
			break
		}
	}
	if !replaced {
		history = append(history, result)
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return e.store.Set(historyKeyPrefix+":"+sportKey, string(raw))
}

// Calculate derives aggregate statistics from the full stored history.
//
// The current streak follows the source-of-truth boundary policy: it is the
// trailing run of consecutive wins, but only counts when the most recent
// result is a win dated today or yesterday in the reference zone. A skipped
// day beyond that grace period zeroes it.
func (e *Engine) Calculate(sportKey string) Stats {
	history := e.History(sportKey)
	if len(history) == 0 {
		return Stats{GuessDistribution: map[int]int{}}
	}

	played := len(history)
	wins := 0
	distribution := make(map[int]int, game.MaxGuesses)
	for n := 1; n <= game.MaxGuesses; n++ {
		distribution[n] = 0
	}
	for _, r := range history {
		if !r.Won {
			continue
		}
		wins++
		if r.Guesses >= 1 && r.Guesses <= game.MaxGuesses {
			distribution[r.Guesses]++
		}
	}

	sorted := append([]GameResult(nil), history...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	maxStreak := 0
	tempStreak := 0
	for _, r := range sorted {
		if r.Won {
			tempStreak++
			if tempStreak > maxStreak {
				maxStreak = tempStreak
			}
		} else {
			tempStreak = 0
		}
	}

	currentStreak := 0
	latest := sorted[len(sorted)-1]
	if latest.Won && e.withinGracePeriod(latest.Date) {
		for i := len(sorted) - 1; i >= 0 && sorted[i].Won; i-- {
			currentStreak++
		}
	}

	return Stats{
		Played:            played,
		WinPercentage:     int(math.Round(float64(wins) / float64(played) * 100)),
		CurrentStreak:     currentStreak,
		MaxStreak:         maxStreak,
		GuessDistribution: distribution,
	}
}

// withinGracePeriod reports whether dateKey is today or yesterday relative
// to the reference time zone.
func (e *Engine) withinGracePeriod(dateKey string) bool {
	resultDate, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return false
	}
	today, err := time.Parse("2006-01-02", daily.DateKey(e.now()))
	if err != nil {
		return false
	}
	days := int(today.Sub(resultDate).Hours() / 24)
	return days == 0 || days == 1
}

// HasBeatTodaysDaily reports whether a stored result exists for today's date
// key with a win. Gates arcade mode behind completing the daily challenge.
func (e *Engine) HasBeatTodaysDaily(sportKey string) bool {
	today := daily.DateKey(e.now())
	for _, r := range e.History(sportKey) {
		if r.Date == today && r.Won {
			return true
		}
	}
	return false
}

// SaveProgress persists the guesses of an in-progress daily round.
func (e *Engine) SaveProgress(sportKey, dateKey string, guessIDs []string) error {
	raw, err := json.Marshal(SavedProgress{DateKey: dateKey, GuessIDs: guessIDs})
	if err != nil {
		return err
	}
	return e.store.Set(progressKeyPrefix+":"+sportKey, string(raw))
}

// Progress restores saved guess ids for the given date key. Entries written
// for a different day are stale and ignored, as is anything unparseable.
func (e *Engine) Progress(sportKey, dateKey string) []string {
	raw, ok := e.store.Get(progressKeyPrefix + ":" + sportKey)
	if !ok {
		return nil
	}
	var saved SavedProgress
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return nil
	}
	if saved.DateKey != dateKey {
		return nil
	}
	return saved.GuessIDs
}

// MarkTutorialSeen remembers that the tutorial was shown for a sport key.
func (e *Engine) MarkTutorialSeen(sportKey string) error {
	return e.store.Set(tutorialKeyPrefix+":"+sportKey, "true")
}

// TutorialSeen reports whether the tutorial was already shown.
func (e *Engine) TutorialSeen(sportKey string) bool {
	v, ok := e.store.Get(tutorialKeyPrefix + ":" + sportKey)
	return ok && v == "true"
}
