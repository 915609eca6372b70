// internal/game/engine.go
//
// Guess-session state machine for a single round (daily or arcade).
// Responsibilities:
//   - Validate and apply guesses (known player, no repeats, max six rows).
//   - Score each guess into feedback cells via EvaluateColumn.
//   - Track state transitions: playing → won/lost.
//   - Rebuild a half-finished daily round from saved guess ids.

package game

import (
	"errors"
	"strings"

	"github.com/playerdle/playerdle/internal/sports"
)

// MaxGuesses is the number of rows in a round.
const MaxGuesses = 6

var (
	ErrFinished      = errors.New("round is finished")
	ErrUnknownPlayer = errors.New("player not on the roster")
	ErrRepeatedGuess = errors.New("player already guessed")
)

// Session holds the state of one round against a resolved sport config.
type Session struct {
	cfg      *sports.Config
	answer   sports.Player
	guessIDs []string
	finished bool
	won      bool
}

// NewSession starts a round for the given answer. The config must already be
// resolved (variant applied) so Players/Columns reflect the active ruleset.
func NewSession(cfg *sports.Config, answer sports.Player) *Session {
	return &Session{cfg: cfg, answer: answer}
}

// Resume replays previously saved guess ids into a fresh session, ignoring
// ids that no longer resolve against the roster. Used to restore today's
// half-finished daily round on startup.
func (s *Session) Resume(guessIDs []string) {
	for _, id := range guessIDs {
		if s.finished {
			return
		}
		if _, ok := s.cfg.FindPlayer(id); !ok {
			continue
		}
		_, _, _ = s.ApplyGuess(id)
	}
}

// ApplyGuess validates and scores a guess by player id, mutating session
// state. Returns the evaluated row and the coarse state string
// ("playing"/"won"/"lost").
func (s *Session) ApplyGuess(playerID string) ([]Cell, string, error) {
	if s.finished {
		return nil, s.State(), ErrFinished
	}
	guess, ok := s.cfg.FindPlayer(playerID)
	if !ok {
		return nil, s.State(), ErrUnknownPlayer
	}
	for _, prev := range s.guessIDs {
		if prev == playerID {
			return nil, s.State(), ErrRepeatedGuess
		}
	}

	row := EvaluateRow(guess, s.answer, s.cfg.Columns)
	s.guessIDs = append(s.guessIDs, playerID)

	if guess.ID == s.answer.ID {
		s.finished, s.won = true, true
	} else if len(s.guessIDs) >= MaxGuesses {
		s.finished = true
	}
	return row, s.State(), nil
}

// State reports a coarse string representation of the round.
func (s *Session) State() string {
	if s.finished {
		if s.won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// GuessIDs returns the ids guessed so far, in order.
func (s *Session) GuessIDs() []string {
	return append([]string(nil), s.guessIDs...)
}

// Guesses returns the number of rows used.
func (s *Session) Guesses() int { return len(s.guessIDs) }

// Finished reports whether the round is over.
func (s *Session) Finished() bool { return s.finished }

// Won reports whether the round ended in a win.
func (s *Session) Won() bool { return s.won }

// Answer returns the hidden target player.
func (s *Session) Answer() sports.Player { return s.answer }

// FindByName resolves a guess typed as a player name, case-insensitively.
// Exact matches win; otherwise a unique prefix match is accepted.
func (s *Session) FindByName(name string) (sports.Player, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return sports.Player{}, false
	}
	var prefix []sports.Player
	for _, p := range s.cfg.Players {
		lower := strings.ToLower(p.Name)
		if lower == needle {
			return p, true
		}
		if strings.HasPrefix(lower, needle) {
			prefix = append(prefix, p)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], true
	}
	return sports.Player{}, false
}
