// internal/sports/nhl.go
//
// NHL configuration. Generated division names carry a " Division" suffix
// that gets trimmed at load time; the Fanatic variant covers skater season
// stats.

package sports

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed data/nhl/players.json
var nhlPlayersJSON []byte

//go:embed data/nhl/teams.json
var nhlTeamsJSON []byte

//go:embed data/nhl/answer_pool.json
var nhlAnswerPoolJSON []byte

//go:embed data/nhl/fanatic_players.json
var nhlFanaticPlayersJSON []byte

//go:embed data/nhl/fanatic_answer_pool.json
var nhlFanaticAnswerPoolJSON []byte

var nhlDivisionSuffix = regexp.MustCompile(`(?i)\s+Division$`)

func buildNHL() (*Config, error) {
	players, err := decodePlayers("nhl/players.json", nhlPlayersJSON)
	if err != nil {
		return nil, err
	}
	teams, err := decodeTeams("nhl/teams.json", nhlTeamsJSON)
	if err != nil {
		return nil, err
	}
	pool, err := decodePool("nhl/answer_pool.json", nhlAnswerPoolJSON)
	if err != nil {
		return nil, err
	}
	fanaticPlayers, err := decodePlayers("nhl/fanatic_players.json", nhlFanaticPlayersJSON)
	if err != nil {
		return nil, err
	}
	fanaticPool, err := decodePool("nhl/fanatic_answer_pool.json", nhlFanaticAnswerPoolJSON)
	if err != nil {
		return nil, err
	}

	for i := range players {
		if div, ok := players[i].Attrs["division"].(string); ok {
			players[i].Attrs["division"] = strings.TrimSpace(nhlDivisionSuffix.ReplaceAllString(div, ""))
		}
	}

	return &Config{
		Info:       meta[NHL],
		Teams:      teams,
		Players:    players,
		AnswerPool: filterPool(players, pool),
		Columns: []Column{
			{
				ID: "conference", Label: "CONF", Key: "conference",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "West", Status: "correct"},
			},
			{
				ID: "division", Label: "DIV", Key: "division",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "Pacific", Status: "incorrect"},
			},
			{
				ID: "team", Label: "TEAM", Key: "teamAbbr",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "VGK", Status: "incorrect"},
			},
			{
				ID: "position", Label: "POS", Key: "position",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "C", Status: "correct"},
			},
			{
				ID: "number", Label: "#", Key: "number",
				Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(5), ShowDirection: true},
				Example:   Example{Value: "29", Arrow: "↑", Status: "close"},
			},
		},
		Variants: []Variant{
			{
				ID:         "fanatic",
				Label:      "Fanatic",
				Subtitle:   "Season stat challenge (skaters only)",
				Players:    fanaticPlayers,
				AnswerPool: filterPool(fanaticPlayers, fanaticPool),
				Columns: []Column{
					{
						ID: "goals", Label: "G", Key: "goals",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(3), ShowDirection: true},
						Example:   Example{Value: "28", Arrow: "↑", Status: "close"},
					},
					{
						ID: "assists", Label: "A", Key: "assists",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(3), ShowDirection: true},
						Example:   Example{Value: "42", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "points", Label: "PTS", Key: "points",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(5), ShowDirection: true},
						Example:   Example{Value: "70", Arrow: "↑", Status: "close"},
					},
					{
						ID: "shots-on-goal", Label: "SOG", Key: "sog",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(14), ShowDirection: true},
						Example:   Example{Value: "220", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "time-on-ice-per-game", Label: "TOI/G", Key: "toiPerGame",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(1.4), ShowDirection: true},
						Example:   Example{Value: "20.4", Arrow: "↑", Status: "close"},
					},
				},
			},
		},
	}, nil
}
