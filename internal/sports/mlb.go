// internal/sports/mlb.go
//
// MLB configuration: league/division/team/position/number columns, with a
// Fanatic variant over hitter season stats.

package sports

import _ "embed"

//go:embed data/mlb/players.json
var mlbPlayersJSON []byte

//go:embed data/mlb/teams.json
var mlbTeamsJSON []byte

//go:embed data/mlb/answer_pool.json
var mlbAnswerPoolJSON []byte

//go:embed data/mlb/fanatic_players.json
var mlbFanaticPlayersJSON []byte

//go:embed data/mlb/fanatic_answer_pool.json
var mlbFanaticAnswerPoolJSON []byte

func buildMLB() (*Config, error) {
	players, err := decodePlayers("mlb/players.json", mlbPlayersJSON)
	if err != nil {
		return nil, err
	}
	teams, err := decodeTeams("mlb/teams.json", mlbTeamsJSON)
	if err != nil {
		return nil, err
	}
	pool, err := decodePool("mlb/answer_pool.json", mlbAnswerPoolJSON)
	if err != nil {
		return nil, err
	}
	fanaticPlayers, err := decodePlayers("mlb/fanatic_players.json", mlbFanaticPlayersJSON)
	if err != nil {
		return nil, err
	}
	fanaticPool, err := decodePool("mlb/fanatic_answer_pool.json", mlbFanaticAnswerPoolJSON)
	if err != nil {
		return nil, err
	}

	return &Config{
		Info:       meta[MLB],
		Teams:      teams,
		Players:    players,
		AnswerPool: filterPool(players, pool),
		Columns: []Column{
			{
				ID: "league", Label: "LG", Key: "league",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "NL", Status: "correct"},
			},
			{
				ID: "division", Label: "DIV", Key: "division", TopKey: "league",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "West", TopValue: "NL", Status: "incorrect"},
			},
			{
				ID: "team", Label: "TEAM", Key: "teamAbbr",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "LAD", Status: "incorrect"},
			},
			{
				ID: "position", Label: "POS", Key: "position",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "OF", Status: "correct"},
			},
			{
				ID: "number", Label: "#", Key: "number",
				Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(5), ShowDirection: true},
				Example:   Example{Value: "27", Arrow: "↑", Status: "close"},
			},
		},
		Variants: []Variant{
			{
				ID:         "fanatic",
				Label:      "Fanatic",
				Subtitle:   "Season stat challenge (hitters only)",
				Players:    fanaticPlayers,
				AnswerPool: filterPool(fanaticPlayers, fanaticPool),
				Columns: []Column{
					{
						ID: "batting-average", Label: "AVG", Key: "avg",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.011), ShowDirection: true},
						Example:   Example{Value: "0.287", Arrow: "↑", Status: "close"},
					},
					{
						ID: "home-runs", Label: "HR", Key: "hr",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(4), ShowDirection: true},
						Example:   Example{Value: "31", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "runs-batted-in", Label: "RBI", Key: "rbi",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(10), ShowDirection: true},
						Example:   Example{Value: "92", Arrow: "↑", Status: "close"},
					},
					{
						ID: "stolen-bases", Label: "SB", Key: "sb",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(2), ShowDirection: true},
						Example:   Example{Value: "18", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "ops", Label: "OPS", Key: "ops",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.035), ShowDirection: true},
						Example:   Example{Value: "0.845", Arrow: "↑", Status: "close"},
					},
				},
			},
		},
	}, nil
}
