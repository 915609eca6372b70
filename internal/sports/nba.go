// internal/sports/nba.go
//
// NBA configuration, with a Fanatic variant over per-game season averages.

package sports

import _ "embed"

//go:embed data/nba/players.json
var nbaPlayersJSON []byte

//go:embed data/nba/teams.json
var nbaTeamsJSON []byte

//go:embed data/nba/answer_pool.json
var nbaAnswerPoolJSON []byte

//go:embed data/nba/fanatic_players.json
var nbaFanaticPlayersJSON []byte

//go:embed data/nba/fanatic_answer_pool.json
var nbaFanaticAnswerPoolJSON []byte

func buildNBA() (*Config, error) {
	players, err := decodePlayers("nba/players.json", nbaPlayersJSON)
	if err != nil {
		return nil, err
	}
	teams, err := decodeTeams("nba/teams.json", nbaTeamsJSON)
	if err != nil {
		return nil, err
	}
	pool, err := decodePool("nba/answer_pool.json", nbaAnswerPoolJSON)
	if err != nil {
		return nil, err
	}
	fanaticPlayers, err := decodePlayers("nba/fanatic_players.json", nbaFanaticPlayersJSON)
	if err != nil {
		return nil, err
	}
	fanaticPool, err := decodePool("nba/fanatic_answer_pool.json", nbaFanaticAnswerPoolJSON)
	if err != nil {
		return nil, err
	}

	return &Config{
		Info:       meta[NBA],
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
				Example:   Example{Value: "LAL", Status: "incorrect"},
			},
			{
				ID: "position", Label: "POS", Key: "position",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "PG", Status: "correct"},
			},
			{
				ID: "number", Label: "#", Key: "number",
				Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(5), ShowDirection: true},
				Example:   Example{Value: "30", Arrow: "↑", Status: "close"},
			},
		},
		Variants: []Variant{
			{
				ID:         "fanatic",
				Label:      "Fanatic",
				Subtitle:   "Guess the NBA player from season averages in 6 tries",
				Players:    fanaticPlayers,
				AnswerPool: filterPool(fanaticPlayers, fanaticPool),
				Columns: []Column{
					{
						ID: "points", Label: "PTS", Key: "pts",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(2), ShowDirection: true},
						Example:   Example{Value: "24.8", Arrow: "↑", Status: "close"},
					},
					{
						ID: "rebounds", Label: "REB", Key: "reb",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.7), ShowDirection: true},
						Example:   Example{Value: "8.4", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "assists", Label: "AST", Key: "ast",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.5), ShowDirection: true},
						Example:   Example{Value: "6.1", Arrow: "↑", Status: "close"},
					},
					{
						ID: "steals", Label: "STL", Key: "stl",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.2), ShowDirection: true},
						Example:   Example{Value: "1.4", Arrow: "↓", Status: "close"},
					},
					{
						ID: "turnovers", Label: "TOV", Key: "tov",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.4), ShowDirection: true},
						Example:   Example{Value: "2.3", Arrow: "↓", Status: "close"},
					},
					{
						ID: "field-goal-percentage", Label: "FG%", Key: "fgPct",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(3), ShowDirection: true},
						Example:   Example{Value: "49.2", Arrow: "↑", Status: "close"},
					},
					{
						ID: "free-throw-percentage", Label: "FT%", Key: "ftPct",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(2), ShowDirection: true},
						Example:   Example{Value: "84.1", Arrow: "↑", Status: "close"},
					},
				},
			},
		},
	}, nil
}
