// internal/sports/nfl.go
//
// NFL configuration: classic columns (conference/division/team/position/
// jersey number) plus the Fanatic variant built from half-PPR per-game
// fantasy stats. Generated data carries divisions with a conference prefix
// ("AFC East"); that prefix is stripped at load time since the conference
// already has its own column.

package sports

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed data/nfl/players.json
var nflPlayersJSON []byte

//go:embed data/nfl/teams.json
var nflTeamsJSON []byte

//go:embed data/nfl/answer_pool.json
var nflAnswerPoolJSON []byte

//go:embed data/nfl/fanatic_players.json
var nflFanaticPlayersJSON []byte

//go:embed data/nfl/fanatic_answer_pool.json
var nflFanaticAnswerPoolJSON []byte

var nflDivisionPrefix = regexp.MustCompile(`(?i)^(AFC|NFC|American Football Conference|National Football Conference)\s+`)

func normalizeNFLDivision(v string) string {
	return strings.TrimSpace(nflDivisionPrefix.ReplaceAllString(v, ""))
}

func buildNFL() (*Config, error) {
	players, err := decodePlayers("nfl/players.json", nflPlayersJSON)
	if err != nil {
		return nil, err
	}
	teams, err := decodeTeams("nfl/teams.json", nflTeamsJSON)
	if err != nil {
		return nil, err
	}
	pool, err := decodePool("nfl/answer_pool.json", nflAnswerPoolJSON)
	if err != nil {
		return nil, err
	}
	fanaticPlayers, err := decodePlayers("nfl/fanatic_players.json", nflFanaticPlayersJSON)
	if err != nil {
		return nil, err
	}
	fanaticPool, err := decodePool("nfl/fanatic_answer_pool.json", nflFanaticAnswerPoolJSON)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		teams[i].Abbr = strings.ToUpper(teams[i].Abbr)
	}
	for i := range players {
		if div, ok := players[i].Attrs["division"].(string); ok {
			players[i].Attrs["division"] = normalizeNFLDivision(div)
		}
	}

	return &Config{
		Info:       meta[NFL],
		Teams:      teams,
		Players:    players,
		AnswerPool: filterPool(players, pool),
		Columns: []Column{
			{
				ID: "conference", Label: "CONF", Key: "conference",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "NFC", Status: "correct"},
			},
			{
				ID: "division", Label: "DIV", Key: "division", TopKey: "conference",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "South", TopValue: "NFC", Status: "incorrect"},
			},
			{
				ID: "team", Label: "TEAM", Key: "teamAbbr",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "ATL", Status: "incorrect"},
			},
			{
				ID: "position", Label: "POS", Key: "position",
				Evaluator: Evaluator{Kind: EvalMatch},
				Example:   Example{Value: "QB", Status: "correct"},
			},
			{
				ID: "number", Label: "#", Key: "number",
				Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(5), ShowDirection: true},
				Example:   Example{Value: "15", Arrow: "↑", Status: "close"},
			},
		},
		Variants: []Variant{
			{
				ID:         "fanatic",
				Label:      "Fanatic",
				Subtitle:   "Half-PPR fantasy stats (RB/WR/TE only)",
				Players:    fanaticPlayers,
				AnswerPool: filterPool(fanaticPlayers, fanaticPool),
				Columns: []Column{
					{
						ID: "fppg", Label: "FPPG", Key: "fppg",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(1.3), ShowDirection: true},
						Example:   Example{Value: "15.8", Arrow: "↑", Status: "close"},
					},
					{
						ID: "receptions-per-game", Label: "REC/G", Key: "recPerGame",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.5), ShowDirection: true},
						Example:   Example{Value: "5.4", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "yards-per-game", Label: "YDS/G", Key: "ydsPerGame",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(7), ShowDirection: true},
						Example:   Example{Value: "82.5", Arrow: "↑", Status: "close"},
					},
					{
						ID: "touchdowns-per-game", Label: "TD/G", Key: "tdPerGame",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.1), ShowDirection: true},
						Example:   Example{Value: "0.60", Arrow: "↓", Status: "incorrect"},
					},
					{
						ID: "targets-per-game", Label: "TGT/G", Key: "tgtPerGame",
						Evaluator: Evaluator{Kind: EvalComparison, CloseWithin: closeTo(0.7), ShowDirection: true},
						Example:   Example{Value: "7.8", Arrow: "↑", Status: "close"},
					},
				},
			},
		},
	}, nil
}
