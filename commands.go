// commands.go
//
// CLI surface for Playerdle. Subcommands:
//   - validate: load every sport config, run the validator, exit non-zero on
//     any error (CI gate for generated data).
//   - daily:    print the deterministic daily answer for a sport/date.
//   - play:     play a round in the terminal (daily by default, --arcade for
//     unlimited replay once today's daily is beaten).
//   - stats:    print played/win%/streaks/guess distribution.
//
// Flags bind to PLAYERDLE_* environment variables via viper.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/playerdle/playerdle/internal/daily"
	"github.com/playerdle/playerdle/internal/game"
	"github.com/playerdle/playerdle/internal/sports"
	"github.com/playerdle/playerdle/internal/stats"
	"github.com/playerdle/playerdle/internal/storage"
)

const releaseVersion = "1.0.0"

type cliConfig struct {
	dbPath  string
	sport   string
	variant string
	date    string
	arcade  bool
}

func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}

	v := viper.New()
	v.SetEnvPrefix("PLAYERDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "playerdle",
		Short:   "Guess the hidden player, one column of clues at a time.",
		Version: releaseVersion,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfg.dbPath, "db", "data/playerdle.db", "path to the local stats database (env: PLAYERDLE_DB)")
	pf.StringVarP(&cfg.sport, "sport", "s", "nfl", "league to play: nfl, mlb, nhl, nba (env: PLAYERDLE_SPORT)")
	pf.StringVar(&cfg.variant, "variant", "", "variant ruleset, e.g. fanatic (env: PLAYERDLE_VARIANT)")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newDailyCmd(cfg))
	cmd.AddCommand(newPlayCmd(cfg))
	cmd.AddCommand(newStatsCmd(cfg))

	pf.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = pf.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true

	return cmd
}

func parseSportID(flag string) (sports.ID, error) {
	id := sports.ID(strings.ToLower(strings.TrimSpace(flag)))
	for _, known := range sports.AllIDs() {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown sport %q (want nfl, mlb, nhl, or nba)", flag)
}

// loadResolved loads the sport config and applies the requested variant.
// An explicitly requested variant that doesn't exist is an error rather
// than a silent fallback to the base game.
func loadResolved(cfg *cliConfig) (*sports.Config, error) {
	id, err := parseSportID(cfg.sport)
	if err != nil {
		return nil, err
	}
	base, err := sports.Load(id)
	if err != nil {
		return nil, err
	}
	if cfg.variant != "" && sports.FindVariant(base, cfg.variant) == nil {
		return nil, fmt.Errorf("sport %s has no variant %q", id, cfg.variant)
	}
	return sports.Resolve(base, cfg.variant), nil
}

func openStore(cfg *cliConfig) (storage.Store, func(), error) {
	if cfg.dbPath == "" {
		log.Debug().Msg("no db path configured, results will not persist")
		return storage.NewMemory(), func() {}, nil
	}
	db, err := storage.OpenSQLite(cfg.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open stats db: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}

// ----------------------------- validate ------------------------------------

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every sport configuration and exit non-zero on errors",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgs, err := sports.LoadAll()
			if err != nil {
				return err
			}
			errs := sports.ValidateAll(cfgs)
			for _, msg := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d validation error(s)", len(errs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "all %d sport configs are valid\n", len(cfgs))
			return nil
		},
	}
}

// ------------------------------- daily -------------------------------------

func newDailyCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the daily answer for a sport and date",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := loadResolved(cfg)
			if err != nil {
				return err
			}
			dateKey := cfg.date
			if dateKey == "" {
				dateKey = daily.TodayKey()
			}
			date, err := daily.ParseDateKey(dateKey)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", cfg.date)
			}
			answer, err := daily.Answer(resolved, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", dateKey, statsKeyFor(resolved), answer.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.date, "date", "", "date key YYYY-MM-DD (default today, US Eastern)")
	return cmd
}

// -------------------------------- play -------------------------------------

func newPlayCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := loadResolved(cfg)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()
			return runRound(cmd, cfg, resolved, stats.NewEngine(store), store)
		},
	}
	cmd.Flags().BoolVar(&cfg.arcade, "arcade", false, "unlimited replay mode (unlocked by beating today's daily)")
	return cmd
}

func statsKeyFor(cfg *sports.Config) string {
	return stats.SportKey(string(cfg.ID), cfg.ActiveVariantID)
}

func lastArcadeKey(sportKey string) string {
	return "playerdle-arcade-last:" + sportKey
}

func runRound(cmd *cobra.Command, cfg *cliConfig, resolved *sports.Config, engine *stats.Engine, store storage.Store) error {
	sportKey := statsKeyFor(resolved)
	out := cmd.OutOrStdout()

	var answer sports.Player
	var err error
	if cfg.arcade {
		if !engine.HasBeatTodaysDaily(sportKey) {
			return fmt.Errorf("arcade unlocks after you beat today's %s daily", resolved.DisplayName)
		}
		lastID, _ := store.Get(lastArcadeKey(sportKey))
		answer, err = daily.ArcadeAnswer(resolved, lastID)
	} else {
		answer, err = daily.Answer(resolved, time.Now())
	}
	if err != nil {
		return err
	}

	title := resolved.DisplayName
	if resolved.ActiveVariantLabel != "" {
		title += " " + resolved.ActiveVariantLabel
	}
	fmt.Fprintf(out, "Playerdle %s — %s\n", title, resolved.Subtitle)

	if !engine.TutorialSeen(sportKey) {
		printGuide(out, resolved)
		if err := engine.MarkTutorialSeen(sportKey); err != nil {
			log.Warn().Err(err).Msg("persist tutorial flag")
		}
	}

	session := game.NewSession(resolved, answer)

	todayKey := daily.TodayKey()
	if !cfg.arcade {
		if saved := engine.Progress(sportKey, todayKey); len(saved) > 0 {
			session.Resume(saved)
			fmt.Fprintf(out, "resuming today's round (%d guesses used)\n", session.Guesses())
			replayRows(out, session, resolved)
		}
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for !session.Finished() {
		fmt.Fprintf(out, "guess %d/%d: ", session.Guesses()+1, game.MaxGuesses)
		if !sc.Scan() {
			return sc.Err()
		}
		guess, ok := session.FindByName(sc.Text())
		if !ok {
			fmt.Fprintln(out, "no matching player, try a full name")
			continue
		}

		row, _, err := session.ApplyGuess(guess.ID)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}
		printRow(out, resolved.Columns, row)

		if !cfg.arcade {
			if err := engine.SaveProgress(sportKey, todayKey, session.GuessIDs()); err != nil {
				log.Warn().Err(err).Msg("persist progress")
			}
		}
	}

	if session.Won() {
		fmt.Fprintf(out, "got it in %d!\n", session.Guesses())
	} else {
		fmt.Fprintf(out, "out of guesses — it was %s\n", session.Answer().Name)
	}

	if cfg.arcade {
		if err := store.Set(lastArcadeKey(sportKey), session.Answer().ID); err != nil {
			log.Warn().Err(err).Msg("persist arcade answer")
		}
		return nil
	}

	if err := engine.SaveResult(sportKey, session.Won(), session.Guesses()); err != nil {
		log.Warn().Err(err).Msg("persist result")
	}
	return nil
}

// replayRows re-renders the rows of a resumed session.
func replayRows(out io.Writer, session *game.Session, resolved *sports.Config) {
	answer := session.Answer()
	for _, id := range session.GuessIDs() {
		if guess, ok := resolved.FindPlayer(id); ok {
			printRow(out, resolved.Columns, game.EvaluateRow(guess, answer, resolved.Columns))
		}
	}
}

func statusGlyph(s game.Status) string {
	switch s {
	case game.StatusCorrect:
		return "🟩"
	case game.StatusClose:
		return "🟨"
	}
	return "⬜"
}

func printRow(out io.Writer, columns []sports.Column, row []game.Cell) {
	parts := make([]string, len(row))
	for i, cell := range row {
		value := cell.Value
		if cell.TopValue != "" {
			value = cell.TopValue + " " + value
		}
		if cell.Arrow != "" {
			value += " " + cell.Arrow
		}
		parts[i] = fmt.Sprintf("%s %s %s", statusGlyph(cell.Status), columns[i].Label, value)
	}
	fmt.Fprintln(out, strings.Join(parts, "  |  "))
}

func printGuide(out io.Writer, resolved *sports.Config) {
	fmt.Fprintln(out, "columns:")
	for _, col := range resolved.Columns {
		example := col.Example.Value
		if col.Example.Arrow != "" {
			example += " " + col.Example.Arrow
		}
		fmt.Fprintf(out, "  %-6s e.g. %s (%s)\n", col.Label, example, col.Example.Status)
	}
	fmt.Fprintln(out, "🟩 exact  🟨 close  ⬜ miss — arrows point toward the answer")
}

// ------------------------------- stats -------------------------------------

func newStatsCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show local statistics for a sport",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := loadResolved(cfg)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			s := stats.NewEngine(store).Calculate(statsKeyFor(resolved))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "played         %d\n", s.Played)
			fmt.Fprintf(out, "win %%          %d\n", s.WinPercentage)
			fmt.Fprintf(out, "current streak %d\n", s.CurrentStreak)
			fmt.Fprintf(out, "max streak     %d\n", s.MaxStreak)
			fmt.Fprintln(out, "guess distribution:")
			for n := 1; n <= game.MaxGuesses; n++ {
				fmt.Fprintf(out, "  %d: %d\n", n, s.GuessDistribution[n])
			}
			return nil
		},
	}
}
