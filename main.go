package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joebags99/kingdoms-castles/catalog"
	"github.com/joebags99/kingdoms-castles/config"
	"github.com/joebags99/kingdoms-castles/game"
	"github.com/joebags99/kingdoms-castles/gamemaster"
	"github.com/joebags99/kingdoms-castles/meta"
	"github.com/joebags99/kingdoms-castles/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	rounds := flag.Int("rounds", 2, "Full rounds (both players) to play after setup")
	metricsDir := flag.String("metrics", cfg.MetricsDir, "Directory for CSV action records (empty disables)")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for dice and deck shuffles (0 picks one)")
	flag.Parse()

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(cfg, *rounds, *seed, *metricsDir); err != nil {
		log.Fatal().Err(err).Msg("headless game failed")
	}
}

func run(cfg config.Config, rounds int, seed uint64, metricsDir string) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	engine := game.NewEngine(
		game.WithRules(rules),
		game.WithCatalog(catalog.Default()),
		game.WithLogger(log.Logger),
	)

	options := []gamemaster.Option{gamemaster.WithLogger(log.Logger)}
	if seed != 0 {
		options = append(options, gamemaster.WithSeed(seed))
	}
	collector := metrics.NewDummyCollector()
	if metricsDir != "" {
		collector = metrics.NewCollector()
	}
	options = append(options, gamemaster.WithCollector(collector))
	store := gamemaster.NewStore(engine, options...)

	if err := playOpening(store, cfg); err != nil {
		return err
	}
	playRounds(store, rounds)

	final := store.State()
	log.Info().
		Str("player", string(final.CurrentPlayer)).
		Stringer("phase", final.CurrentPhase).
		Int("turn_a", final.TurnNumber.A).
		Int("turn_b", final.TurnNumber.B).
		Int("gold_a", final.Gold(game.PlayerA)).
		Int("gold_b", final.Gold(game.PlayerB)).
		Int("units", len(final.Units)).
		Msg("headless game finished")

	if metricsDir == "" {
		return nil
	}
	return writeRecords(metricsDir, collector, final)
}

// playOpening rolls for the first player, lays out the board and both
// capitals, lights every generator and completes setup.
func playOpening(store *gamemaster.Store, cfg config.Config) error {
	starting, roll := store.RollStartingPlayer()
	log.Info().Int("roll", roll).Str("player", string(starting)).Msg("starting player rolled")

	w, h := cfg.BoardWidth, cfg.BoardHeight
	capitalA := game.Coord{Q: 2, R: 1}
	capitalB := game.Coord{Q: w - 3, R: h - 2}

	actions := []game.Action{
		game.ResetGame{StartingPlayer: starting},
		game.StartGame{StartingPlayer: starting},
		game.SetBoard{Board: game.GenerateBoard(w, h)},
		game.ClaimCapital{Owner: game.PlayerA, Q: capitalA.Q, R: capitalA.R},
		game.ClaimCapital{Owner: game.PlayerB, Q: capitalB.Q, R: capitalB.R},
	}
	if err := store.DispatchAll(actions...); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	for _, hex := range store.State().Board {
		if _, ok := hex.Capital(); ok {
			// Past the generator limit the engine declines and the game goes on.
			store.Dispatch(game.ToggleGenerator{Q: hex.Q, R: hex.R})
		}
	}
	if res := store.Dispatch(game.CompleteSetup{}); !res.Accepted() {
		return fmt.Errorf("complete setup: %w", res.Err())
	}
	return nil
}

// playRounds walks both players through their turns: draw a card, deploy a
// unit in either development phase when affordable, and step every unit
// toward the enemy in Movement.
func playRounds(store *gamemaster.Store, rounds int) {
	for turn := 0; turn < 2*rounds && turn < meta.MAX_TURNS; turn++ {
		for {
			gs := store.State()
			switch {
			case gs.CurrentPhase == game.PhaseDraw:
				store.Dispatch(game.DrawCard{})
			case gs.CurrentPhase.IsDevelopment():
				deployBasicUnit(store, gs)
			case gs.CurrentPhase == game.PhaseMovement:
				advanceUnits(store, gs)
			}
			store.Dispatch(game.NextPhase{})
			if store.State().CurrentPhase == game.PhaseResource {
				break
			}
		}
	}
}

func deployBasicUnit(store *gamemaster.Store, gs *game.GameState) {
	if gs.Gold(gs.CurrentPlayer) < meta.DeployCost {
		return
	}
	zone := game.ZoneFor(gs.CurrentPlayer)
	for _, hex := range gs.Board {
		if hex.Zone == zone && !gs.Occupied(hex.Q, hex.R) {
			store.Dispatch(game.DeployUnit{Q: hex.Q, R: hex.R, AP: meta.DeployUnitAP, HP: meta.DeployUnitHP})
			return
		}
	}
}

func advanceUnits(store *gamemaster.Store, gs *game.GameState) {
	// A toward larger r, B toward smaller r.
	step := game.Coord{Q: 0, R: 1}
	if gs.CurrentPlayer == game.PlayerB {
		step = game.Coord{Q: 0, R: -1}
	}
	for _, u := range gs.UnitsOf(gs.CurrentPlayer) {
		store.Dispatch(game.MoveUnit{UnitID: u.ID, Q: u.Q + step.Q, R: u.R + step.R})
	}
}

func writeRecords(dir string, collector metrics.Collector, final *game.GameState) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	record := metrics.GameRecord{ID: 1, GameMetric: collector.Complete(final)}
	if err := writer.WriteGameRecords([]metrics.GameRecord{record}); err != nil {
		return err
	}

	actions := []metrics.ActionRecord{}
	for _, am := range collector.Actions() {
		actions = append(actions, metrics.ActionRecord{Game: record.ID, ActionMetric: am})
	}
	if err := writer.WriteActionRecords(actions); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored action records")
	return nil
}
