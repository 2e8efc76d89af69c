package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/config"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/persist"
)

var gameFlags = []cli.Flag{
	&cli.StringFlag{Name: "config", Usage: "path to config file"},
	&cli.IntFlag{Name: "width", Usage: "map width in tiles"},
	&cli.IntFlag{Name: "height", Usage: "map height in tiles"},
	&cli.IntFlag{Name: "cities", Usage: "number of cities to place"},
	&cli.IntFlag{Name: "seed", Usage: "random seed (0 = time-based)"},
	&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
}

func main() {
	cmd := &cli.Command{
		Name:  "empire",
		Usage: "Hot-seat Empire strategy game engine",
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "run a scripted random game and print the board",
				Flags:  append(gameFlags, demoFlags()...),
				Action: runDemo,
			},
			{
				Name:   "smoke",
				Usage:  "generate a map and print it once",
				Flags:  gameFlags,
				Action: runSmoke,
			},
			{
				Name:  "show",
				Usage: "load a saved game and print the current player's view",
				Flags: append(gameFlags,
					&cli.StringFlag{Name: "name", Value: "autosave", Usage: "save name"},
					&cli.StringFlag{Name: "save-dir", Usage: "save directory"},
				),
				Action: runShow,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func demoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "turns", Usage: "maximum turns to simulate"},
		&cli.StringFlag{Name: "save", Usage: "save name to write at the end"},
		&cli.StringFlag{Name: "save-dir", Usage: "save directory"},
	}
}

// setup initializes config and logging, and returns the engine parameters
// shared by every subcommand.
func setup(cmd *cli.Command) (game.GameConfig, *rand.Rand, error) {
	if err := config.Init(cmd.String("config")); err != nil {
		return game.GameConfig{}, nil, err
	}

	level := zerolog.InfoLevel
	if cmd.Bool("verbose") || config.Get().Development.VerboseLogging {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger

	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", seed)
	rng := rand.New(rand.NewSource(seed))

	cfg := game.GameConfig{
		Width:       int(cmd.Int("width")),
		Height:      int(cmd.Int("height")),
		Cities:      int(cmd.Int("cities")),
		PlayerNames: []string{"Player 1", "Player 2"},
		Rng:         rng,
		Logger:      logger,
	}
	return cfg, rng, nil
}

func saveDir(cmd *cli.Command) string {
	if dir := cmd.String("save-dir"); dir != "" {
		return dir
	}
	return config.Get().Persistence.SaveDir
}

func printBoard(e *game.Engine, forPlayer int) {
	gs := e.GameState()
	view := game.Viewport{W: gs.Grid.W, H: gs.Grid.H}
	for _, row := range e.RenderSnapshot(view, forPlayer) {
		fmt.Println(row)
	}
}

func runSmoke(_ context.Context, cmd *cli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	engine, err := game.NewEngine(cfg)
	if err != nil {
		return err
	}

	gs := engine.GameState()
	fmt.Printf("Map %dx%d, %d cities, %d starting units\n",
		gs.Grid.W, gs.Grid.H, len(gs.Cities), len(gs.Units))
	printBoard(engine, -1)
	return nil
}

func runDemo(_ context.Context, cmd *cli.Command) error {
	cfg, rng, err := setup(cmd)
	if err != nil {
		return err
	}

	engine, err := game.NewEngine(cfg)
	if err != nil {
		return err
	}

	if cmd.Bool("verbose") {
		engine.EventBus().Subscribe(
			subscribers.NewLoggerSubscriber("demo-logger", cfg.Logger, zerolog.DebugLevel))
	}

	maxTurns := int(cmd.Int("turns"))
	if maxTurns <= 0 {
		maxTurns = config.Get().Demo.MaxTurns
	}

	for !engine.IsGameOver() && engine.GameState().Turn <= maxTurns {
		playRandomTurn(engine, rng)
		if _, err := engine.EndTurn(); err != nil {
			return err
		}
		gs := engine.GameState()
		if gs.Turn%10 == 0 {
			fmt.Printf("\nTurn %d, player %d to move:\n", gs.Turn, gs.CurrentPlayer+1)
			printBoard(engine, -1)
		}
	}

	fmt.Println("\nFinal board:")
	printBoard(engine, -1)
	if engine.IsGameOver() {
		fmt.Printf("Game over! Player %d wins on turn %d\n",
			engine.Winner()+1, engine.GameState().Turn)
	} else {
		fmt.Printf("Game reached maximum turns (%d)\n", maxTurns)
	}
	for p := range engine.GameState().Players {
		fmt.Printf("Player %d: %d cities, %d units, %d kills\n",
			p+1, engine.GameState().CityCount(p),
			len(engine.GameState().UnitsOwnedBy(p)), engine.Telemetry().TotalKills(p))
	}

	if name := cmd.String("save"); name != "" {
		store, err := persist.NewFileStore(saveDir(cmd), cfg.Logger)
		if err != nil {
			return err
		}
		if err := store.Save(name, engine.GameState()); err != nil {
			return err
		}
		fmt.Printf("Saved game to %s\n", store.Path(name))
	}
	return nil
}

// playRandomTurn drives the current player's units in random directions and
// occasionally rotates city production. Crude, but it exercises every code
// path the engine exposes.
func playRandomTurn(engine *game.Engine, rng *rand.Rand) {
	gs := engine.GameState()
	player := gs.CurrentPlayer

	for _, c := range gs.Cities {
		if c.Owner == player && rng.Intn(20) == 0 {
			_ = engine.CycleCityProduction(c)
		}
	}

	for _, u := range gs.UnitsOwnedBy(player) {
		for attempts := 0; u.CanMove() && attempts < 8; attempts++ {
			dx := rng.Intn(3) - 1
			dy := rng.Intn(3) - 1
			if dx == 0 && dy == 0 {
				continue
			}
			if _, err := engine.AttemptMove(u, dx, dy); err != nil {
				continue
			}
			if engine.IsGameOver() {
				return
			}
		}
	}
}

func runShow(_ context.Context, cmd *cli.Command) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	store, err := persist.NewFileStore(saveDir(cmd), cfg.Logger)
	if err != nil {
		return err
	}
	gs, err := store.Load(cmd.String("name"))
	if err != nil {
		return err
	}

	engine, err := game.NewEngineFromState(gs, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Turn %d, player %d to move:\n", gs.Turn, gs.CurrentPlayer+1)
	printBoard(engine, gs.CurrentPlayer)
	return nil
}
