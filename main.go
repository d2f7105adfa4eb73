package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/gamemaster"
	"quoridor/meta"
	"quoridor/player"
	"quoridor/searcher"
)

func main() {
	configPath := flag.String("config", "quoridor.yaml", "YAML config file, defaults apply when missing")
	mode := flag.String("mode", "play", "play (console vs heuristic), auto (agent vs agent) or experiment")
	name := flag.String("name", "self_play", "Experiment name, used as the output subfolder")
	seat := flag.Int("player", 1, "Seat of the console player in play mode")
	seed := flag.Uint64("seed", 0, "Seed for a random opponent in auto mode, 0 for the heuristic")
	flag.Parse()

	cfg, err := meta.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err = cfg.SetupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch *mode {
	case "play":
		err = play(cfg, *seat)
	case "auto":
		err = auto(cfg, *seed)
	case "experiment":
		_, err = experiments.Run(*name, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(cfg meta.Config, seat int) error {
	if seat != 1 && seat != 2 {
		return fmt.Errorf("player must be 1 or 2, got %d", seat)
	}
	session, err := gamemaster.NewSession(cfg.PlayerInputs(), cfg.Walls)
	if err != nil {
		return err
	}

	agents := []searcher.Agent{searcher.NewHeuristic(), searcher.NewHeuristic()}
	agents[seat-1] = player.NewConsole(cfg.Players[seat-1].Name, os.Stdin, os.Stdout)
	return runAndPrint(session, agents, cfg)
}

func auto(cfg meta.Config, seed uint64) error {
	session, err := gamemaster.NewSession(cfg.PlayerInputs(), cfg.Walls)
	if err != nil {
		return err
	}

	var opponent searcher.Agent = searcher.NewHeuristic()
	if seed != 0 {
		opponent = searcher.NewRandom(seed, 0.1)
	}
	return runAndPrint(session, []searcher.Agent{searcher.NewHeuristic(), opponent}, cfg)
}

// runAndPrint plays the game and writes the final snapshot to stdout.
func runAndPrint(session *gamemaster.Session, agents []searcher.Agent, cfg meta.Config) error {
	e := engine.LocalEngine(session, agents,
		engine.WithMaxTurns(cfg.Engine.MaxTurns),
		engine.WithMaxAttempts(cfg.Engine.MaxAttempts),
	)
	_, _, _, err := e.Run()
	if encErr := session.Snapshot().Encode(os.Stdout); encErr != nil {
		return encErr
	}
	return err
}
