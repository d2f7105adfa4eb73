package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/gamemaster"
	"quoridor/meta"
	"quoridor/searcher"
)

const (
	Heuristic = "heuristic"
	Random    = "random"
)

var agentConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: Heuristic},
	{ID: 2, Kind: Random, Seed: 1, WallRate: 0.1},
}

// Each matchup is played from both seats against the baseline heuristic
var matchUps = [][]metrics.AgentConfig{
	{agentConfigs[0], agentConfigs[0]},
	{agentConfigs[0], agentConfigs[1]},
	{agentConfigs[1], agentConfigs[0]},
}

// Run plays cfg.Experiment.Games games per matchup and writes the records
// under cfg.Experiment.Output/name/. It returns the output directory.
func Run(name string, cfg meta.Config) (string, error) {
	return runExperiment(name, cfg, agentConfigs, matchUps)
}

func runExperiment(name string, cfg meta.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	games := cfg.Experiment.Games

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(cfg, config1, config2, uint64(i))
			if err != nil {
				log.Warn().Err(err).Msgf("matchup %d of %d game %d ended early", mi+1, len(matchUps), i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID.String(),
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Experiment.Output, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays one game between two agents from the configured setup.
func runGame(cfg meta.Config, config1, config2 metrics.AgentConfig, round uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	session, err := gamemaster.NewSession(cfg.PlayerInputs(), cfg.Walls)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agents := []searcher.Agent{createAgent(config1, round), createAgent(config2, round)}
	e := engine.LocalEngine(session, agents,
		engine.WithMaxTurns(cfg.Engine.MaxTurns),
		engine.WithMaxAttempts(cfg.Engine.MaxAttempts),
	)
	return e.Run()
}

// createAgent builds the agent for config. Random agents get a fresh seed
// per round so games differ but reruns repeat.
func createAgent(config metrics.AgentConfig, round uint64) searcher.Agent {
	if config.Kind == Random {
		return searcher.NewRandom(config.Seed+round, config.WallRate)
	}
	return searcher.NewHeuristic()
}
