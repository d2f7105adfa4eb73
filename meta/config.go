package meta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"quoridor/game"
)

type PlayerConfig struct {
	Name     string         `yaml:"name"`
	Walls    *int           `yaml:"walls,omitempty"`
	Position *game.Position `yaml:"position,omitempty"`
}

type EngineConfig struct {
	MaxTurns    int `yaml:"max_turns"`
	MaxAttempts int `yaml:"max_attempts"`
}

type ExperimentConfig struct {
	Games  int    `yaml:"games"`
	Output string `yaml:"output"`
}

type Config struct {
	Players    []PlayerConfig   `yaml:"players"`
	Walls      *game.WallSet    `yaml:"walls,omitempty"`
	Engine     EngineConfig     `yaml:"engine"`
	Experiment ExperimentConfig `yaml:"experiment"`
	LogLevel   string           `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Players: []PlayerConfig{{Name: "player1"}, {Name: "player2"}},
		Engine: EngineConfig{
			MaxTurns:    MAX_TURNS,
			MaxAttempts: MAX_ATTEMPTS,
		},
		Experiment: ExperimentConfig{
			Games:  GAMES,
			Output: OUTPUT_DIR,
		},
		LogLevel: LOG_LEVEL,
	}
}

// Load reads a YAML config from path. A missing file yields Default().
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML config. Unknown keys are rejected and fields left out
// keep their Default() values.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: config: %v", game.ErrInvalidSetup, err)
	}
	if cfg.Engine.MaxTurns <= 0 || cfg.Engine.MaxAttempts <= 0 || cfg.Experiment.Games <= 0 {
		return Config{}, fmt.Errorf("%w: engine limits and game count must be positive", game.ErrInvalidSetup)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// PlayerInputs converts the configured players, filling defaults for the
// fields left out.
func (c Config) PlayerInputs() []game.PlayerInput {
	inputs := make([]game.PlayerInput, 0, len(c.Players))
	for i, p := range c.Players {
		if p.Walls == nil && p.Position == nil {
			inputs = append(inputs, game.Named(p.Name))
			continue
		}
		player := game.Player{Name: p.Name, Walls: game.MaxWallsPerPlayer, Position: game.StartPosition(i + 1)}
		if p.Walls != nil {
			player.Walls = *p.Walls
		}
		if p.Position != nil {
			player.Position = *p.Position
		}
		inputs = append(inputs, game.Specified(player))
	}
	return inputs
}

// SetupLogging applies the configured level to the global zerolog logger
// and sends output to w through a console writer.
func (c Config) SetupLogging(w io.Writer) error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	return nil
}
