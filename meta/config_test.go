package meta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"quoridor/game"
)

func TestDecode(t *testing.T) {
	t.Run("fills defaults for missing sections", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader("log_level: debug\n"))
		require.NoError(t, err)

		want := Default()
		want.LogLevel = "debug"
		require.Equal(t, want, cfg)
	})

	t.Run("empty input is the default", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("reads a full setup", func(t *testing.T) {
		in := `
players:
  - name: henri
    walls: 9
    position: [5, 2]
  - name: robot
walls:
  horizontal: [[4, 6]]
  vertical: []
engine:
  max_turns: 50
  max_attempts: 1
experiment:
  games: 2
  output: out
`
		cfg, err := Decode(strings.NewReader(in))
		require.NoError(t, err)
		require.Equal(t, 50, cfg.Engine.MaxTurns)
		require.Equal(t, 1, cfg.Engine.MaxAttempts)
		require.Equal(t, ExperimentConfig{Games: 2, Output: "out"}, cfg.Experiment)
		require.Equal(t, []game.Position{{X: 4, Y: 6}}, cfg.Walls.Horizontal)

		gs, err := game.NewGameState(cfg.PlayerInputs(), cfg.Walls)
		require.NoError(t, err)
		p1, _ := gs.Player(1)
		p2, _ := gs.Player(2)
		require.Equal(t, game.Player{Name: "henri", Walls: 9, Position: game.Position{X: 5, Y: 2}}, p1)
		require.Equal(t, game.Player{Name: "robot", Walls: 10, Position: game.Position{X: 5, Y: 9}}, p2)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Decode(strings.NewReader("walls:\n  diagonal: [[1, 1]]\n"))
		require.ErrorIs(t, err, game.ErrInvalidSetup)

		_, err = Decode(strings.NewReader("speed: 3\n"))
		require.ErrorIs(t, err, game.ErrInvalidSetup)
	})

	t.Run("rejects malformed positions", func(t *testing.T) {
		_, err := Decode(strings.NewReader("players:\n  - name: a\n    position: [1, 2, 3]\n"))
		require.ErrorIs(t, err, game.ErrInvalidSetup)
	})

	t.Run("rejects non-positive limits", func(t *testing.T) {
		_, err := Decode(strings.NewReader("engine:\n  max_turns: 0\n  max_attempts: 3\n"))
		require.ErrorIs(t, err, game.ErrInvalidSetup)
	})

	t.Run("rejects unknown log levels", func(t *testing.T) {
		_, err := Decode(strings.NewReader("log_level: loud\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives the default", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("reads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("experiment:\n  games: 4\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 4, cfg.Experiment.Games)
		require.Equal(t, OUTPUT_DIR, cfg.Experiment.Output)
	})
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)

	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "warn"
	require.NoError(t, cfg.SetupLogging(&buf))

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
