package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"quoridor/game"
)

var ErrNotYourTurn = errors.New("not your turn")

// UpdateGetter pops the oldest pending update. It returns nil, nil when
// nothing is pending.
type UpdateGetter func() (*game.GameMove, *game.Snapshot)

type Engine interface {
	Init() (game.Snapshot, UpdateGetter)
	Play(player int, move game.GameMove) error
}

var _ Engine = (*Session)(nil)

type update struct {
	move  game.GameMove
	state game.Snapshot
}

// Session referees one game: it owns the state, enforces turn order and
// queues an update for every accepted move.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	state   *game.GameState
	turn    int
	pending []update
}

func NewSession(players []game.PlayerInput, walls *game.WallSet) (*Session, error) {
	gs, err := game.NewGameState(players, walls)
	if err != nil {
		return nil, err
	}
	return FromState(gs), nil
}

// FromState wraps an already validated state. Player 1 moves first.
func FromState(gs *game.GameState) *Session {
	return &Session{
		ID:    uuid.New(),
		state: gs.Copy(),
		turn:  1,
	}
}

func (s *Session) Init() (game.Snapshot, UpdateGetter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot(), func() (*game.GameMove, *game.Snapshot) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.pending) == 0 {
			return nil, nil
		}
		u := s.pending[0]
		s.pending = s.pending[1:]
		return &u.move, &u.state
	}
}

func (s *Session) Play(player int, move game.GameMove) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsOver() {
		return game.ErrGameOver
	}
	if _, err := s.state.Player(player); err != nil {
		return err
	}
	if player != s.turn {
		return fmt.Errorf("%w: player %d to move", ErrNotYourTurn, s.turn)
	}
	if err := s.state.Play(player, move); err != nil {
		return err
	}

	s.pending = append(s.pending, update{move: move, state: s.state.Snapshot()})
	s.turn = game.Opponent(s.turn)
	return nil
}

// State returns a copy agents are free to mutate.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Turn is the number of the player to move.
func (s *Session) Turn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) Winner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Winner()
}

func (s *Session) Hash() game.StateHash {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Hash()
}
