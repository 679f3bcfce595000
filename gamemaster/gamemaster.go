package gamemaster

import (
	"github.com/joebags99/kingdoms-castles/game"
	"github.com/joebags99/kingdoms-castles/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Update is delivered to listeners after every accepted action.
type Update struct {
	Action game.Action
	State  *game.GameState
}

type Listener func(Update)

type Option func(s *Store)

// WithState starts the store from an existing state instead of a fresh Setup.
func WithState(gs *game.GameState) Option {
	return func(s *Store) {
		if gs != nil {
			s.state = gs.Copy()
		}
	}
}

// WithSeed makes deck shuffles and starting-player rolls reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Store) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Store) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store owns the authoritative game state and replaces it whenever the
// engine accepts an action. It is not safe for concurrent use; callers
// dispatch one action at a time.
type Store struct {
	engine    *game.Engine
	state     *game.GameState
	rng       *rand.Rand
	metrics   metrics.Collector
	listeners []Listener
	logger    zerolog.Logger
}

func NewStore(engine *game.Engine, options ...Option) *Store {
	if engine == nil {
		engine = game.NewEngine()
	}
	s := &Store{ // Default values
		engine:  engine,
		state:   game.NewGameState(game.PlayerA),
		metrics: metrics.NewDummyCollector(),
		logger:  log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(newSeed()))
	}
	s.logger = s.logger.With().Str("component", "store").Logger()
	return s
}

// State returns a copy of the current state.
func (s *Store) State() *game.GameState {
	return s.state.Copy()
}

// Subscribe registers l to be called after every accepted action.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Dispatch applies action to the current state. A StartGame with Seed 0 gets
// a seed from the store's source. Rejected actions leave the state as is.
func (s *Store) Dispatch(action game.Action) game.Result {
	if start, ok := action.(game.StartGame); ok && start.Seed == 0 {
		start.Seed = s.rng.Uint64()
		action = start
	}

	before := s.state
	result := s.engine.Apply(before, action)
	if start, ok := action.(game.StartGame); ok && result.Accepted() {
		s.metrics.Start(start.StartingPlayer)
	}
	s.metrics.Observe(before, action, result)
	if !result.Accepted() {
		return result
	}

	s.state = result.State
	for _, l := range s.listeners {
		l(Update{Action: action, State: s.state.Copy()})
	}
	return result
}

// DispatchAll applies actions in order and returns the first rejection.
func (s *Store) DispatchAll(actions ...game.Action) error {
	for _, a := range actions {
		if res := s.Dispatch(a); !res.Accepted() {
			return res.Err()
		}
	}
	return nil
}

// Metrics returns the store's collector.
func (s *Store) Metrics() metrics.Collector {
	return s.metrics
}
