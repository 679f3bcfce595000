package game

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine applies actions to game states. It holds only configuration, so one
// Engine can serve any number of games.
type Engine struct {
	rules   Rules
	catalog []Card
	logger  zerolog.Logger
}

func WithRules(rules Rules) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithCatalog sets the card list decks are built from on START_GAME.
func WithCatalog(catalog []Card) Option {
	return func(e *Engine) {
		e.catalog = append([]Card(nil), catalog...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		rules:  NewStandardRules(),
		logger: log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("component", "engine").Logger()
	return e
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Apply runs one action against gs. The input state is never modified: an
// accepted action yields a new state, a rejected one returns gs itself along
// with the reason.
func (e *Engine) Apply(gs *GameState, action Action) Result {
	if gs == nil {
		gs = NewGameState(PlayerA)
	}

	next, rej := e.apply(gs, action)
	if rej != nil {
		e.logger.Warn().
			Str("action", kindOf(action)).
			Str("player", string(gs.CurrentPlayer)).
			Stringer("phase", gs.CurrentPhase).
			Str("code", string(rej.Code)).
			Str("category", string(rej.Category())).
			Msg(rej.Message)
		return Result{State: gs, Rejection: rej}
	}

	e.logger.Debug().
		Str("action", kindOf(action)).
		Str("player", string(next.CurrentPlayer)).
		Stringer("phase", next.CurrentPhase).
		Msg("action applied")
	return Result{State: next}
}

func (e *Engine) apply(gs *GameState, action Action) (*GameState, *Rejection) {
	switch a := action.(type) {
	case ResetGame:
		return e.resetGame(a)
	case StartGame:
		return e.startGame(gs, a)
	case SetBoard:
		return e.setBoard(gs, a)
	case ClaimCapital:
		return e.claimCapital(gs, a)
	case ToggleGenerator:
		return e.toggleGenerator(gs, a)
	case CompleteSetup:
		return e.completeSetup(gs)
	case DeployUnit:
		return e.deployUnit(gs, a)
	case SelectUnit:
		return e.selectUnit(gs, a)
	case MoveUnit:
		return e.moveUnit(gs, a)
	case AttackUnit:
		return e.attackUnit(gs, a)
	case NextPhase, EndPhase:
		return e.nextPhase(gs)
	case DrawCard:
		return e.drawCard(gs)
	case SelectCard:
		return e.selectCard(gs, a)
	case PlayCard:
		return e.playCard(gs, a)
	default:
		return nil, reject(CodeUnknownAction, "unsupported action %T", action)
	}
}

func kindOf(action Action) string {
	if action == nil {
		return "<nil>"
	}
	return string(action.Kind())
}
