package metrics

import (
	"time"

	"github.com/joebags99/kingdoms-castles/game"
)

// ActionMetric describes one dispatched action.
type ActionMetric struct {
	Step     int
	Player   string // Player who was acting
	Phase    string // Phase the action was dispatched in
	Action   string
	Accepted bool
	Code     string // Rejection code, "" when accepted
}

type GameMetric struct {
	StartingPlayer string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalActions   int
	Rejected       int
	TurnsA         int
	TurnsB         int
	GoldA          int
	GoldB          int
	UnitsA         int
	UnitsB         int
}

type Collector interface {
	Start(startingPlayer game.Player)
	Observe(before *game.GameState, action game.Action, result game.Result)
	Actions() []ActionMetric
	Complete(final *game.GameState) GameMetric
}

// collector is not safe for concurrent use; the store feeds it one action at a time.
type collector struct {
	startingPlayer game.Player
	startTime      time.Time
	steps          int
	rejected       int
	actions        []ActionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer game.Player) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
	m.steps = 0
	m.rejected = 0
	m.actions = nil
}

func (m *collector) Observe(before *game.GameState, action game.Action, result game.Result) {
	m.steps++
	am := ActionMetric{
		Step:     m.steps,
		Player:   string(before.CurrentPlayer),
		Phase:    before.CurrentPhase.String(),
		Accepted: result.Accepted(),
	}
	if action != nil {
		am.Action = string(action.Kind())
	}
	if !result.Accepted() {
		m.rejected++
		am.Code = string(result.Rejection.Code)
	}
	m.actions = append(m.actions, am)
}

func (m *collector) Actions() []ActionMetric {
	return append([]ActionMetric(nil), m.actions...)
}

func (m *collector) Complete(final *game.GameState) GameMetric {
	end := time.Now()
	gm := GameMetric{
		StartingPlayer: string(m.startingPlayer),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalActions:   m.steps,
		Rejected:       m.rejected,
	}
	if final != nil {
		gm.TurnsA = final.TurnNumber.A
		gm.TurnsB = final.TurnNumber.B
		gm.GoldA = final.Gold(game.PlayerA)
		gm.GoldB = final.Gold(game.PlayerB)
		gm.UnitsA = len(final.UnitsOf(game.PlayerA))
		gm.UnitsB = len(final.UnitsOf(game.PlayerB))
	}
	return gm
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer game.Player)                  {}
func (m *dummyCollector) Observe(*game.GameState, game.Action, game.Result) {}
func (m *dummyCollector) Actions() []ActionMetric                           { return nil }
func (m *dummyCollector) Complete(final *game.GameState) GameMetric         { return GameMetric{} }
