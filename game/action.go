package game

// ActionKind is the canonical name of an action.
type ActionKind string

const (
	KindResetGame       ActionKind = "RESET_GAME"
	KindStartGame       ActionKind = "START_GAME"
	KindSetBoard        ActionKind = "SET_BOARD"
	KindClaimCapital    ActionKind = "CLAIM_CAPITAL"
	KindToggleGenerator ActionKind = "TOGGLE_GENERATOR"
	KindCompleteSetup   ActionKind = "COMPLETE_SETUP"
	KindDeployUnit      ActionKind = "DEPLOY_UNIT"
	KindSelectUnit      ActionKind = "SELECT_UNIT"
	KindMoveUnit        ActionKind = "MOVE_UNIT"
	KindAttackUnit      ActionKind = "ATTACK_UNIT"
	KindNextPhase       ActionKind = "NEXT_PHASE"
	KindEndPhase        ActionKind = "END_PHASE"
	KindDrawCard        ActionKind = "DRAW_CARD"
	KindSelectCard      ActionKind = "SELECT_CARD"
	KindPlayCard        ActionKind = "PLAY_CARD"
)

// Action is the closed set of inputs the engine accepts. Only types in this
// package implement it.
type Action interface {
	Kind() ActionKind
	isAction()
}

// ResetGame returns to the initial Setup state. An empty StartingPlayer means A.
type ResetGame struct {
	StartingPlayer Player
}

// StartGame builds both decks and marks the game started. Seed drives the
// deck shuffle. A gamemaster.Store treats Seed 0 as unset and replaces it
// with one from its own source, so 0 cannot be requested through a store.
type StartGame struct {
	StartingPlayer Player
	Seed           uint64
}

// SetBoard replaces the board verbatim.
type SetBoard struct {
	Board []Hex
}

// ClaimCapital puts Owner's capital centered at (Q, R). Setup phase only.
type ClaimCapital struct {
	Owner Player
	Q, R  int
}

// ToggleGenerator flips the generator flag on a capital hex. Setup phase only.
type ToggleGenerator struct {
	Q, R int
}

type CompleteSetup struct{}

// DeployUnit buys a unit for the current player at (Q, R).
type DeployUnit struct {
	Q, R   int
	AP, HP int
}

// SelectUnit sets the selected unit. An empty UnitID clears the selection.
type SelectUnit struct {
	UnitID string
}

type MoveUnit struct {
	UnitID string
	Q, R   int
}

type AttackUnit struct {
	AttackerID string
	DefenderID string
}

type NextPhase struct{}

// EndPhase is an alias of NextPhase.
type EndPhase struct{}

type DrawCard struct{}

// SelectCard sets the selected card. An empty CardID clears the selection.
type SelectCard struct {
	CardID string
}

// PlayCard plays a card from the current player's hand. Unit cards need Target.
type PlayCard struct {
	CardID string
	Target *Coord
}

func (ResetGame) Kind() ActionKind       { return KindResetGame }
func (StartGame) Kind() ActionKind       { return KindStartGame }
func (SetBoard) Kind() ActionKind        { return KindSetBoard }
func (ClaimCapital) Kind() ActionKind    { return KindClaimCapital }
func (ToggleGenerator) Kind() ActionKind { return KindToggleGenerator }
func (CompleteSetup) Kind() ActionKind   { return KindCompleteSetup }
func (DeployUnit) Kind() ActionKind      { return KindDeployUnit }
func (SelectUnit) Kind() ActionKind      { return KindSelectUnit }
func (MoveUnit) Kind() ActionKind        { return KindMoveUnit }
func (AttackUnit) Kind() ActionKind      { return KindAttackUnit }
func (NextPhase) Kind() ActionKind       { return KindNextPhase }
func (EndPhase) Kind() ActionKind        { return KindEndPhase }
func (DrawCard) Kind() ActionKind        { return KindDrawCard }
func (SelectCard) Kind() ActionKind      { return KindSelectCard }
func (PlayCard) Kind() ActionKind        { return KindPlayCard }

func (ResetGame) isAction()       {}
func (StartGame) isAction()       {}
func (SetBoard) isAction()        {}
func (ClaimCapital) isAction()    {}
func (ToggleGenerator) isAction() {}
func (CompleteSetup) isAction()   {}
func (DeployUnit) isAction()      {}
func (SelectUnit) isAction()      {}
func (MoveUnit) isAction()        {}
func (AttackUnit) isAction()      {}
func (NextPhase) isAction()       {}
func (EndPhase) isAction()        {}
func (DrawCard) isAction()        {}
func (SelectCard) isAction()      {}
func (PlayCard) isAction()        {}
