package game

// Player identifies one of the two sides. NoPlayer is the explicit "none" value
// used wherever a hex or selection has no owner.
type Player string

const (
	PlayerA  Player = "A"
	PlayerB  Player = "B"
	NoPlayer Player = ""
)

// Players lists both sides in seating order.
var Players = [2]Player{PlayerA, PlayerB}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// ByPlayer holds one value per side.
type ByPlayer[T any] struct {
	A T `json:"A"`
	B T `json:"B"`
}

func (bp ByPlayer[T]) Get(p Player) T {
	if p == PlayerB {
		return bp.B
	}
	return bp.A
}

func (bp *ByPlayer[T]) Set(p Player, v T) {
	if p == PlayerB {
		bp.B = v
		return
	}
	bp.A = v
}

// Resources is a player's treasury.
type Resources struct {
	Gold int `json:"gold"`
}
