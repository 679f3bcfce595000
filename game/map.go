package game

import (
	"errors"
	"fmt"
)

// BorderlandRows is the height of the neutral band between the two territories.
const BorderlandRows = 2

// ErrHexNotFound reports a coordinate that is not part of the board.
var ErrHexNotFound = errors.New("hex not found")

// Zone is the territorial band a hex belongs to.
type Zone string

const (
	ZoneA       Zone = "A"
	ZoneNeutral Zone = "Neutral"
	ZoneB       Zone = "B"
)

// ZoneFor returns the home zone of a player.
func ZoneFor(p Player) Zone {
	switch p {
	case PlayerA:
		return ZoneA
	case PlayerB:
		return ZoneB
	default:
		return ZoneNeutral
	}
}

// Owner returns the player owning the zone, or false for the borderlands.
func (z Zone) Owner() (Player, bool) {
	switch z {
	case ZoneA:
		return PlayerA, true
	case ZoneB:
		return PlayerB, true
	default:
		return NoPlayer, false
	}
}

// Coord is an axial hex coordinate.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Q, c.R)
}

// neighborDirections are the six axial offsets, east first and counter-clockwise.
var neighborDirections = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Hex is one cell of the board. CapitalOwner is NoPlayer when the hex is not
// part of a capital.
type Hex struct {
	ID               string `json:"id"`
	Q                int    `json:"q"`
	R                int    `json:"r"`
	Zone             Zone   `json:"zone"`
	CapitalOwner     Player `json:"capitalOwner,omitempty"`
	GenerateResource bool   `json:"generateResource,omitempty"`
}

func (h Hex) Coord() Coord {
	return Coord{Q: h.Q, R: h.R}
}

// Capital returns the owner of the capital this hex belongs to.
func (h Hex) Capital() (Player, bool) {
	return h.CapitalOwner, h.CapitalOwner.Valid()
}

// HexID is the stable identifier of the hex at (q, r).
func HexID(q, r int) string {
	return Coord{Q: q, R: r}.String()
}

// GenerateBoard creates a width x height board split into three horizontal
// bands: player A's rows on top, two borderland rows, player B's rows below.
func GenerateBoard(width, height int) []Hex {
	if width <= 0 || height <= 0 {
		return []Hex{}
	}
	playerRows := (height - BorderlandRows) / 2
	if playerRows < 0 {
		playerRows = 0
	}

	hexes := make([]Hex, 0, width*height)
	for r := 0; r < height; r++ {
		zone := ZoneB
		switch {
		case r < playerRows:
			zone = ZoneA
		case r < playerRows+BorderlandRows:
			zone = ZoneNeutral
		}
		for q := 0; q < width; q++ {
			hexes = append(hexes, Hex{
				ID:   HexID(q, r),
				Q:    q,
				R:    r,
				Zone: zone,
			})
		}
	}
	return hexes
}

// AdjacentHexes returns the six axial neighbors of (q, r). Some may lie off
// the board; callers filter against the board they hold.
func AdjacentHexes(q, r int) [6]Coord {
	var out [6]Coord
	for i, dir := range neighborDirections {
		out[i] = Coord{Q: q + dir.Q, R: r + dir.R}
	}
	return out
}

// IsAdjacent reports whether a and b are axial neighbors.
func IsAdjacent(a, b Coord) bool {
	return Distance(a, b) == 1
}

// Distance is the hex step distance between a and b.
func Distance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindHexByCoordinates does a linear lookup and returns the hex, its index,
// and whether it was found.
func FindHexByCoordinates(board []Hex, q, r int) (Hex, int, bool) {
	for i, h := range board {
		if h.Q == q && h.R == r {
			return h, i, true
		}
	}
	return Hex{}, -1, false
}

// ZoneAt returns the zone of the hex at (q, r).
func ZoneAt(board []Hex, q, r int) (Zone, bool) {
	h, _, ok := FindHexByCoordinates(board, q, r)
	if !ok {
		return "", false
	}
	return h.Zone, true
}

// CapitalOwnerAt returns the capital owner of the hex at (q, r). It reports
// false both for off-board coordinates and for hexes outside any capital.
func CapitalOwnerAt(board []Hex, q, r int) (Player, bool) {
	h, _, ok := FindHexByCoordinates(board, q, r)
	if !ok {
		return NoPlayer, false
	}
	return h.Capital()
}

// CapitalInZone reports whether a capital centered at (q, r) would sit in the
// owner's own territory.
func CapitalInZone(board []Hex, owner Player, q, r int) bool {
	zone, ok := ZoneAt(board, q, r)
	return ok && zone == ZoneFor(owner)
}

// PlaceCapital marks the hex at (q, r) and its on-board neighbors as owner's
// capital and returns the updated copy of the board. It does not check the
// zone; see CapitalInZone.
func PlaceCapital(board []Hex, owner Player, q, r int) ([]Hex, error) {
	if !owner.Valid() {
		return board, fmt.Errorf("place capital for %q: invalid player", owner)
	}
	_, center, ok := FindHexByCoordinates(board, q, r)
	if !ok {
		return board, fmt.Errorf("place capital at (%d, %d): %w", q, r, ErrHexNotFound)
	}

	newBoard := copyBoard(board)
	newBoard[center].CapitalOwner = owner
	for _, pos := range AdjacentHexes(q, r) {
		if _, i, ok := FindHexByCoordinates(newBoard, pos.Q, pos.R); ok {
			newBoard[i].CapitalOwner = owner
		}
	}
	return newBoard, nil
}

// ToggleResourceGeneration flips the generator flag of the hex at (q, r) if it
// belongs to a capital. Any other coordinate leaves the board unchanged.
func ToggleResourceGeneration(board []Hex, q, r int) []Hex {
	h, i, ok := FindHexByCoordinates(board, q, r)
	if !ok {
		return board
	}
	if _, isCapital := h.Capital(); !isCapital {
		return board
	}
	newBoard := copyBoard(board)
	newBoard[i].GenerateResource = !h.GenerateResource
	return newBoard
}

// HasCapital reports whether any hex belongs to the player's capital.
func HasCapital(board []Hex, p Player) bool {
	for _, h := range board {
		if h.CapitalOwner == p {
			return true
		}
	}
	return false
}

// GeneratorCount counts the player's capital hexes flagged to produce gold.
func GeneratorCount(board []Hex, p Player) int {
	n := 0
	for _, h := range board {
		if h.CapitalOwner == p && h.GenerateResource {
			n++
		}
	}
	return n
}

func copyBoard(board []Hex) []Hex {
	out := make([]Hex, len(board))
	copy(out, board)
	return out
}
