package gamemaster

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/joebags99/kingdoms-castles/game"
)

// RollStartingPlayer rolls a d6: even gives player A the first turn, odd
// gives it to player B.
func (s *Store) RollStartingPlayer() (game.Player, int) {
	roll := s.rng.Intn(6) + 1
	if roll%2 == 0 {
		return game.PlayerA, roll
	}
	return game.PlayerB, roll
}

// newSeed reads a seed from crypto/rand, falling back to the clock.
func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
