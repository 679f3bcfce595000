package game

// Phase is one segment of a player's turn. The order of the constants is the
// order of the cycle.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseResource
	PhaseDraw
	PhaseDev1
	PhaseMovement
	PhaseCombat
	PhaseDev2
	PhaseEnd

	numPhases = int(PhaseEnd) + 1
)

var phaseNames = map[Phase]string{
	PhaseSetup:    "Setup",
	PhaseResource: "Resource",
	PhaseDraw:     "Draw",
	PhaseDev1:     "Dev1",
	PhaseMovement: "Movement",
	PhaseCombat:   "Combat",
	PhaseDev2:     "Dev2",
	PhaseEnd:      "End",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Next returns the phase that follows p. Once setup is complete the cycle
// skips Setup and wraps from End straight to Resource.
func (p Phase) Next(setupComplete bool) Phase {
	next := Phase((int(p) + 1) % numPhases)
	if next == PhaseSetup && setupComplete {
		return PhaseResource
	}
	return next
}

// IsDevelopment reports whether p is one of the two development phases.
func (p Phase) IsDevelopment() bool {
	return p == PhaseDev1 || p == PhaseDev2
}
