package config

// StateID identifies a combatant's action state.
type StateID int

const (
	Idle StateID = iota
	Attacking
	Blocking
	Dashing
	SpecialAttacking
	Hitstun
)

// StateToName maps StateID to a short lowercase name.
var StateToName = map[StateID]string{
	Idle:             "idle",
	Attacking:        "attacking",
	Blocking:         "blocking",
	Dashing:          "dashing",
	SpecialAttacking: "special",
	Hitstun:          "hitstun",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// SpecialVariant is the flavour of a special attack, picked from the recent
// directional sequence.
type SpecialVariant int

const (
	EnergyBlast SpecialVariant = iota
	Tornado
	Firewave
	Iceblast
)

// SpecialSequences maps an exact directional sequence to its variant.
// Anything else is an EnergyBlast.
var SpecialSequences = map[string]SpecialVariant{
	"121": Tornado,
	"212": Firewave,
	"112": Iceblast,
}

var specialVariantNames = map[SpecialVariant]string{
	EnergyBlast: "energyblast",
	Tornado:     "tornado",
	Firewave:    "firewave",
	Iceblast:    "iceblast",
}

func (v SpecialVariant) String() string {
	if name, ok := specialVariantNames[v]; ok {
		return name
	}
	return "unknown"
}

// MoveToken is a directional token recorded by the combo tracker.
type MoveToken int

const (
	MoveLeft  MoveToken = 1
	MoveRight MoveToken = 2
)

// Side identifies one of the two combatants.
type Side int

const (
	SideNone Side = 0
	Side1    Side = 1
	Side2    Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	}
	return SideNone
}

// Index returns the zero-based slot of a side (0 or 1).
func (s Side) Index() int {
	if s == Side2 {
		return 1
	}
	return 0
}

func (s Side) String() string {
	switch s {
	case Side1:
		return "p1"
	case Side2:
		return "p2"
	}
	return "none"
}

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting   MatchStateID = iota // Waiting for Start
	MatchStateCountdown                     // Pre-round countdown (3, 2, 1)
	MatchStatePlaying                       // Active round
	MatchStateFinished                      // A combatant reached zero health
)

func (m MatchStateID) String() string {
	switch m {
	case MatchStateWaiting:
		return "waiting"
	case MatchStateCountdown:
		return "countdown"
	case MatchStatePlaying:
		return "playing"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}
