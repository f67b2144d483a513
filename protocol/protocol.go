package protocol

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// inbound pointer input
	PointerMove
	PointerDown
	// inbound table commands
	Tap
	Draw
	State
	NewGame
	// outbound only
	Deal
	Error
)

var CmdNames = map[Cmd]string{
	Null:        "Null",
	PointerMove: "PointerMove",
	PointerDown: "PointerDown",
	Tap:         "Tap",
	Draw:        "Draw",
	State:       "State",
	NewGame:     "NewGame",
	Deal:        "Deal",
	Error:       "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":        Null,
	"PointerMove": PointerMove,
	"PointerDown": PointerDown,
	"Tap":         Tap,
	"Draw":        Draw,
	"State":       State,
	"NewGame":     NewGame,
	"Deal":        Deal,
	"Error":       Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// Inbound reports whether a client may send the command
func (c Cmd) Inbound() bool {
	return c >= PointerMove && c <= NewGame
}
