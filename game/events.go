package game

// EventKind names something observers may want to give feedback for
type EventKind int

const (
	EventDeal EventKind = iota
	EventDraw
	EventRecycle
	EventPickUp
	EventDrop
	EventCancel
)

var eventNames = []string{"Deal", "Draw", "Recycle", "PickUp", "Drop", "Cancel"}

func (k EventKind) String() string {
	return eventNames[k]
}

// Cue is the feedback sound an event maps to
type Cue int

const (
	CueNone Cue = iota
	CueHigh
	CueLow
)

var cueNames = []string{"", "high-tick", "low-tick"}

func (c Cue) String() string {
	return cueNames[c]
}

// Event carries no payload beyond its kind
type Event struct {
	Kind EventKind
}

// Cue returns the feedback cue for the event: taking cards is high, putting them down is low
func (e Event) Cue() Cue {
	switch e.Kind {
	case EventDraw, EventPickUp:
		return CueHigh
	case EventRecycle, EventDrop, EventCancel:
		return CueLow
	}
	return CueNone
}
