package game

// State is the state of the pick-up/drop machine
type State int

const (
	Idle State = iota
	Holding
)

var stateNames = []string{"Idle", "Holding"}

func (s State) String() string {
	return stateNames[s]
}

// Outcome is the result of a pointer-down or draw.
// Illegal moves are not errors: they come back as OutcomeRejected
// or OutcomeNoTarget with the table unchanged.
type Outcome int

const (
	OutcomeNoTarget Outcome = iota
	OutcomeRejected
	OutcomeSuppressed
	OutcomeDrew
	OutcomeRecycled
	OutcomePickedUp
	OutcomePlaced
	OutcomeCancelled
)

var outcomeNames = []string{
	"NoTarget",
	"Rejected",
	"Suppressed",
	"Drew",
	"Recycled",
	"PickedUp",
	"Placed",
	"Cancelled",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Changed reports whether the outcome mutated the table
func (o Outcome) Changed() bool {
	return o >= OutcomeDrew
}
