package session

import (
	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/split"
)

// Mode is the visible form of the session
type Mode string

const (
	ModeIdle      Mode = "IDLE"      // no form open
	ModeAdding    Mode = "ADDING"    // add friend form open
	ModeSplitting Mode = "SPLITTING" // split bill form open for FriendID
)

// State is the current position in the session state machine
type State struct {
	Mode     Mode
	FriendID string
}

// FormView is a read-only copy of the split form
type FormView struct {
	Bill        *float64
	PayerShare  *float64
	FriendShare float64
	Payer       split.Payer

	// PayerShareRejected is set when the last update tried to enter a payer
	// share above the bill
	PayerShareRejected bool
}

// SplitUpdate carries the split form fields to change; nil fields are kept
type SplitUpdate struct {
	Bill       *float64
	PayerShare *float64
	Payer      *split.Payer
}

// SplitResult is the outcome of submitting the split form
type SplitResult struct {
	Applied bool
	Delta   float64
	Friend  friend.Friend
}

// Snapshot captures everything a surface needs to render the session
type Snapshot struct {
	State       State
	AddFormOpen bool
	Friends     []friend.Friend
	Selected    *friend.Friend
	Form        *FormView // nil unless splitting
}
