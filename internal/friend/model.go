package friend

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultImageTemplate is the avatar service used when no image is given
const DefaultImageTemplate = "https://i.pravatar.cc/48"

// BalanceState describes who owes whom for a single friend
type BalanceState string

const (
	BalanceOwe  BalanceState = "owe"  // the user owes the friend
	BalanceOwed BalanceState = "owed" // the friend owes the user
	BalanceEven BalanceState = "even"
)

// Friend represents a friend and the running balance with them.
// Friends are values: the registry replaces a record on every balance
// change instead of mutating it.
type Friend struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Image   string  `json:"image" yaml:"image"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// State reports which side of the balance the friend is on
func (f Friend) State() BalanceState {
	switch {
	case f.Balance < 0:
		return BalanceOwe
	case f.Balance > 0:
		return BalanceOwed
	default:
		return BalanceEven
	}
}

// Status returns the balance sentence shown next to the friend
func (f Friend) Status() string {
	switch f.State() {
	case BalanceOwe:
		return fmt.Sprintf("You owe %s %s$", f.Name, formatAmount(math.Abs(f.Balance)))
	case BalanceOwed:
		return fmt.Sprintf("%s owes you %s$", f.Name, formatAmount(f.Balance))
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// withBalance returns a copy of the friend with delta added to the balance
func (f Friend) withBalance(delta float64) Friend {
	f.Balance += delta
	return f
}

// formatAmount prints the shortest representation of an amount (7, 7.5, 7.25)
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
