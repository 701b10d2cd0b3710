package split

import (
	"errors"
	"fmt"
	"strings"
)

// Payer identifies who paid the bill
type Payer string

const (
	PayerUser   Payer = "USER"
	PayerFriend Payer = "FRIEND"
)

var ErrInvalidPayer = errors.New("payer must be USER or FRIEND")

// Valid reports whether p is one of the known payers
func (p Payer) Valid() bool {
	return p == PayerUser || p == PayerFriend
}

// ParsePayer converts user input ("user", "Friend", ...) to a Payer
func ParsePayer(s string) (Payer, error) {
	p := Payer(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPayer, s)
	}
	return p, nil
}
