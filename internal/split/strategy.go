package split

import "fmt"

// Strategy turns a complete bill into the balance delta for the friend
type Strategy interface {
	// Delta computes the change to the friend's balance
	Delta(bill, payerShare float64) float64

	// Payer returns who pays the bill under this strategy
	Payer() Payer
}

// UserPaysStrategy: the user fronted the bill, the friend owes their share
type UserPaysStrategy struct{}

func (s *UserPaysStrategy) Payer() Payer {
	return PayerUser
}

func (s *UserPaysStrategy) Delta(bill, payerShare float64) float64 {
	return bill - payerShare
}

// FriendPaysStrategy: the friend fronted the bill, the user owes their share
type FriendPaysStrategy struct{}

func (s *FriendPaysStrategy) Payer() Payer {
	return PayerFriend
}

func (s *FriendPaysStrategy) Delta(bill, payerShare float64) float64 {
	return -payerShare
}

// StrategyFor returns the strategy for the given payer
func StrategyFor(p Payer) (Strategy, error) {
	switch p {
	case PayerUser:
		return &UserPaysStrategy{}, nil
	case PayerFriend:
		return &FriendPaysStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPayer, p)
	}
}
