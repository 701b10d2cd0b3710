package split

import "fmt"

// =============================================================================
// BILL FORM
// Holds the bill being split with the selected friend and turns it into a
// balance delta for that friend
// =============================================================================

// Form is the bill split form. Bill and payer share stay unset until the
// user enters them; the friend's share is always derived.
type Form struct {
	bill       *float64
	payerShare *float64
	payer      Payer
}

// NewForm returns an empty form where the user pays
func NewForm() *Form {
	return &Form{payer: PayerUser}
}

// Reset returns the form to its initial state
func (f *Form) Reset() {
	*f = Form{payer: PayerUser}
}

// SetBill stores the total bill amount
func (f *Form) SetBill(amount float64) {
	f.bill = &amount
}

// SetPayerShare stores what the user paid. An amount above the bill is
// rejected and the previous value kept; the return value reports acceptance.
func (f *Form) SetPayerShare(amount float64) bool {
	if amount > f.billValue() {
		return false
	}
	f.payerShare = &amount
	return true
}

// SetPayer changes who is paying the bill
func (f *Form) SetPayer(p Payer) error {
	if !p.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidPayer, p)
	}
	f.payer = p
	return nil
}

// Bill returns the bill amount and whether it was entered
func (f *Form) Bill() (float64, bool) {
	if f.bill == nil {
		return 0, false
	}
	return *f.bill, true
}

// PayerShare returns the user's share and whether it was entered
func (f *Form) PayerShare() (float64, bool) {
	if f.payerShare == nil {
		return 0, false
	}
	return *f.payerShare, true
}

// Payer returns who is paying the bill
func (f *Form) Payer() Payer {
	return f.payer
}

// FriendShare is the part of the bill the friend is responsible for
func (f *Form) FriendShare() float64 {
	if f.bill == nil {
		return 0
	}
	share, _ := f.PayerShare()
	return *f.bill - share
}

// Delta computes the balance change for the friend. It is not ready while
// the bill or the payer share is unset or zero.
func (f *Form) Delta() (float64, bool) {
	if f.bill == nil || *f.bill == 0 || f.payerShare == nil || *f.payerShare == 0 {
		return 0, false
	}

	strategy, err := StrategyFor(f.payer)
	if err != nil {
		return 0, false
	}
	return strategy.Delta(*f.bill, *f.payerShare), true
}

// Submit hands the delta to apply. An incomplete form is a no-op and
// reports applied == false without calling apply.
func (f *Form) Submit(apply func(delta float64) error) (applied bool, delta float64, err error) {
	delta, ok := f.Delta()
	if !ok {
		return false, 0, nil
	}

	if err := apply(delta); err != nil {
		return false, delta, err
	}
	return true, delta, nil
}

func (f *Form) billValue() float64 {
	v, _ := f.Bill()
	return v
}
