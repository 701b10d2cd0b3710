package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/metrics"
	"github.com/fkhayef/eatnsplit/internal/split"
)

// Common errors
var (
	ErrNoSelection = errors.New("no friend selected")
	ErrAddFormOpen = errors.New("add friend form is open")
)

// Service drives the friends list, the add friend form and the split bill
// form. All methods are safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	registry *friend.Registry
	form     *split.Form
	adding   bool

	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService creates a new session service in the idle state
func NewService(registry *friend.Registry, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		form:     split.NewForm(),
		metrics:  m,
		logger:   logger,
	}
}

// State returns the current state of the session
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

// Snapshot returns a consistent copy of the whole session
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:       s.state(),
		AddFormOpen: s.adding,
		Friends:     s.registry.Friends(),
	}
	if f, ok := s.registry.CurrentSelection(); ok {
		snap.Selected = &f
		if !s.adding {
			view := s.formView(false)
			snap.Form = &view
		}
	}
	return snap
}

// Friends returns all friends in insertion order
func (s *Service) Friends() []friend.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Friends()
}

// ToggleAddForm opens or closes the add friend form. The selection is kept,
// so closing the form returns to the split of the selected friend.
func (s *Service) ToggleAddForm() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adding = !s.adding

	state := s.state()
	s.logger.Debug("Add friend form toggled", "mode", state.Mode)
	return state
}

// AddFriend adds a friend and closes the add friend form. The form stays
// open when the input is rejected. The selection is left alone.
func (s *Service) AddFriend(name, imageTemplate string) (friend.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.registry.AddFriend(name, imageTemplate)
	if err != nil {
		s.logger.Warn("Friend rejected", "name", name, "error", err)
		return friend.Friend{}, err
	}

	s.adding = false
	s.metrics.IncrementFriendsAdded()
	s.logger.Info("Friend added", "id", f.ID, "name", f.Name)

	return f, nil
}

// SelectFriend toggles the selection of the friend with the given id and
// closes the add friend form. The split form starts over on every change.
func (s *Service) SelectFriend(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.registry.Get(id)
	if err != nil {
		return s.state(), err
	}

	s.adding = false
	sel := s.registry.Select(f)
	s.form.Reset()
	s.metrics.IncrementSelectionsToggled()

	s.logger.Debug("Friend selection toggled", "id", id, "selected", sel.Active())
	return s.state(), nil
}

// Form returns the split form of the selected friend
func (s *Service) Form() (FormView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.splitting(); err != nil {
		return FormView{}, err
	}
	return s.formView(false), nil
}

// UpdateSplit changes the split form fields in the order bill, payer share,
// payer. A payer share above the bill is dropped and flagged in the result.
func (s *Service) UpdateSplit(update SplitUpdate) (FormView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.splitting(); err != nil {
		return FormView{}, err
	}

	return s.applyUpdate(update)
}

// SubmitSplit applies the split form to the selected friend's balance.
// An incomplete form is a no-op and reports Applied == false.
func (s *Service) SubmitSplit() (SplitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submit()
}

// SplitBill fills the split form with update and submits it
func (s *Service) SplitBill(update SplitUpdate) (SplitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.splitting(); err != nil {
		return SplitResult{}, err
	}
	if _, err := s.applyUpdate(update); err != nil {
		return SplitResult{}, err
	}

	return s.submit()
}

func (s *Service) state() State {
	if s.adding {
		return State{Mode: ModeAdding}
	}
	if sel := s.registry.Selection(); sel.Active() {
		return State{Mode: ModeSplitting, FriendID: sel.FriendID}
	}
	return State{Mode: ModeIdle}
}

// splitting reports why the split form is not in use, if it is not
func (s *Service) splitting() error {
	if !s.registry.Selection().Active() {
		return ErrNoSelection
	}
	if s.adding {
		return ErrAddFormOpen
	}
	return nil
}

func (s *Service) applyUpdate(update SplitUpdate) (FormView, error) {
	if update.Payer != nil && !update.Payer.Valid() {
		return FormView{}, split.ErrInvalidPayer
	}

	if update.Bill != nil {
		s.form.SetBill(*update.Bill)
	}

	rejected := false
	if update.PayerShare != nil && !s.form.SetPayerShare(*update.PayerShare) {
		rejected = true
		s.metrics.IncrementPayerShareRejected()
		s.logger.Debug("Payer share above bill ignored", "payer_share", *update.PayerShare)
	}

	if update.Payer != nil {
		if err := s.form.SetPayer(*update.Payer); err != nil {
			return FormView{}, err
		}
	}

	return s.formView(rejected), nil
}

func (s *Service) submit() (SplitResult, error) {
	if err := s.splitting(); err != nil {
		return SplitResult{}, err
	}
	sel := s.registry.Selection()

	var updated friend.Friend
	applied, delta, err := s.form.Submit(func(delta float64) error {
		f, err := s.registry.ApplyBalanceDelta(sel.FriendID, delta)
		updated = f
		return err
	})
	if err != nil {
		s.metrics.ObserveSplit(metrics.OutcomeFailed)
		s.logger.Error("Failed to apply split", "friend_id", sel.FriendID, "delta", delta, "error", err)
		return SplitResult{}, err
	}

	if !applied {
		s.metrics.ObserveSplit(metrics.OutcomeNoop)
		current, _ := s.registry.CurrentSelection()
		return SplitResult{Friend: current}, nil
	}

	s.metrics.ObserveSplit(metrics.OutcomeApplied)
	s.logger.Info("Bill split",
		"friend_id", updated.ID,
		"delta", delta,
		"balance", updated.Balance,
	)

	return SplitResult{Applied: true, Delta: delta, Friend: updated}, nil
}

func (s *Service) formView(rejected bool) FormView {
	view := FormView{
		FriendShare:        s.form.FriendShare(),
		Payer:              s.form.Payer(),
		PayerShareRejected: rejected,
	}
	if bill, ok := s.form.Bill(); ok {
		view.Bill = &bill
	}
	if share, ok := s.form.PayerShare(); ok {
		view.PayerShare = &share
	}
	return view
}
