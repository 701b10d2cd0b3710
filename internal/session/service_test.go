package session

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/metrics"
	"github.com/fkhayef/eatnsplit/internal/split"
	"github.com/fkhayef/eatnsplit/pkg/logging"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	metrics *metrics.Metrics
	umer    friend.Friend
	alisa   friend.Friend
}

func (s *ServiceSuite) SetupTest() {
	registry := friend.NewRegistry(friend.NewSequenceGenerator(1))
	s.Require().NoError(registry.Seed(friend.DefaultSeed()...))

	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewService(registry, s.metrics, logging.Discard())

	friends := s.service.Friends()
	s.umer, s.alisa = friends[0], friends[1]
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestInitialState() {
	s.Equal(State{Mode: ModeIdle}, s.service.State())

	snap := s.service.Snapshot()
	s.False(snap.AddFormOpen)
	s.Nil(snap.Selected)
	s.Nil(snap.Form)
	s.Len(snap.Friends, 3)
}

func (s *ServiceSuite) TestAddFormTransitions() {
	s.Run("idle to adding and back", func() {
		s.Equal(ModeAdding, s.service.ToggleAddForm().Mode)
		s.Equal(ModeIdle, s.service.ToggleAddForm().Mode)
	})

	s.Run("opening the add form keeps the selection", func() {
		_, err := s.service.SelectFriend(s.umer.ID)
		s.Require().NoError(err)
		_, err = s.service.UpdateSplit(SplitUpdate{Bill: ptr(60)})
		s.Require().NoError(err)

		s.Equal(State{Mode: ModeAdding}, s.service.ToggleAddForm())

		snap := s.service.Snapshot()
		s.Require().NotNil(snap.Selected)
		s.Equal(s.umer.ID, snap.Selected.ID)
		s.Nil(snap.Form)

		_, err = s.service.Form()
		s.ErrorIs(err, ErrAddFormOpen)
		_, err = s.service.SubmitSplit()
		s.ErrorIs(err, ErrAddFormOpen)
	})

	s.Run("closing the add form returns to the split", func() {
		s.Equal(State{Mode: ModeSplitting, FriendID: s.umer.ID}, s.service.ToggleAddForm())

		view, err := s.service.Form()
		s.Require().NoError(err)
		s.Require().NotNil(view.Bill)
		s.Equal(60.0, *view.Bill)
	})

	s.Run("selecting the kept friend from the add form toggles it off", func() {
		s.service.ToggleAddForm()

		state, err := s.service.SelectFriend(s.umer.ID)
		s.Require().NoError(err)
		s.Equal(State{Mode: ModeIdle}, state)
		s.Nil(s.service.Snapshot().Selected)
	})

	s.Run("submitting closes the add form", func() {
		s.service.ToggleAddForm()

		f, err := s.service.AddFriend("Sara", friend.DefaultImageTemplate)
		s.Require().NoError(err)
		s.Zero(f.Balance)
		s.Equal(State{Mode: ModeIdle}, s.service.State())
		s.Len(s.service.Friends(), 4)
	})

	s.Run("rejected input keeps the add form open", func() {
		s.service.ToggleAddForm()

		_, err := s.service.AddFriend("", friend.DefaultImageTemplate)
		s.Require().ErrorIs(err, friend.ErrValidation)
		s.Equal(ModeAdding, s.service.State().Mode)
		s.Len(s.service.Friends(), 4)
	})

	s.Equal(1.0, testutil.ToFloat64(s.metrics.FriendsAdded))
}

func (s *ServiceSuite) TestSelectTransitions() {
	s.Run("selecting enters splitting", func() {
		state, err := s.service.SelectFriend(s.umer.ID)
		s.Require().NoError(err)
		s.Equal(State{Mode: ModeSplitting, FriendID: s.umer.ID}, state)
	})

	s.Run("selecting another friend switches and resets the form", func() {
		_, err := s.service.UpdateSplit(SplitUpdate{Bill: ptr(100)})
		s.Require().NoError(err)

		state, err := s.service.SelectFriend(s.alisa.ID)
		s.Require().NoError(err)
		s.Equal(s.alisa.ID, state.FriendID)

		view, err := s.service.Form()
		s.Require().NoError(err)
		s.Nil(view.Bill)
		s.Equal(split.PayerUser, view.Payer)
	})

	s.Run("selecting the same friend again returns to idle", func() {
		state, err := s.service.SelectFriend(s.alisa.ID)
		s.Require().NoError(err)
		s.Equal(State{Mode: ModeIdle}, state)
	})

	s.Run("selecting closes the add form", func() {
		s.service.ToggleAddForm()

		state, err := s.service.SelectFriend(s.umer.ID)
		s.Require().NoError(err)
		s.Equal(ModeSplitting, state.Mode)
		s.False(s.service.Snapshot().AddFormOpen)
	})

	s.Run("unknown friend is not found", func() {
		before := s.service.State()
		_, err := s.service.SelectFriend("missing")
		s.Require().ErrorIs(err, friend.ErrNotFound)
		s.Equal(before, s.service.State())
	})
}

func (s *ServiceSuite) TestSplitBill() {
	s.Run("requires a selection", func() {
		_, err := s.service.SplitBill(SplitUpdate{Bill: ptr(100), PayerShare: ptr(30)})
		s.Require().ErrorIs(err, ErrNoSelection)

		_, err = s.service.Form()
		s.Require().ErrorIs(err, ErrNoSelection)

		_, err = s.service.SubmitSplit()
		s.Require().ErrorIs(err, ErrNoSelection)
	})

	s.Run("user pays, friend owes their share", func() {
		_, err := s.service.SelectFriend(s.umer.ID)
		s.Require().NoError(err)

		result, err := s.service.SplitBill(SplitUpdate{Bill: ptr(100), PayerShare: ptr(30), Payer: payer(split.PayerUser)})
		s.Require().NoError(err)
		s.True(result.Applied)
		s.Equal(70.0, result.Delta)
		s.Equal(63.0, result.Friend.Balance)
	})

	s.Run("friend pays, user owes their share", func() {
		result, err := s.service.SplitBill(SplitUpdate{Payer: payer(split.PayerFriend)})
		s.Require().NoError(err)
		s.True(result.Applied)
		s.Equal(-30.0, result.Delta)
		s.Equal(33.0, result.Friend.Balance)
	})

	s.Run("other friends are untouched", func() {
		friends := s.service.Friends()
		s.Equal(s.alisa, friends[1])
	})

	s.Run("zero bill is a no-op", func() {
		_, err := s.service.SelectFriend(s.alisa.ID)
		s.Require().NoError(err)

		result, err := s.service.SplitBill(SplitUpdate{Bill: ptr(0), PayerShare: ptr(0)})
		s.Require().NoError(err)
		s.False(result.Applied)
		s.Equal(20.0, result.Friend.Balance)
		s.Equal(20.0, s.service.Friends()[1].Balance)
	})

	s.Run("zero payer share is a no-op", func() {
		user := split.PayerUser
		result, err := s.service.SplitBill(SplitUpdate{Bill: ptr(40), PayerShare: ptr(0), Payer: &user})
		s.Require().NoError(err)
		s.False(result.Applied)
		s.Zero(result.Delta)
		s.Equal(20.0, s.service.Friends()[1].Balance)
	})

	s.Equal(2.0, testutil.ToFloat64(s.metrics.SplitsSubmitted.WithLabelValues(metrics.OutcomeApplied)))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.SplitsSubmitted.WithLabelValues(metrics.OutcomeNoop)))
}

func (s *ServiceSuite) TestUpdateSplit() {
	_, err := s.service.SelectFriend(s.umer.ID)
	s.Require().NoError(err)

	s.Run("derives the friend share", func() {
		view, err := s.service.UpdateSplit(SplitUpdate{Bill: ptr(50), PayerShare: ptr(20)})
		s.Require().NoError(err)
		s.Equal(30.0, view.FriendShare)
		s.False(view.PayerShareRejected)
	})

	s.Run("overpayment keeps the last valid share", func() {
		view, err := s.service.UpdateSplit(SplitUpdate{PayerShare: ptr(80)})
		s.Require().NoError(err)
		s.True(view.PayerShareRejected)
		s.Require().NotNil(view.PayerShare)
		s.Equal(20.0, *view.PayerShare)
	})

	s.Run("invalid payer is rejected before any change", func() {
		bad := split.Payer("BOTH")
		_, err := s.service.UpdateSplit(SplitUpdate{Bill: ptr(10), Payer: &bad})
		s.Require().ErrorIs(err, split.ErrInvalidPayer)

		view, err := s.service.Form()
		s.Require().NoError(err)
		s.Equal(50.0, *view.Bill)
	})

	s.Equal(1.0, testutil.ToFloat64(s.metrics.PayerShareRejected))
}

func ptr(v float64) *float64 {
	return &v
}

func payer(p split.Payer) *split.Payer {
	return &p
}
