package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/metrics"
	"github.com/fkhayef/eatnsplit/internal/session"
	"github.com/fkhayef/eatnsplit/internal/split"
	"github.com/fkhayef/eatnsplit/pkg/logging"
)

func newTestModel(t *testing.T) (Model, *session.Service) {
	t.Helper()

	registry := friend.NewRegistry(friend.NewSequenceGenerator(1))
	require.NoError(t, registry.Seed(friend.DefaultSeed()...))

	svc := session.NewService(registry, metrics.New(prometheus.NewRegistry()), logging.Discard())
	return New(svc, friend.DefaultImageTemplate), svc
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func press(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestSplitBillFlow(t *testing.T) {
	m, svc := newTestModel(t)

	var model tea.Model = m
	model = press(model, key(tea.KeyDown), key(tea.KeyEnter))
	require.Equal(t, session.State{Mode: session.ModeSplitting, FriendID: "933372"}, svc.State())
	require.Contains(t, model.View(), "Split a bill with Alisa")

	model = press(model, runes("100")...)
	model = press(model, key(tea.KeyTab))
	model = press(model, runes("30")...)

	view, err := svc.Form()
	require.NoError(t, err)
	require.Equal(t, 100.0, *view.Bill)
	require.Equal(t, 30.0, *view.PayerShare)

	t.Run("overpayment keeps the previous text", func(t *testing.T) {
		model = press(model, runes("0")...)
		require.Equal(t, "30", model.(Model).shareInput.Value())

		view, err := svc.Form()
		require.NoError(t, err)
		require.Equal(t, 30.0, *view.PayerShare)
	})

	t.Run("letters are ignored", func(t *testing.T) {
		model = press(model, runes("x")...)
		require.Equal(t, "30", model.(Model).shareInput.Value())
	})

	t.Run("submit applies the friend share", func(t *testing.T) {
		model = press(model, key(tea.KeyEnter))
		require.Equal(t, 90.0, svc.Friends()[1].Balance)
		require.Contains(t, model.View(), "Alisa owes you 90$")
	})

	t.Run("friend paying applies the user share", func(t *testing.T) {
		model = press(model, key(tea.KeyTab), key(tea.KeyRight))

		view, err := svc.Form()
		require.NoError(t, err)
		require.Equal(t, split.PayerFriend, view.Payer)

		model = press(model, key(tea.KeyEnter))
		require.Equal(t, 60.0, svc.Friends()[1].Balance)
	})

	t.Run("selecting again closes the split", func(t *testing.T) {
		model = press(model, key(tea.KeyEsc), key(tea.KeyEnter))
		require.Equal(t, session.ModeIdle, svc.State().Mode)
	})
}

func TestAddFriendFlow(t *testing.T) {
	m, svc := newTestModel(t)

	var model tea.Model = m
	model = press(model, runes("a")...)
	require.Equal(t, session.ModeAdding, svc.State().Mode)
	require.Equal(t, friend.DefaultImageTemplate, model.(Model).imageInput.Value())

	t.Run("empty name keeps the form open", func(t *testing.T) {
		model = press(model, key(tea.KeyEnter))
		require.Equal(t, session.ModeAdding, svc.State().Mode)
		require.Error(t, model.(Model).err)
	})

	t.Run("adds the friend and closes the form", func(t *testing.T) {
		model = press(model, runes("Sara")...)
		model = press(model, key(tea.KeyEnter))

		require.Equal(t, session.ModeIdle, svc.State().Mode)
		friends := svc.Friends()
		require.Len(t, friends, 4)
		require.Equal(t, "Sara", friends[3].Name)
		require.Equal(t, "https://i.pravatar.cc/48?u=1", friends[3].Image)
		require.Equal(t, 3, model.(Model).cursor)
		require.Contains(t, model.View(), "You and Sara are even")
	})
}

func TestRenderFriendsEmpty(t *testing.T) {
	require.Contains(t, RenderFriends(nil, 0, ""), "No friends yet")
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("")
	require.NoError(t, err)
	require.Zero(t, v)

	v, err = parseAmount("12.5")
	require.NoError(t, err)
	require.Equal(t, 12.5, v)

	_, err = parseAmount("abc")
	require.Error(t, err)

	_, err = parseAmount("Inf")
	require.Error(t, err)
}

func TestAddFormKeepsSplit(t *testing.T) {
	m, svc := newTestModel(t)

	var model tea.Model = m
	model = press(model, key(tea.KeyDown), key(tea.KeyEnter))
	model = press(model, runes("100")...)
	model = press(model, key(tea.KeyEsc))

	model = press(model, runes("a")...)
	require.Equal(t, session.ModeAdding, svc.State().Mode)
	require.NotContains(t, model.View(), "Split a bill with Alisa")

	model = press(model, key(tea.KeyEsc))
	require.Equal(t, session.State{Mode: session.ModeSplitting, FriendID: "933372"}, svc.State())
	require.Equal(t, "100", model.(Model).billInput.Value())
	require.Contains(t, model.View(), "Split a bill with Alisa")
}
