package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fkhayef/eatnsplit/internal/session"
	"github.com/fkhayef/eatnsplit/internal/split"
)

// field is the part of the screen receiving keys while a friend is selected
type field int

const (
	fieldList field = iota
	fieldBill
	fieldShare
	fieldPayer
)

// addField is the focused input of the add friend form
type addField int

const (
	addName addField = iota
	addImage
)

// Model is the main Bubbletea model. The session service owns all domain
// state; the model only keeps cursor, focus and raw input text.
type Model struct {
	service      *session.Service
	defaultImage string

	cursor   int
	focus    field
	addFocus addField

	nameInput  textinput.Model
	imageInput textinput.Model
	billInput  textinput.Model
	shareInput textinput.Model

	notice string
	err    error
	width  int
}

// New creates a new Model over the given session
func New(service *session.Service, defaultImage string) Model {
	name := textinput.New()
	name.Placeholder = "Friend name"
	name.CharLimit = 40
	name.Width = 30

	image := textinput.New()
	image.CharLimit = 200
	image.Width = 30

	bill := textinput.New()
	bill.Placeholder = "0"
	bill.CharLimit = 12
	bill.Width = 12

	share := textinput.New()
	share.Placeholder = "0"
	share.CharLimit = 12
	share.Width = 12

	return Model{
		service:      service,
		defaultImage: defaultImage,
		nameInput:    name,
		imageInput:   image,
		billInput:    bill,
		shareInput:   share,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input based on the session state
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.service.State().Mode {
	case session.ModeAdding:
		return m.handleAddKey(msg)
	case session.ModeSplitting:
		if m.focus != fieldList {
			return m.handleSplitKey(msg)
		}
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	friends := m.service.Friends()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(friends)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(friends) == 0 {
			return m, nil
		}
		state, err := m.service.SelectFriend(friends[m.cursor].ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.clearMessages()
		m.resetSplitInputs()
		if state.Mode == session.ModeSplitting {
			cmd := m.setFocus(fieldBill)
			return m, cmd
		}
		m.setFocus(fieldList)

	case "tab":
		if m.service.State().Mode == session.ModeSplitting {
			cmd := m.setFocus(fieldBill)
			return m, cmd
		}

	case "a":
		return m.toggleAddForm()
	}

	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.toggleAddForm()

	case "tab", "shift+tab", "up", "down":
		if m.addFocus == addName {
			m.addFocus = addImage
			m.nameInput.Blur()
			cmd := m.imageInput.Focus()
			return m, cmd
		}
		m.addFocus = addName
		m.imageInput.Blur()
		cmd := m.nameInput.Focus()
		return m, cmd

	case "enter":
		f, err := m.service.AddFriend(m.nameInput.Value(), m.imageInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.clearMessages()
		m.notice = fmt.Sprintf("Added %s", f.Name)
		m.cursor = len(m.service.Friends()) - 1
		m.nameInput.Blur()
		m.imageInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.addFocus == addName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSplitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(fieldList)
		return m, nil

	case "tab", "down":
		next := m.focus + 1
		if next > fieldPayer {
			next = fieldBill
		}
		cmd := m.setFocus(next)
		return m, cmd

	case "shift+tab", "up":
		prev := m.focus - 1
		if prev < fieldBill {
			prev = fieldPayer
		}
		cmd := m.setFocus(prev)
		return m, cmd

	case "enter":
		return m.submitSplit()
	}

	switch m.focus {
	case fieldPayer:
		switch msg.String() {
		case "left", "right", "h", "l", " ":
			return m.togglePayer()
		}
		return m, nil

	case fieldBill, fieldShare:
		return m.updateAmount(m.focus, msg)
	}

	return m, nil
}

// updateAmount forwards the key to an amount input and pushes the parsed
// value into the split form. Text that does not parse, or a payer share the
// form rejects, restores the previous text.
func (m Model) updateAmount(f field, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := &m.billInput
	if f == fieldShare {
		input = &m.shareInput
	}
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return m, cmd
	}

	v, err := parseAmount(input.Value())
	if err != nil {
		input.SetValue(before)
		return m, cmd
	}

	update := session.SplitUpdate{Bill: &v}
	if f == fieldShare {
		update = session.SplitUpdate{PayerShare: &v}
	}

	view, err := m.service.UpdateSplit(update)
	if err != nil {
		m.err = err
		return m, cmd
	}
	if view.PayerShareRejected {
		input.SetValue(before)
	}

	m.err = nil
	return m, cmd
}

func (m Model) togglePayer() (tea.Model, tea.Cmd) {
	view, err := m.service.Form()
	if err != nil {
		m.err = err
		return m, nil
	}

	next := split.PayerFriend
	if view.Payer == split.PayerFriend {
		next = split.PayerUser
	}
	if _, err := m.service.UpdateSplit(session.SplitUpdate{Payer: &next}); err != nil {
		m.err = err
	}
	return m, nil
}

func (m Model) submitSplit() (tea.Model, tea.Cmd) {
	result, err := m.service.SubmitSplit()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.clearMessages()
	if !result.Applied {
		m.notice = "Enter the bill and your expense first"
		return m, nil
	}
	m.notice = fmt.Sprintf("Split applied: %s", result.Friend.Status())
	return m, nil
}

func (m Model) toggleAddForm() (tea.Model, tea.Cmd) {
	state := m.service.ToggleAddForm()
	m.clearMessages()
	m.setFocus(fieldList)

	if state.Mode != session.ModeAdding {
		m.nameInput.Blur()
		m.imageInput.Blur()
		return m, nil
	}

	m.nameInput.SetValue("")
	m.imageInput.SetValue(m.defaultImage)
	m.imageInput.Blur()
	m.addFocus = addName
	cmd := m.nameInput.Focus()
	return m, cmd
}

// setFocus moves key focus within the split screen
func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.billInput.Blur()
	m.shareInput.Blur()

	switch f {
	case fieldBill:
		return m.billInput.Focus()
	case fieldShare:
		return m.shareInput.Focus()
	}
	return nil
}

func (m *Model) resetSplitInputs() {
	m.billInput.SetValue("")
	m.shareInput.SetValue("")
}

func (m *Model) clearMessages() {
	m.notice = ""
	m.err = nil
}

// parseAmount reads an amount the way the form field does: empty means zero
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("amount out of range: %s", s)
	}
	return v, nil
}
