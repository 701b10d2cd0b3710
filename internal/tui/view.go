package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/session"
	"github.com/fkhayef/eatnsplit/internal/split"
)

// View implements tea.Model
func (m Model) View() string {
	snap := m.service.Snapshot()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Eat-'n-Split"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Split bills with your friends"))
	b.WriteString("\n\n")

	b.WriteString(RenderFriends(snap.Friends, m.cursor, snap.State.FriendID))

	switch snap.State.Mode {
	case session.ModeAdding:
		b.WriteString(m.renderAddForm())
	case session.ModeSplitting:
		if snap.Selected != nil && snap.Form != nil {
			b.WriteString(m.renderSplitForm(*snap.Selected, *snap.Form))
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(DimmedStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help(snap.State.Mode)))
	return b.String()
}

// RenderFriends renders the friends table with the cursor and selection
func RenderFriends(friends []friend.Friend, cursor int, selectedID string) string {
	if len(friends) == 0 {
		return DimmedStyle.Render("No friends yet. Press a to add one.") + "\n"
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"", "Name", "Balance"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i, f := range friends {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		if f.ID == selectedID {
			marker += "*"
		}
		table.Append([]string{marker, f.Name, f.Status()})
	}
	table.Render()

	// the first line is the header, rows follow in friend order
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(DimmedStyle.Render(line))
			b.WriteString("\n")
			continue
		}
		b.WriteString(rowStyle(friends, i-1, cursor, selectedID).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func rowStyle(friends []friend.Friend, idx, cursor int, selectedID string) lipgloss.Style {
	if idx >= len(friends) {
		return DimmedStyle
	}
	f := friends[idx]
	switch {
	case f.ID == selectedID:
		return SelectedStyle
	case idx == cursor:
		return CursorStyle
	case f.State() == friend.BalanceEven:
		return EvenStyle
	default:
		return OweStyle
	}
}

func (m Model) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.label("Friend name", m.addFocus == addName))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.label("Image URL", m.addFocus == addImage))
	b.WriteString(m.imageInput.View())

	return FormStyle.Render(b.String()) + "\n"
}

func (m Model) renderSplitForm(f friend.Friend, view session.FormView) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Split a bill with %s", f.Name)))
	b.WriteString("\n\n")

	b.WriteString(m.label("Bill value", m.focus == fieldBill))
	b.WriteString(m.billInput.View())
	b.WriteString("\n")

	b.WriteString(m.label("Your expense", m.focus == fieldShare))
	b.WriteString(m.shareInput.View())
	b.WriteString("\n")

	b.WriteString(m.label(fmt.Sprintf("%s's expense", f.Name), false))
	if view.Bill != nil {
		b.WriteString(DimmedStyle.Render(formatAmount(view.FriendShare)))
	}
	b.WriteString("\n")

	payer := "You"
	if view.Payer == split.PayerFriend {
		payer = f.Name
	}
	b.WriteString(m.label("Who is paying the bill", m.focus == fieldPayer))
	b.WriteString(fmt.Sprintf("< %s >", payer))

	return FormStyle.Render(b.String()) + "\n"
}

func (m Model) label(text string, focused bool) string {
	if focused {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m Model) help(mode session.Mode) string {
	switch {
	case mode == session.ModeAdding:
		return "tab: next field • enter: add • esc: close"
	case mode == session.ModeSplitting && m.focus != fieldList:
		return "tab: next field • ←/→: who pays • enter: split bill • esc: back to list"
	default:
		return "↑/↓: move • enter: select/close • a: add friend • q: quit"
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
