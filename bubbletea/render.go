package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codemotion"
)

// renderFrame draws the plan as of the current timeline state. During the
// positioning and pause phases added tokens are held back as blank space of
// the same width, so existing tokens already sit at their final positions;
// during the adding phase they appear one by one in stagger order.
func (m Model) renderFrame() string {
	phase := codemotion.PhaseComplete
	revealed := m.plan.AddedCount
	if m.run != nil && !m.done {
		phase = m.run.Phase()
		revealed = m.run.RevealedCount()
	}

	rank := addedRanks(m.plan.Tokens)
	lineNum := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.LineNumber.Foreground))

	var b strings.Builder
	for i, line := range m.plan.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lineNum.Render(fmt.Sprintf("%3d ", line.Number)))
		for _, tok := range line.Tokens {
			b.WriteString(m.renderToken(tok, phase, revealed, rank))
		}
	}
	return b.String()
}

func (m Model) renderToken(tok codemotion.AnnotatedToken, phase codemotion.Phase, revealed int, rank map[int]int) string {
	if tok.Status == codemotion.StatusAdded {
		visible := phase == codemotion.PhaseComplete ||
			(phase == codemotion.PhaseAdding && rank[tok.NewIndex] < revealed)
		if !visible {
			return strings.Repeat(" ", lipgloss.Width(tok.Content))
		}
	}

	pair := m.styles.ForType(tok.Type)
	switch {
	case tok.Highlighted:
		pair = m.styles.Highlighted
	case tok.Status == codemotion.StatusAdded:
		pair.Background = m.styles.Added.Background
	}

	style := lipgloss.NewStyle()
	if pair.Foreground != "" {
		style = style.Foreground(lipgloss.Color(pair.Foreground))
	}
	if pair.Background != "" {
		style = style.Background(lipgloss.Color(pair.Background))
	}
	return style.Render(tok.Content)
}

// addedRanks maps each added token's new-sequence index to its 0-based
// reveal rank. Line parts split from one token share a NewIndex and so
// reveal together.
func addedRanks(tokens []codemotion.AnnotatedToken) map[int]int {
	ranks := make(map[int]int)
	n := 0
	for _, tok := range tokens {
		if tok.Status == codemotion.StatusAdded && tok.NewIndex != codemotion.NoIndex {
			ranks[tok.NewIndex] = n
			n++
		}
	}
	return ranks
}

func (m Model) statusLine() string {
	phase := "static"
	switch {
	case m.done:
		phase = codemotion.PhaseComplete.String()
	case m.run != nil:
		phase = m.run.Phase().String()
	}
	help := "q quit"
	if !m.plan.Bypassed {
		help = "r replay · q quit"
	}
	return fmt.Sprintf("%s · %s · %s", m.title, phase, help)
}
