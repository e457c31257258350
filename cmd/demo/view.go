package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	termStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	segStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusRunning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	statusPaused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	elapsed := time.Since(m.startTime).Round(time.Second)
	titleBar := fmt.Sprintf("%s  %s  %s  %s",
		titleStyle.Render("keygram demo"),
		status,
		labelStyle.Render("Uptime:")+valueStyle.Render(elapsed.String()),
		helpStyle.Render("[q]uit [space]pause [r]eset"))

	leftBox := boxStyle.Width(40).Height(8).Render(m.renderStats())
	rightBox := boxStyle.Width(36).Height(8).Render(m.renderDistribution())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)

	bottomBox := boxStyle.Width(78).Render(m.renderRecent())

	return titleBar + "\n" + topRow + "\n" + bottomBox + "\n"
}

func (m model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Statistics"))
	sb.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Inputs:"), valueStyle.Render(fmt.Sprintf("%d", m.totalInputs))),
		fmt.Sprintf("%s %s/s", labelStyle.Render("Rate:"), valueStyle.Render(fmt.Sprintf("%.0f", m.inputsPerSec))),
		fmt.Sprintf("%s %s", labelStyle.Render("Unmatched:"), valueStyle.Render(fmt.Sprintf("%d", m.unmatched))),
		fmt.Sprintf("%s %s", labelStyle.Render("Terms:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Terms))),
		fmt.Sprintf("%s %s", labelStyle.Render("Keyword slots:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Keywords))),
		fmt.Sprintf("%s %s", labelStyle.Render("Vector bound:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.VectorBound))),
	}
	sb.WriteString(strings.Join(rows, "\n"))
	return sb.String()
}

func (m model) renderDistribution() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Top terms"))
	sb.WriteString("\n\n")

	type count struct {
		term string
		n    int
	}
	counts := make([]count, 0, len(m.termCounts))
	for term, n := range m.termCounts {
		counts = append(counts, count{term, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].term < counts[j].term
	})

	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			termStyle.Render(fmt.Sprintf("%-18s", c.term)),
			valueStyle.Render(fmt.Sprintf("%d", c.n))))
	}
	return sb.String()
}

func (m model) renderRecent() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Recent classifications"))
	sb.WriteString("\n\n")

	if len(m.recent) == 0 {
		sb.WriteString(labelStyle.Render("waiting for inputs..."))
		return sb.String()
	}

	for _, c := range m.recent {
		input := c.input
		if len(input) > 30 {
			input = input[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			inputStyle.Render(fmt.Sprintf("%-30s", input)),
			arrowStyle.Render("->"),
			termStyle.Render(fmt.Sprintf("%-12s", c.term)),
			segStyle.Render(c.seg)))
	}
	return sb.String()
}
