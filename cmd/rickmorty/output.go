package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/rickmorty/internal/export"
	"github.com/ytget/rickmorty/internal/model"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	idStyle    = lipgloss.NewStyle().Faint(true).Width(5).Align(lipgloss.Right)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea"))
)

// statusStyle colours a status with the same palette as the GUI dot.
func statusStyle(status model.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(status.Color()))
}

func renderStatus(status model.Status) string {
	return statusStyle(status).Render("● " + status.Normalize().String())
}

// printCharacterTable writes one line per character:
// id, name, status, species and last known location.
func printCharacterTable(w io.Writer, characters []model.Character) {
	nameWidth := 0
	for _, c := range characters {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}
	name := nameStyle.Width(nameWidth + 2)

	for _, c := range characters {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render("#"+strconv.Itoa(c.ID)), "  ",
			name.Render(c.Name),
			lipgloss.NewStyle().Width(12).Render(renderStatus(c.Status)),
			c.Species, " · ", c.Location.Name,
		))
	}
}

// printCharacterDetail writes the sheet lines in the same order as the PDF.
// The line labelled statusLabel gets the status colour.
func printCharacterDetail(w io.Writer, c model.Character, lines []export.Line, statusLabel string) {
	fmt.Fprintln(w, titleStyle.Render(c.Name))
	for _, l := range lines {
		value := l.Value
		if l.Label == statusLabel {
			value = renderStatus(c.Status)
		}
		fmt.Fprintln(w, labelStyle.Render(l.Label+":")+value)
	}
}
