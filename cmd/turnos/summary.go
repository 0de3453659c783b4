package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boxStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func printSummary(w io.Writer, res *models.Result, dest string) {
	fmt.Fprintln(w, boxStyle.Render(summaryText(res, dest)))
}

func summaryText(res *models.Result, dest string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(res.BookName))
	b.WriteString("\n")

	for _, s := range res.Sheets {
		if s.Status != models.SheetProcessed {
			continue
		}
		line := fmt.Sprintf("%-8s %3d rows  %2d days  %s", s.Name, s.Rows, s.DatedColumns,
			countStyle.Render(fmt.Sprintf("%d appointments", s.Appointments)))
		if s.CellErrors > 0 {
			line += "  " + warnStyle.Render(fmt.Sprintf("%d cell errors", s.CellErrors))
		}
		b.WriteString(line + "\n")
	}

	skipped := len(res.Sheets) - res.Count(models.SheetProcessed)
	if skipped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d sheets skipped (%d missing, %d empty, %d undated, %d unreadable)",
			skipped,
			res.Count(models.SheetMissing),
			res.Count(models.SheetEmpty),
			res.Count(models.SheetUndated),
			res.Count(models.SheetUnreadable))))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total: %s -> %s",
		countStyle.Render(fmt.Sprintf("%d appointments", len(res.Appointments))), dest))
	return b.String()
}
