package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/history"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(subtleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// CatalogTable renders c as a numbered table.
func CatalogTable(c catalog.Catalog) string {
	t := newTable("#", "Command", "Category", "Description")
	for i, cmd := range c {
		t.Row(strconv.Itoa(i+1), cmd.Label(), cmd.Category, cmd.Description)
	}
	return t.Render()
}

// RunsTable renders recorded runs, one row per command.
func RunsTable(runs []history.Run) string {
	t := newTable("Run", "Started", "Status", "Command", "Result", "Took")
	for _, run := range runs {
		status := run.Status
		if run.DryRun {
			status += " (dry-run)"
		}
		if len(run.Commands) == 0 {
			t.Row(strconv.FormatInt(run.ID, 10), run.StartedAt, status, "-", "", "")
			continue
		}
		for i, c := range run.Commands {
			id, started, st := "", "", ""
			if i == 0 {
				id, started, st = strconv.FormatInt(run.ID, 10), run.StartedAt, status
			}
			result := c.Status
			if c.Error.Valid {
				result = fmt.Sprintf("%s: %s", c.Status, c.Error.String)
			}
			t.Row(id, started, st, fmt.Sprintf("%d. %s", c.Position, c.Name), result, c.Duration.Round(time.Millisecond).String())
		}
	}
	return t.Render()
}
