package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// SelectCommands asks the user to pick zero or more commands and returns
// their 0-based indices in c. An empty result means nothing was picked.
func SelectCommands(c catalog.Catalog, accessible bool) ([]int, error) {
	var picked []int
	sel := huh.NewMultiSelect[int]().
		Title("Select tasks to execute:").
		Description("space to toggle, enter to confirm, nothing selected runs everything").
		Options(selectOptions(c)...).
		Value(&picked)

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(accessible)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return picked, nil
}

func selectOptions(c catalog.Catalog) []huh.Option[int] {
	opts := make([]huh.Option[int], len(c))
	for i, cmd := range c {
		opts[i] = huh.NewOption(cmd.Label(), i)
	}
	return opts
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(title string, accessible bool) (bool, error) {
	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithTheme(huh.ThemeCharm()).WithAccessible(accessible).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
