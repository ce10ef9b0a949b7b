// Package picker implements the interactive recommendation selector
// used by recommend -i.
package picker

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/jakoblorz/toolscout/internal/models"
	"github.com/jakoblorz/toolscout/internal/tui"
)

// Flow presents scored recommendations as a multi-select form.
type Flow struct {
	theme *huh.Theme
}

// Result captures the entries the user picked. A nil Result means the
// user aborted.
type Result struct {
	Selected []*models.CatalogEntry
}

// NewFlow constructs a Flow with the default theme.
func NewFlow() *Flow {
	return &Flow{theme: tui.NewHuhTheme()}
}

// Run shows the selection form and returns the picked entries; returns
// nil result on user abort.
func (f *Flow) Run(results []models.ScoredEntry) (*Result, error) {
	if len(results) == 0 {
		return &Result{}, nil
	}

	selected := make([]string, 0, len(results))
	byID := make(map[string]*models.CatalogEntry, len(results))
	opts := make([]huh.Option[string], 0, len(results))
	for _, r := range results {
		key := optionKey(r.Item)
		byID[key] = r.Item
		opts = append(opts, huh.NewOption(optionLabel(r), key))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Recommended Tools").
			Description("Select the tools you want install instructions for."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	result := &Result{Selected: make([]*models.CatalogEntry, 0, len(selected))}
	for _, key := range selected {
		if entry, ok := byID[key]; ok {
			result.Selected = append(result.Selected, entry)
		}
	}
	return result, nil
}

// InstallInstructions renders one line per picked entry.
func InstallInstructions(entries []*models.CatalogEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch {
		case entry.Install.Command != "":
			lines = append(lines, fmt.Sprintf("%s: %s", entry.Name, entry.Install.Command))
		case entry.URL != "":
			lines = append(lines, fmt.Sprintf("%s: see %s", entry.Name, entry.URL))
		default:
			lines = append(lines, fmt.Sprintf("%s: manual install", entry.Name))
		}
	}
	return lines
}

func optionKey(entry *models.CatalogEntry) string {
	if entry.ID != "" {
		return entry.ID
	}
	return entry.Name
}

func optionLabel(r models.ScoredEntry) string {
	return fmt.Sprintf("%s (%s, %.2f)", r.Item.Name, r.Item.Type, r.Score)
}
