package scan

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// SelectServices presents an interactive multi-select UI for choosing which services to audit
func SelectServices(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name).Selected(true)
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select services to audit (all selected by default)").
				Description("space: toggle, enter: confirm, /: filter").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return selected, nil
}
