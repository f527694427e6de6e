package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"habitflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model, err := tui.NewModel(ctx.Store, ctx.Config.UserID)
	if err != nil {
		return fmt.Errorf("failed to start dashboard: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with an error: %w", err)
	}
	return nil
}
