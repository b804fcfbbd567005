package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Run starts the interactive list and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, svc Service, logger zerolog.Logger) error {
	p := tea.NewProgram(New(ctx, svc, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
