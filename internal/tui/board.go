package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikitosruban007/treebuddy/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, seed string, lang engine.Language, out io.Writer) error {
	m := newBoardModel(ctx, svc, seed, lang)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
