package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nobunaga0709/sticker-habit/internal/jobs"
	"github.com/nobunaga0709/sticker-habit/internal/lockfile"
	"github.com/nobunaga0709/sticker-habit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// One interactive session at a time; the state file has no
	// cross-process merge.
	lock, err := lockfile.Acquire(ctx.Provider.Path() + ".lock")
	if err != nil {
		return err
	}
	defer lock.Release()

	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	scheduler := jobs.NewScheduler(store)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start ticket scheduler: %w", err)
	}
	defer scheduler.Stop()

	p := tea.NewProgram(tui.NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
