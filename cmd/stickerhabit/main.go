package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/cli"
	"github.com/nobunaga0709/sticker-habit/internal/logging"
	"github.com/nobunaga0709/sticker-habit/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"State file path." type:"path" default:"~/.config/stickerhabit/stickerhabit.db"`
	LogLevel string `help:"Log level (debug|info|warn|error)." default:"info"`

	Init  cli.InitCmd  `cmd:"" help:"Initialize stickerhabit storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit struct {
		Add  cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Rm   cli.HabitRemoveCmd `cmd:"" help:"Remove a habit and its history."`
	} `cmd:"" help:"Manage habits."`
	Done     cli.DoneCmd     `cmd:"" help:"Mark a habit done today, placing a sticker."`
	Gacha    cli.GachaCmd    `cmd:"" help:"Spend a ticket on a sticker draw."`
	Stickers cli.StickersCmd `cmd:"" help:"Show the sticker collection."`
	Day      cli.DayCmd      `cmd:"" help:"Show completions for a day."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the state file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the state file from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("stickerhabit"),
		kong.Description("Habit tracker with a sticker gacha: complete habits, win stickers, fill the calendar"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logFile := filepath.Join(filepath.Dir(CLI.Config), "stickerhabit.log")
	if closer, err := logging.Setup(logFile, CLI.LogLevel); err == nil {
		defer closer.Close()
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Provider: store,
		Catalog:  catalog.Default(),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
