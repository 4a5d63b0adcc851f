package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mbowen/daybook/internal/backup"
	"github.com/mbowen/daybook/internal/cli"
	"github.com/mbowen/daybook/internal/config"
	"github.com/mbowen/daybook/internal/logging"
	"github.com/mbowen/daybook/internal/state"
	"github.com/mbowen/daybook/internal/storage"
	"github.com/mbowen/daybook/internal/undo"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/daybook/config.yaml"`
	Store   string `help:"Store file path; overrides config." type:"path"`
	Yes     bool   `short:"y" help:"Answer yes to every confirmation prompt."`

	Init cli.InitCmd `cmd:"" help:"Initialize daybook storage."`
	Day  cli.DayCmd  `cmd:"" help:"Show everything attached to a day." default:"1"`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new goal."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit a goal."`
		List   cli.HabitListCmd   `cmd:"" help:"List goals with streaks."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Toggle a goal's done mark for a date."`
		Pin    cli.HabitPinCmd    `cmd:"" help:"Toggle a goal's pinned flag."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a goal and its history."`
	} `cmd:"" help:"Manage goals."`

	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit a task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   cli.TaskDoneCmd   `cmd:"" help:"Toggle a task's done mark."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`

	Journal struct {
		Write cli.JournalWriteCmd `cmd:"" help:"Write a day's journal entry."`
		Show  cli.JournalShowCmd  `cmd:"" help:"Show a day's journal entry."`
	} `cmd:"" help:"Manage the daily journal."`

	Class struct {
		Add    cli.ClassAddCmd    `cmd:"" help:"Add a class session."`
		Edit   cli.ClassEditCmd   `cmd:"" help:"Edit a class session."`
		List   cli.ClassListCmd   `cmd:"" help:"List class sessions."`
		Delete cli.ClassDeleteCmd `cmd:"" help:"Delete a class session."`
	} `cmd:"" help:"Manage the class schedule."`

	Vacation struct {
		Schedule cli.VacationScheduleCmd `cmd:"" help:"Schedule a vacation period."`
		Status   cli.VacationStatusCmd   `cmd:"" help:"Show the active vacation."`
		History  cli.VacationHistoryCmd  `cmd:"" help:"List past vacations."`
		Archive  cli.VacationArchiveCmd  `cmd:"" help:"Archive the active vacation now."`
	} `cmd:"" help:"Manage vacation mode."`

	Month    cli.MonthCmd    `cmd:"" help:"Show a month's completion summary."`
	Insights cli.InsightsCmd `cmd:"" help:"Show summary insights."`
	Undo     cli.UndoCmd     `cmd:"" help:"Restore the last deleted goal or task."`

	Export cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Replace all data from an exported file."`
	Reset  cli.ResetCmd  `cmd:"" help:"Erase all data and start fresh."`

	Backup struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Write a snapshot of the current data."`
		List   cli.BackupListCmd   `cmd:"" help:"List snapshots."`
	} `cmd:"" help:"Manage snapshots."`

	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Personal productivity tracker: goals, tasks, journal and class schedule"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Store != "" {
		cfg.StorePath = CLI.Store
	}

	logger := logging.New(cfg.Log)
	defer logger.Sync() //nolint:errcheck

	if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider, err := storage.Open(cfg.Backend, cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close() //nolint:errcheck

	store, err := state.NewStore(provider, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	state.NewVacationMonitor(store, nil, logger).Attach()

	appCtx := &cli.Context{
		Store:    store,
		Undo:     undo.NewWithTimer(time.Duration(cfg.UndoWindowSec)*time.Second, nil),
		Provider: provider,
		Backups:  backup.NewManager(cfg.StorePath),
		Logger:   logger,
		Now:      time.Now,
		Yes:      CLI.Yes,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
