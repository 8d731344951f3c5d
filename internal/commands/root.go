package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/config"
	"github.com/fancybaby404/FitTrack/internal/db"
	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	paths    config.Paths
	log      *slog.Logger
	routines *store.RoutineStore
	history  *store.HistoryLog
}

// setup resolves config and paths and opens the flat-file stores
func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.EnvFromOS()
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		defaults, err := config.Resolve(env)
		if err != nil {
			return err
		}
		configPath = filepath.Join(defaults.ConfigDir, config.ConfigFileName)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	paths, err := config.Resolve(cfg.Env(env))
	if err != nil {
		return err
	}

	level := cfg.SlogLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := config.EnsurePaths(paths); err != nil {
		return err
	}
	log.Debug("resolved paths", "config", configPath, "routines", paths.RoutinesFile, "history", paths.HistoryFile)

	a.cfg = cfg
	a.paths = paths
	a.log = log
	a.routines = store.NewRoutineStore(paths.RoutinesFile, log)
	a.history = store.NewHistoryLog(paths.HistoryFile, log)
	return nil
}

// openJournal opens the sqlite journal, or returns nil when it is disabled
func (a *app) openJournal() (*db.Journal, error) {
	if !a.cfg.JournalEnabled() {
		return nil, nil
	}
	j, err := db.Open(a.paths.JournalFile)
	if err != nil {
		return nil, err
	}
	a.log.Debug("opened journal", "path", a.paths.JournalFile)
	return j, nil
}

// NewRootCmd builds the fittrack command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fittrack",
		Short: "A terminal workout tracker",
		Long: `fittrack keeps your workout routines and history in plain text files.
Build routines, run workouts with a stopwatch and rest timer, and review your history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, a)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to fittrack.yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log file operations to stderr")

	rootCmd.AddCommand(newRoutineCmd(a))
	rootCmd.AddCommand(newWorkoutCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// No files are touched
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fittrack %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command and prints any error
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
	}
	return err
}

// describeError renders err as "<op> failed: <msg>"
func describeError(err error) string {
	var se *store.StoreError
	if errors.As(err, &se) {
		return fmt.Sprintf("%s failed: %s: %v", se.Op, se.Path, se.Err)
	}
	var fe *models.FormatError
	if errors.As(err, &fe) {
		return fmt.Sprintf("parse failed: %v", err)
	}
	return err.Error()
}
