package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for fittrack",
		Long:  `Display detailed help for all fittrack commands and flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), helpText)
		},
	}
}

const helpText = `
███████╗██╗████████╗████████╗██████╗  █████╗  ██████╗██╗  ██╗
██╔════╝██║╚══██╔══╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
█████╗  ██║   ██║      ██║   ██████╔╝███████║██║     █████╔╝
██╔══╝  ██║   ██║      ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
██║     ██║   ██║      ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
╚═╝     ╚═╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝

fittrack - terminal workout tracker

COMMANDS:

  (no command)              Browse routines interactively
    ↑/↓           Navigate routines
    enter         Start a workout
    a             Add an exercise
    d             Delete (asks for confirmation)
    esc/q         Quit

  routine ls                List routines
  routine show <name>       Show exercises of a routine
  routine new <name> [spec] Create a routine, optionally with a first exercise
  routine add <name> [spec] Add an exercise (interactive form without spec)
    --no-ui                 Never open the form
  routine rm-exercise <name> <n>
                            Remove exercise number n
  routine rename <old> <new>
  routine delete <name>     Delete every routine with this name
    --yes                   Confirm

    Quick syntax:
      80kg, 135lb   Weight (pounds are converted to kg)
      5x3           5 reps for 3 sets
      reps:5 sets:3 Reps and sets as tags

    Example:
      fittrack routine add "Push Day" Bench Press 80kg 5x3

  workout <routine>         Run a workout with stopwatch and rest timer
    --rest 90s              Rest between sets (default from config, 60s)
    --no-ui                 Print the plan only

    Keys:
      space         Start / finish and log
      +/-           Log or undo a set on the selected exercise
      ↑/↓           Select exercise
      r             Start or skip rest
      p, [, ]       Pause rest, -15s, +15s
      esc/q         Leave without logging

  history                   Show completed workouts
  history raw               Print the history log as stored
  history clear --yes       Delete the history log
    --journal               Also clear the journal

  stats                     Weekly minutes per routine from the journal
    --week YYYY-MM-DD       Another week
    --recent N              Last N sessions

  paths                     Show data file locations
  version                   Show version
  help                      Show this help

GLOBAL FLAGS:
  --config <file>           Config file (default <data dir>/fittrack.yaml)
  -v, --verbose             Log file operations to stderr

ENVIRONMENT:
  FITTRACK_DATA_DIR, FITTRACK_LAYOUT (cwd|src|home),
  FITTRACK_REST_SECONDS, FITTRACK_LOG_LEVEL

`
