package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for wishmaker",
		Long:  `Display detailed help for all wishmaker commands, flags and keys.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), helpText)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wishmaker %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

const helpText = `
█   █ █ ▄▀▀ █ █ █▄ ▄█ ▄▀▄ █ ▄▀ █▀▀ █▀▄
█ █ █ █ ▀▀▄ █▀█ █ ▀ █ █▀█ █▀▄  █▀▀ █▀▄
 ▀ ▀  ▀ ▀▀  ▀ ▀ ▀   ▀ ▀ ▀ ▀  ▀ ▀▀▀ ▀ ▀

wishmaker - terminal background color picker

COMMANDS:

  wishmaker               Open the picker
    -c, --color           Initial color (#RRGGBB)
    --no-ui               Print the initial color and exit

    Keys:
      ↑/↓ k/j       Select slider
      ←/→ h/l       Adjust slider
      H/L           Fine adjust
      r             Random color
      t             Show/hide sliders
      # or /        Type a hex code, enter to apply, esc to cancel
      ?             More keys
      q             Quit

  decode <hex>            Show the channels of a hex color
    --json                JSON output

  random                  Print a random color
    --seed                Reproducible color
    --json                JSON output

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:
  --config                Config file (default ~/.wishmaker/config.yaml)
  --log-file              Write logs to this file
  --log-level             debug|info|warn|error

`
