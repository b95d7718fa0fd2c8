package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/wishmaker/internal/color"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Show the RGB channels of a hex color",
		Long: `Decode a hex color into normalized red, green and blue channels.

Examples:
  wishmaker decode "#FF5733"
  wishmaker decode ff5733 --json
  wishmaker decode FF          # short codes fill from the right: pure blue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Decode(args[0])
			if err != nil {
				return err
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			return printColor(cmd.OutOrStdout(), c, jsonOutput)
		},
	}

	cmd.Flags().Bool("json", false, "JSON output")
	return cmd
}
