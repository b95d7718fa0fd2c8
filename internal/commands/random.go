package commands

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wishmaker/internal/color"
)

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []color.StateOption
			if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
				opts = append(opts, color.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}

			c := color.NewState(color.Color{}, opts...).Randomize()

			jsonOutput, _ := cmd.Flags().GetBool("json")
			return printColor(cmd.OutOrStdout(), c, jsonOutput)
		},
	}

	cmd.Flags().Bool("json", false, "JSON output")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible color (0 = random)")
	return cmd
}
