package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wishmaker/internal/color"
	"github.com/balkashynov/wishmaker/internal/config"
	"github.com/balkashynov/wishmaker/internal/logging"
	"github.com/balkashynov/wishmaker/internal/screen"
	"github.com/balkashynov/wishmaker/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// runPickerTUI is swapped out in tests
var runPickerTUI = tui.RunPickerTUI

// NewRootCmd builds the wishmaker command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishmaker",
		Short: "A terminal background color picker",
		Long: `wishmaker fills the terminal with a color you pick in three ways:
RGB sliders, a random color, or a hex code.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPicker,
	}

	cmd.Flags().StringP("color", "c", "", "Initial color as #RRGGBB (overrides config)")
	cmd.Flags().Bool("no-ui", false, "Print the initial color and exit")
	cmd.PersistentFlags().String("config", "", "Config file (default ~/.wishmaker/config.yaml)")
	cmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newRandomCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.SetHelpCommand(newHelpCmd())

	return cmd
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadSettings reads the config file and applies flag overrides
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cfg.InitialColor = f.Value.String()
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	initial, err := cfg.Initial()
	if err != nil {
		return err
	}

	scr := screen.New(color.NewState(initial), screen.WithLogger(logger))
	defer scr.Close()
	logger.Info("picker started", "initial", scr.Hex(), "version", version)

	noUI, _ := cmd.Flags().GetBool("no-ui")
	if noUI {
		fmt.Fprintln(cmd.OutOrStdout(), scr.Hex())
		return nil
	}

	hex, err := runPickerTUI(scr, tui.PickerOptions{
		Step:     cfg.Step,
		FineStep: cfg.FineStep,
	})
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	logger.Info("picker closed", "final", hex)
	fmt.Fprintf(cmd.OutOrStdout(), "🎨 Final color: %s\n", hex)
	return nil
}
