package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/games/runner/player"
)

var (
	flagDefaults bool
	flagValidate string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the game configuration",
	Long: `Print the effective configuration as YAML, after the search order and
--difficulty have been applied.

Config search order:
  --config <path>
  ~/.arcade/configs/runner.yaml
  ./configs/runner.yaml
  embedded default

Examples:
  runner config
  runner config --defaults > ~/.arcade/configs/runner.yaml
  runner config --validate ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file")
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate a config file and report its jump physics")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
	if flagValidate != "" {
		return validateFile(flagValidate)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}

func validateFile(path string) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	minHeight := runner.MinPlayableHeight(cfg)
	if minHeight == 0 {
		return fmt.Errorf("%s: %w at any terminal height", path, runner.ErrUnfair)
	}

	arc := player.JumpArc(cfg.Player, minHeight-3)
	fmt.Printf("%s: ok\n", path)
	fmt.Printf("  minimum size: %d columns, %d rows\n", runner.MinPlayableWidth(cfg), minHeight)
	fmt.Printf("  jump: %d rows high, %d columns airborne\n", arc.Height, arc.AirTicks)
	fmt.Printf("  widest obstacle: %d columns\n", cfg.Level.MaxExtent())
	return nil
}
