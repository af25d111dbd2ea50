package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-stickhero/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in game configuration as YAML. Save it as
~/.stickhero/configs/stickhero.yaml (or pass it with --config) and edit the
values to tune the game. Keys left out keep their defaults.

With --effective, prints the configuration the game would actually use
after the usual lookup.

Examples:
  stickhero config > ~/.stickhero/configs/stickhero.yaml
  stickhero config --effective --config ./my-stickhero.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration instead of the defaults")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadStickHero(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
