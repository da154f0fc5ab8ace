package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javacg/tgengine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective EngineConfig as YAML",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
