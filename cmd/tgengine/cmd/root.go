package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tgengine",
	Short: "Type-representation and resolution engine demo CLI",
	Long: `tgengine wires the type engine core against in-memory fixture
hierarchy and library-spec data, without a real AST front end. "demo"
interns a few type descriptors and prints them with the intern table's
counters; "config" prints the effective configuration.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an EngineConfig YAML file (defaults applied if omitted)")
}
