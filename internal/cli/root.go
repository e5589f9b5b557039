package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/buildinfo"
)

// Execute runs the depscope CLI and returns an error if any command fails.
//
// The root command wires the analyze, init and completion subcommands,
// configures logging based on the --verbose flag, and attaches the logger
// to the context for all commands to retrieve via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "depscope",
		Short:        "Depscope analyzes package dependency graphs",
		Long:         `Depscope resolves the transitive dependency (or reverse-dependency) closure of a package over its built-in graph data and renders the result as an ASCII tree or a Graphviz DOT description.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
