package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/errors"
)

// sampleConfig is the configuration written by the init command.
const sampleConfig = `# depscope configuration
package_name = "app-core"
repository_url = "https://github.com/example/repo"
test_repository_mode = false
ascii_tree_output = true

# Optional analysis toggles.
reverse_mode = false
graph_export = true
`

// newInitCmd creates the init command, which writes a sample configuration
// file to get started.
func newInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
			}
			printSuccess("Created sample config: %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "config.toml", "path to write")
	return cmd
}
