package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-transcript/cmd/atp/cmd/cli"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of atp",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cli.Version)
		return nil
	},
}
