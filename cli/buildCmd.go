package cli

import (
	"fmt"

	"noise/build"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Print build version and time",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "OS:", build.OS())
			fmt.Fprintln(out, "Architecture:", build.Architecture())
			fmt.Fprintln(out, "Version:", build.Version())
			fmt.Fprintln(out, "Time:", build.TimeStr())
		},
	}
}
