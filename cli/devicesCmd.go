package cli

import (
	"fmt"

	"noise/audio"

	"github.com/spf13/cobra"
)

var devicesFunc = audio.Devices

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List portaudio output devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := devicesFunc()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range devices {
				mark := " "
				if d.Default {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s (%s, %d channels, %.0f Hz)\n",
					mark, d.Name, d.HostApi, d.Channels, d.SampleRate)
			}
			return nil
		},
	}
}
