package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"noise/audio"
	"noise/config"
	"noise/logger"
	"noise/noise"
	"noise/run"
	"noise/stream"

	"github.com/spf13/cobra"
)

// Swapped in tests
var (
	backendFunc           = audio.New
	contextFunc           = run.Context
	stderr      io.Writer = os.Stderr
)

func newNoiseCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "noise",
		Short:         "Generates white/pink noise",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Read(configPath); err != nil {
				return err
			}
			logger.Setup()
			return nil
		},
		RunE: generate,
	}
	cmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Optional absolute path to toml config file")
	cmd.PersistentFlags().StringP(
		"log-level",
		"l",
		"info",
		"Log level (debug, info, warn, error)")
	logger.BindLogLevelFlag(cmd.PersistentFlags().Lookup("log-level"))

	flags := cmd.Flags()
	flags.StringP("mode", "m", noise.Pink.String(), "Noise mode (pink, white)")
	flags.BoolP("white", "w", false, "Generate white noise (Pink by default), overrides --mode")
	flags.StringP("vol", "v", "1.0", "Volume level 0.0-1.0")
	flags.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	flags.Bool("centered", false, "Draw white noise in [-1, 1) instead of [0, 1)")
	noise.BindFlag(noise.VMode, flags.Lookup("mode"))
	noise.BindFlag(noise.VWhite, flags.Lookup("white"))
	noise.BindFlag(noise.VVolume, flags.Lookup("vol"))
	noise.BindFlag(noise.VSeed, flags.Lookup("seed"))
	noise.BindFlag(noise.VCentered, flags.Lookup("centered"))

	flags.StringP("backend", "b", "portaudio",
		"Audio backend ("+strings.Join(audio.Backends(), ", ")+")")
	flags.StringP("device", "d", "", "Output device name (portaudio only)")
	audio.BindFlag(audio.VBackend, flags.Lookup("backend"))
	audio.BindFlag(audio.VDevice, flags.Lookup("device"))

	cmd.AddCommand(newBuildCmd(), newDevicesCmd())
	return cmd
}

// Streams noise until a quit signal is received
func generate(cmd *cobra.Command, args []string) (err error) {
	defer run.Recover(&err)
	cfg, err := noise.ReadConfig()
	if err != nil {
		return err
	}
	backend, err := backendFunc(audio.NewConfig())
	if err != nil {
		return err
	}
	ctx, cancel := contextFunc(context.Background())
	defer cancel()
	return stream.Run(ctx, cfg, backend, noise.NewSource(cfg.Seed))
}

// Executes the command line, returning the process exit code
func Run(args ...string) int {
	if args == nil {
		args = []string{}
	}
	cmd := newNoiseCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if de, ok := stream.AsDeviceError(err); ok {
			fmt.Fprintf(stderr, "Audio device error (%s backend, %s): %v\n", de.Backend, de.Op, de.Err)
			return 1
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
