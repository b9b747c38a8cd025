// Audio Configuration
//
// Example TOML:
// [audio]
// backend = "pulse"
// device = "alsa_output.usb-headset.analog-stereo"
//
// Environment Variables:
// NOISE_AUDIO_BACKEND = "portaudio"
// NOISE_AUDIO_DEVICE = ""
//
// CLI Flags:
// -b/--backend portaudio, -d/--device name (portaudio device or pulse sink)

package audio

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	VBackend = "audio.backend"
	VDevice  = "audio.device"
)

func init() {
	viper.SetDefault(VBackend, "portaudio")
	viper.SetDefault(VDevice, "")
}

type Configurer interface {
	Backend() string
	Device() string
}

// Binds a cli flag to an audio configuration key
func BindFlag(key string, flag *pflag.Flag) {
	viper.BindPFlag(key, flag)
}

type Config struct{}

// Name of the backend to stream through
func (c Config) Backend() string {
	return viper.GetString(VBackend)
}

// Output device name, empty for the host default. portaudio matches a
// device name, pulse a sink name; beep always uses the default output.
func (c Config) Device() string {
	return viper.GetString(VDevice)
}

func NewConfig() Config {
	return Config{}
}
