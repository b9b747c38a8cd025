// Generator Configuration
//
// Example TOML:
// [generator]
// mode = "pink"
// white = false
// volume = "0.8"
// seed = 0
// centered = false
//
// Environment Variables:
// NOISE_GENERATOR_MODE = "white"
// NOISE_GENERATOR_WHITE = "true"
// NOISE_GENERATOR_VOLUME = "0.5"
//
// CLI Flags:
// -m/--mode pink, -w/--white (overrides mode), -v/--vol 0.5, --seed 42, --centered

package noise

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	VMode     = "generator.mode"
	VWhite    = "generator.white"
	VVolume   = "generator.volume"
	VSeed     = "generator.seed"
	VCentered = "generator.centered"
)

func init() {
	viper.SetDefault(VMode, Pink.String())
	viper.SetDefault(VWhite, false)
	viper.SetDefault(VVolume, "1.0")
	viper.SetDefault(VSeed, int64(0))
	viper.SetDefault(VCentered, false)
}

var (
	ErrInvalidVolume = errors.New("volume should be a number between 0.0 and 1.0")
	ErrInvalidMode   = errors.New("unknown noise mode")
)

// Binds a cli flag to a generator configuration key
func BindFlag(key string, flag *pflag.Flag) {
	viper.BindPFlag(key, flag)
}

// Immutable generator settings, fixed before streaming starts
type Config struct {
	Mode   Mode
	Volume float32
	// Draw white in [-1,1) instead of [0,1)
	Centered bool
	// Zero seeds from the clock
	Seed int64
}

// Returns a Config, the volume must already be in [0,1]
func NewConfig(mode Mode, volume float32) (Config, error) {
	if !(volume >= 0 && volume <= 1) {
		return Config{}, errors.Wrapf(ErrInvalidVolume, "invalid volume %v", volume)
	}
	return Config{Mode: mode, Volume: volume}, nil
}

// Parses a volume argument, rejecting anything that is not a float in [0,1]
func ParseVolume(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidVolume, "invalid volume %q", s)
	}
	if !(v >= 0 && v <= 1) {
		return 0, errors.Wrapf(ErrInvalidVolume, "invalid volume %q", s)
	}
	return float32(v), nil
}

// Builds a Config from viper, flags bound with BindFlag included
func ReadConfig() (Config, error) {
	volume, err := ParseVolume(viper.GetString(VVolume))
	if err != nil {
		return Config{}, err
	}
	mode, err := ParseMode(viper.GetString(VMode))
	if err != nil {
		return Config{}, err
	}
	if viper.GetBool(VWhite) {
		mode = White
	}
	cfg, err := NewConfig(mode, volume)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = viper.GetInt64(VSeed)
	cfg.Centered = viper.GetBool(VCentered)
	return cfg, nil
}
