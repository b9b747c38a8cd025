package noise

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVolume(t *testing.T) {
	tt := []struct {
		name     string
		in       string
		expected float32
		ok       bool
	}{
		{"default", "1.0", 1, true},
		{"zero", "0", 0, true},
		{"half", " 0.5 ", .5, true},
		{"above range", "1.5", 0, false},
		{"negative", "-0.1", 0, false},
		{"garbage", "loud", 0, false},
		{"empty", "", 0, false},
		{"nan", "NaN", 0, false},
		{"inf", "+Inf", 0, false},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseVolume(tc.in)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, v)
				return
			}
			assert.Equal(t, ErrInvalidVolume, errors.Cause(err))
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(White, .25)
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: White, Volume: .25}, cfg)

	_, err = NewConfig(Pink, 1.01)
	assert.Equal(t, ErrInvalidVolume, errors.Cause(err))
}

func TestReadConfig(t *testing.T) {
	defer func() {
		viper.Set(VMode, nil)
		viper.Set(VVolume, nil)
		viper.Set(VWhite, nil)
		viper.Set(VSeed, nil)
	}()
	viper.Set(VVolume, "0.5")
	viper.Set(VWhite, true)
	viper.Set(VSeed, int64(99))
	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, White, cfg.Mode)
	assert.Equal(t, float32(.5), cfg.Volume)
	assert.Equal(t, int64(99), cfg.Seed)

	viper.Set(VVolume, "2")
	_, err = ReadConfig()
	assert.Equal(t, ErrInvalidVolume, errors.Cause(err))
}

func TestReadConfigMode(t *testing.T) {
	defer func() {
		viper.Set(VMode, nil)
		viper.Set(VWhite, nil)
	}()
	tt := []struct {
		name     string
		mode     string
		white    bool
		expected Mode
		err      error
	}{
		{"default pink", "pink", false, Pink, nil},
		{"white by mode", "white", false, White, nil},
		{"white flag overrides mode", "pink", true, White, nil},
		{"unknown mode", "brown", false, 0, ErrInvalidMode},
		{"unknown mode with white flag", "brown", true, 0, ErrInvalidMode},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			viper.Set(VMode, tc.mode)
			viper.Set(VWhite, tc.white)
			cfg, err := ReadConfig()
			if tc.err != nil {
				assert.Equal(t, tc.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Mode)
		})
	}
}
