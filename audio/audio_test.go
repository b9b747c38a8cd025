package audio

import (
	"testing"
	"time"

	"noise/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	backend string
}

func (c testConfig) Backend() string { return c.backend }
func (c testConfig) Device() string  { return "" }

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1, p.Channels)
	assert.Equal(t, 44100.0, p.SampleRate)
	assert.Equal(t, 64, p.FramesPerBuffer)
	assert.True(t, p.ClipOff)
	assert.Equal(t, 100*time.Millisecond, p.Latency)
}

func TestDeviceFrames(t *testing.T) {
	tt := []struct {
		name     string
		latency  time.Duration
		expected int
	}{
		{"default", LATENCY, 4410},
		{"quarter second", time.Second / 4, 11025},
		{"shorter than a period", time.Millisecond, FRAMES_PER_BUFFER},
		{"unset", 0, FRAMES_PER_BUFFER},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			p.Latency = tc.latency
			assert.Equal(t, tc.expected, p.DeviceFrames())
			assert.Equal(t, tc.expected, speakerBufferSize(p))
		})
	}
}

type logConfig struct{}

func (logConfig) Level() string       { return "debug" }
func (logConfig) Format() string      { return "text" }
func (logConfig) LogFile() string     { return "" }
func (logConfig) ConsoleOutput() bool { return false }

// Installs a global logger whose entries land in the returned hook
func captureLogs(t *testing.T) *test.Hook {
	hook := new(test.Hook)
	l := logger.New(logConfig{})
	l.AddHook(hook)
	prev := logger.SetGlobalLogger(l)
	t.Cleanup(func() { logger.SetGlobalLogger(prev) })
	return hook
}

func TestWarnDeviceIgnored(t *testing.T) {
	hook := captureLogs(t)
	assert.False(t, warnDeviceIgnored("beep", ""))
	assert.Empty(t, hook.AllEntries())

	assert.True(t, warnDeviceIgnored("beep", "HDMI"))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "beep", entry.Data["backend"])
	assert.Equal(t, "HDMI", entry.Data["device"])
	assert.Equal(t, "audio", entry.Data["component"])
}

func TestBackends(t *testing.T) {
	assert.Equal(t, []string{"beep", "portaudio", "pulse"}, Backends())
}

func TestNew(t *testing.T) {
	tt := []struct {
		name     string
		backend  string
		expected interface{}
		err      error
	}{
		{"portaudio", "portaudio", &PortAudio{}, nil},
		{"pulse", "pulse", &Pulse{}, nil},
		{"beep", "beep", &Beep{}, nil},
		{"unknown", "jack", nil, ErrUnknownBackend},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(testConfig{tc.backend})
			if tc.err != nil {
				assert.Equal(t, tc.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.expected, b)
			assert.Equal(t, tc.backend, b.Name())
		})
	}
}
