// Package audio is the boundary between the noise generator and the sound
// devices. Backends pull samples through a Callback on their own timing
// thread.
package audio

import (
	"sort"
	"time"

	"noise/logger"

	"github.com/pkg/errors"
)

const (
	CHANNELS          = 1
	SAMPLE_RATE       = 44100
	FRAMES_PER_BUFFER = 64
	LATENCY           = time.Second / 10
)

var ErrUnknownBackend = errors.New("unknown audio backend")

// What a Callback asks the backend to do after a buffer is filled
type Result int

const (
	Continue Result = iota // keep streaming
	Complete               // drain and stop
	Abort                  // stop immediately
)

// Callback fills out with len(out) mono frames. It runs on the backend's
// real-time thread and must not block or allocate.
type Callback func(out []float32) Result

// Fixed stream settings
type Params struct {
	Channels        int
	SampleRate      float64
	FramesPerBuffer int
	// Disables backend clipping, the caller keeps samples in range
	ClipOff bool
	// Audio buffered ahead of the device by backends that keep their own
	// buffer (pulse, beep). FramesPerBuffer stays the callback period.
	Latency time.Duration
}

// Mono, 44.1kHz, 64 frames per buffer, no clipping, 100ms device buffer
func DefaultParams() Params {
	return Params{
		Channels:        CHANNELS,
		SampleRate:      SAMPLE_RATE,
		FramesPerBuffer: FRAMES_PER_BUFFER,
		ClipOff:         true,
		Latency:         LATENCY,
	}
}

// Frames held by a device buffer of Latency length, never less than one
// callback period
func (p Params) DeviceFrames() int {
	n := int(p.SampleRate * p.Latency.Seconds())
	if n < p.FramesPerBuffer {
		return p.FramesPerBuffer
	}
	return n
}

// Logs when a device was configured on a backend that always plays
// through its default output. Returns true if it warned.
func warnDeviceIgnored(backend, device string) bool {
	if device == "" {
		return false
	}
	logger.Component("audio").WithFields(logger.F{
		"backend": backend,
		"device":  device,
	}).Warn("backend cannot select a device, playing through the default output")
	return true
}

type Stream interface {
	Start() error
	Stop() error
	Close() error
}

type Backend interface {
	Name() string
	Open(p Params, cb Callback) (Stream, error)
}

// Optionally implemented by streams that track buffer underflows
type Underflower interface {
	Underflows() uint64
}

var backends = map[string]func(Configurer) Backend{
	"portaudio": func(c Configurer) Backend { return NewPortAudio(c) },
	"pulse":     func(c Configurer) Backend { return NewPulse(c) },
	"beep":      func(c Configurer) Backend { return NewBeep(c) },
}

// Names of the available backends
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Returns the configured backend
func New(c Configurer) (Backend, error) {
	fn, ok := backends[c.Backend()]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", c.Backend())
	}
	return fn(c), nil
}
