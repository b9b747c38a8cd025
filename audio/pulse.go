// PulseAudio Streaming

package audio

import (
	"noise/logger"

	"github.com/jfreymuth/pulse"
	"github.com/pkg/errors"
)

// Pure Go PulseAudio backend. The server pulls samples through a
// Float32Reader; the configured device names a sink.
type Pulse struct {
	config Configurer
}

func (p *Pulse) Name() string { return "pulse" }

func (p *Pulse) Open(params Params, cb Callback) (Stream, error) {
	logger.Component("audio").Debug("connect to pulseaudio")
	client, err := pulse.NewClient(pulse.ClientApplicationName("noise"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to pulseaudio")
	}
	if params.Channels != 1 {
		client.Close()
		return nil, errors.Errorf("pulse backend supports mono only, got %d channels", params.Channels)
	}
	reader := pulse.Float32Reader(func(out []float32) (int, error) {
		if cb(out) != Continue {
			return len(out), pulse.EndOfData
		}
		return len(out), nil
	})
	opts := []pulse.PlaybackOption{
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(int(params.SampleRate)),
		pulse.PlaybackLatency(params.Latency.Seconds()),
	}
	if device := p.config.Device(); device != "" {
		sink, err := client.SinkByID(device)
		if err != nil {
			client.Close()
			return nil, errors.Wrapf(err, "no pulseaudio sink %q", device)
		}
		logger.Component("audio").WithField("device", device).Debug("pulseaudio sink selected")
		opts = append(opts, pulse.PlaybackSink(sink))
	}
	stream, err := client.NewPlayback(reader, opts...)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to open pulseaudio playback")
	}
	if params.ClipOff {
		logger.Component("audio").Debug("pulseaudio float streams are not clipped by the client")
	}
	return &pulseStream{client: client, stream: stream}, nil
}

type pulseStream struct {
	client *pulse.Client
	stream *pulse.PlaybackStream
}

func (s *pulseStream) Start() error {
	logger.Component("audio").Debug("start pulseaudio stream")
	s.stream.Start()
	return errors.Wrap(s.stream.Error(), "failed to start pulseaudio stream")
}

func (s *pulseStream) Stop() error {
	logger.Component("audio").Debug("stop pulseaudio stream")
	s.stream.Stop()
	if s.stream.Underflow() {
		logger.Component("audio").Warn("pulseaudio stream underflowed")
	}
	return errors.Wrap(s.stream.Error(), "pulseaudio stream error")
}

func (s *pulseStream) Close() error {
	logger.Component("audio").Debug("close pulseaudio stream")
	s.stream.Close()
	s.client.Close()
	return nil
}

func NewPulse(c Configurer) *Pulse {
	return &Pulse{config: c}
}
