// Beep Speaker Streaming

package audio

import (
	"noise/logger"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// Streams through the beep speaker, which plays through oto. The
// speaker is stereo and clamps samples to [-1, 1], so ClipOff has no
// effect and mono frames are written to both channels.
type Beep struct {
	config Configurer
}

func (b *Beep) Name() string { return "beep" }

func (b *Beep) Open(p Params, cb Callback) (Stream, error) {
	if p.Channels != 1 {
		return nil, errors.Errorf("beep backend supports mono only, got %d channels", p.Channels)
	}
	warnDeviceIgnored(b.Name(), b.config.Device())
	logger.Component("audio").Debug("initialize beep speaker")
	if err := speaker.Init(beep.SampleRate(int(p.SampleRate)), speakerBufferSize(p)); err != nil {
		return nil, errors.Wrap(err, "failed to initialize beep speaker")
	}
	if p.ClipOff {
		logger.Component("audio").Debug("beep speaker always clips, ignoring clip off")
	}
	return &beepStream{streamer: newMonoStreamer(cb, p.FramesPerBuffer)}, nil
}

// The speaker buffer holds Latency worth of samples, the mixer is pulled
// in callback period sized chunks
func speakerBufferSize(p Params) int {
	n := beep.SampleRate(int(p.SampleRate)).N(p.Latency)
	if n < p.FramesPerBuffer {
		return p.FramesPerBuffer
	}
	return n
}

type beepStream struct {
	streamer *monoStreamer
}

func (s *beepStream) Start() error {
	logger.Component("audio").Debug("start beep stream")
	speaker.Play(s.streamer)
	return nil
}

func (s *beepStream) Stop() error {
	logger.Component("audio").Debug("stop beep stream")
	speaker.Clear()
	return nil
}

func (s *beepStream) Close() error {
	logger.Component("audio").Debug("close beep stream")
	speaker.Close()
	return nil
}

// Adapts a mono Callback to beep.Streamer
type monoStreamer struct {
	cb   Callback
	buf  []float32
	done bool
}

func newMonoStreamer(cb Callback, size int) *monoStreamer {
	return &monoStreamer{cb: cb, buf: make([]float32, size)}
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.done {
		return 0, false
	}
	for n < len(samples) {
		chunk := len(samples) - n
		if chunk > len(m.buf) {
			chunk = len(m.buf)
		}
		out := m.buf[:chunk]
		res := m.cb(out)
		for i, v := range out {
			samples[n+i][0] = float64(v)
			samples[n+i][1] = float64(v)
		}
		n += chunk
		if res != Continue {
			m.done = true
			return n, true
		}
	}
	return n, true
}

func (m *monoStreamer) Err() error {
	return nil
}

func NewBeep(c Configurer) *Beep {
	return &Beep{config: c}
}
