// Port Audio Streaming

package audio

import (
	"strings"
	"sync/atomic"

	"noise/logger"

	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

var ErrNoDevice = errors.New("no such output device")

// Port audio backend, streams through a native callback
type PortAudio struct {
	config Configurer
}

func (pa *PortAudio) Name() string { return "portaudio" }

// Opens a callback stream on the configured output device. portaudio is
// initialized here and terminated when the stream is closed.
func (pa *PortAudio) Open(p Params, cb Callback) (Stream, error) {
	logger.Component("audio").Debug("initialize portaudio")
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize portaudio")
	}
	device, err := outputDevice(pa.config.Device())
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	params := portaudio.LowLatencyParameters(nil, device)
	params.Output.Channels = p.Channels
	params.SampleRate = p.SampleRate
	params.FramesPerBuffer = p.FramesPerBuffer
	if p.ClipOff {
		params.Flags = portaudio.ClipOff
	}
	s := &paStream{cb: cb}
	logger.Component("audio").WithField("device", device.Name).Debug("open portaudio stream")
	s.stream, err = portaudio.OpenStream(params, s.process)
	if err != nil {
		portaudio.Terminate()
		return nil, errors.Wrap(err, "failed to open portaudio stream")
	}
	return s, nil
}

// Finds an output device by name, the host default when name is empty
func outputDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		device, err := portaudio.DefaultOutputDevice()
		if err != nil {
			return nil, errors.Wrap(err, "no default output device")
		}
		return device, nil
	}
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	for _, d := range devices {
		if d.MaxOutputChannels > 0 && strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return nil, errors.Wrapf(ErrNoDevice, "%q", name)
}

type paStream struct {
	stream     *portaudio.Stream
	cb         Callback
	underflows uint64
	done       int32
}

// Runs on the portaudio callback thread. The Go bindings give callbacks
// no return value, so Complete and Abort silence the rest of the stream.
func (s *paStream) process(out []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
	if flags&portaudio.OutputUnderflow != 0 {
		atomic.AddUint64(&s.underflows, 1)
	}
	if atomic.LoadInt32(&s.done) == 1 {
		for i := range out {
			out[i] = 0
		}
		return
	}
	if s.cb(out) != Continue {
		atomic.StoreInt32(&s.done, 1)
	}
}

func (s *paStream) Start() error {
	logger.Component("audio").Debug("start portaudio stream")
	return errors.Wrap(s.stream.Start(), "failed to start portaudio stream")
}

func (s *paStream) Stop() error {
	logger.Component("audio").Debug("stop portaudio stream")
	return errors.Wrap(s.stream.Stop(), "failed to stop portaudio stream")
}

func (s *paStream) Close() error {
	logger.Component("audio").Debug("close portaudio stream")
	defer portaudio.Terminate()
	return errors.Wrap(s.stream.Close(), "failed to close portaudio stream")
}

func (s *paStream) Underflows() uint64 {
	return atomic.LoadUint64(&s.underflows)
}

// An output capable device
type DeviceInfo struct {
	Name       string
	HostApi    string
	Channels   int
	SampleRate float64
	Default    bool
}

// Lists the portaudio output devices
func Devices() ([]DeviceInfo, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize portaudio")
	}
	defer portaudio.Terminate()
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	def, _ := portaudio.DefaultOutputDevice()
	var infos []DeviceInfo
	for _, d := range devices {
		if d.MaxOutputChannels < 1 {
			continue
		}
		info := DeviceInfo{
			Name:       d.Name,
			Channels:   d.MaxOutputChannels,
			SampleRate: d.DefaultSampleRate,
			Default:    def != nil && d.Name == def.Name,
		}
		if d.HostApi != nil {
			info.HostApi = d.HostApi.Name
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Construct a new port audio backend
func NewPortAudio(c Configurer) *PortAudio {
	return &PortAudio{config: c}
}
