package stream

import (
	"context"
	"fmt"
	"time"

	"noise/audio"
	"noise/logger"
	"noise/noise"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// How often the idle loop logs stream counters
var StatsInterval = 10 * time.Second

// A failure to set up or start the audio stream
type DeviceError struct {
	Op      string
	Backend string
	Err     error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s %s stream: %v", e.Op, e.Backend, e.Err)
}

func (e *DeviceError) Cause() error  { return e.Err }
func (e *DeviceError) Unwrap() error { return e.Err }

// Run seeds a generator from src, streams it through backend and blocks
// until ctx is cancelled, then stops and closes the stream. Only stream
// setup can fail; errors during shutdown are logged.
func Run(ctx context.Context, cfg noise.Config, backend audio.Backend, src noise.Source) error {
	log := logger.Component("stream").WithFields(logger.F{
		"stream":  xid.New().String(),
		"backend": backend.Name(),
		"mode":    cfg.Mode.String(),
		"volume":  cfg.Volume,
	})
	gen := noise.New(cfg, src)
	filler := NewFiller(gen, cfg.Volume)

	s, err := backend.Open(audio.DefaultParams(), filler.Fill)
	if err != nil {
		return &DeviceError{Op: "open", Backend: backend.Name(), Err: err}
	}
	if err := s.Start(); err != nil {
		if cerr := s.Close(); cerr != nil {
			log.WithError(cerr).Warn("close after failed start")
		}
		return &DeviceError{Op: "start", Backend: backend.Name(), Err: err}
	}
	log.Info("generating %s noise", cfg.Mode)

	idle(ctx, log, filler, s)

	if err := s.Stop(); err != nil {
		log.WithError(err).Warn("stream stop error")
	}
	if err := s.Close(); err != nil {
		log.WithError(err).Warn("stream close error")
	}
	log.WithField("frames", filler.Frames()).Info("stream closed")
	return nil
}

// Parks until ctx is done. The backend does all audio work on its own
// thread, this loop only reports progress.
func idle(ctx context.Context, log logger.Logger, filler *Filler, s audio.Stream) {
	ticker := time.NewTicker(StatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fields := logger.F{"frames": filler.Frames()}
			if u, ok := s.(audio.Underflower); ok {
				fields["underflows"] = u.Underflows()
			}
			log.WithFields(fields).Debug("streaming")
		}
	}
}

// Returns the DeviceError in err's chain, if any
func AsDeviceError(err error) (*DeviceError, bool) {
	var de *DeviceError
	ok := errors.As(err, &de)
	return de, ok
}
