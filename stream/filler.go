// Package stream drives a noise.Generator from an audio backend: the
// buffer fill routine and the stream lifecycle around it.
package stream

import (
	"sync/atomic"

	"noise/audio"
	"noise/noise"
)

// Filler writes volume scaled generator samples into backend buffers.
// Fill runs on the backend's callback thread, only Frames may be
// called from elsewhere.
type Filler struct {
	gen    *noise.Generator
	volume float32
	frames uint64
}

func NewFiller(gen *noise.Generator, volume float32) *Filler {
	return &Filler{gen: gen, volume: volume}
}

// Fill populates every slot of out with the next samples in order.
// It does not block or allocate and always asks to continue.
func (f *Filler) Fill(out []float32) audio.Result {
	for i := range out {
		out[i] = f.gen.Next() * f.volume
	}
	atomic.AddUint64(&f.frames, uint64(len(out)))
	return audio.Continue
}

// Total frames written so far
func (f *Filler) Frames() uint64 {
	return atomic.LoadUint64(&f.frames)
}
