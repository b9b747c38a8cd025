package run

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSigChanFunc(t *testing.T) {
	ch := defaultSigChanFunc()
	ch <- syscall.SIGINT
	assert.Equal(t, syscall.SIGINT, <-ch)
}

func TestContextCancelledBySignal(t *testing.T) {
	tt := []struct {
		name string
		sig  os.Signal
	}{
		{"interrupt", syscall.SIGINT},
		{"quit", syscall.SIGQUIT},
		{"terminate", syscall.SIGTERM},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			defer func() { SigChanFunc = defaultSigChanFunc }()
			ch := make(chan os.Signal, 1)
			SigChanFunc = func() chan os.Signal { return ch }
			ctx, cancel := Context(context.Background())
			defer cancel()
			ch <- tc.sig
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
				t.Fatal("context not cancelled by quit signal")
			}
		})
	}
}

func TestContextCancelFunc(t *testing.T) {
	defer func() { SigChanFunc = defaultSigChanFunc }()
	SigChanFunc = func() chan os.Signal { return make(chan os.Signal, 1) }
	ctx, cancel := Context(context.Background())
	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
}

func TestRecover(t *testing.T) {
	tt := []struct {
		name     string
		fn       func() error
		expected string
	}{
		{"panic becomes error", func() error { panic("device gone") }, "panic: device gone"},
		{"error passes through", func() error { return errors.New("boom") }, "boom"},
		{"nil stays nil", func() error { return nil }, ""},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			call := func() (err error) {
				defer Recover(&err)
				return tc.fn()
			}
			err := call()
			if tc.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.expected)
		})
	}
}
