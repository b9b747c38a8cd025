package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"noise/logger"
)

// os.Signal channel function
var SigChanFunc = defaultSigChanFunc

// Default os.Signal channel function
func defaultSigChanFunc() chan os.Signal {
	return make(chan os.Signal, 1)
}

// Signals that ask the process to quit
func QuitSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}

// Returns a context which is cancelled when a quit signal is received
// or when the returned cancel func is called
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := SigChanFunc()
	signal.Notify(ch, QuitSignals()...)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			logger.Component("run").WithField("signal", sig.String()).Debug("quit signal received")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// Panic Recover, defer it with the caller's named error result. A
// recovered panic is logged and returned through err.
func Recover(err *error) {
	if r := recover(); r != nil {
		logger.Component("run").Error("panic recovery: %v", r)
		if err != nil {
			*err = fmt.Errorf("panic: %v", r)
		}
	}
}
