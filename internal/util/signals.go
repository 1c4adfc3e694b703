package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SetupSignalHandler returns a context cancelled on the first SIGINT or SIGTERM.
// A second signal exits the process with status 130. The returned stop function
// releases the signal subscription.
func SetupSignalHandler(logger *slog.Logger) (context.Context, context.CancelFunc) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Debug("interrupted", "signal", sig.String())
			cancel()
		case <-done:
			return
		}

		select {
		case sig := <-sigCh:
			logger.Warn("second interrupt, exiting", "signal", sig.String())
			os.Exit(130)
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
			cancel()
		})
	}

	return ctx, stop
}
