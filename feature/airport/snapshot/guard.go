package snapshot

import (
	"os"
	"os/signal"
	"syscall"
)

// withSignalsDeferred runs fn with SIGINT and SIGTERM held back. A signal
// arriving while fn runs is redelivered once fn has returned, so a snapshot
// write in progress always completes before the process terminates.
func withSignalsDeferred(fn func() error) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := fn()

	signal.Stop(sigs)
	select {
	case sig := <-sigs:
		proc, findErr := os.FindProcess(os.Getpid())
		if findErr == nil {
			_ = proc.Signal(sig)
		}
	default:
	}
	return err
}
