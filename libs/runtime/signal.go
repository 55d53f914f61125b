package runtime

import (
	"context"
	"os/signal"
	"syscall"
)

// SignalContext is cancelled when the workstation session shuts the
// service down (SIGINT from a terminal, SIGTERM from the UI shell).
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
