package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

// NotifyContext returns a context cancelled on SIGINT or SIGTERM. The
// signal that triggered the cancel is logged once.
func NotifyContext(parent context.Context, log *logger.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			if log != nil {
				log.Info("Shutdown signal received", "signal", s.String())
			}
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
