package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Run calls onTick every interval until ctx is done.
// Stop pauses the ticker, Start resumes it with a full interval.
func Run(ctx context.Context, clock clockwork.Clock, interval time.Duration, action <-chan TimerAction, onTick func()) {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Tick loop stopped")
			return
		case a := <-action:
			switch a {
			case Start:
				ticker.Reset(interval)
			case Stop:
				ticker.Stop()
			}
			slog.Debug("Tick loop action", "action", a)
		case <-ticker.Chan():
			onTick()
		}
	}
}
