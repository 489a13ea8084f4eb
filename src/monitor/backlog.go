package monitor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// BacklogSource is the part of the controller the monitor observes.
type BacklogSource interface {
	BacklogSize() int
	OldestBacklogAge() time.Duration
}

// Monitor periodically warns when a request has waited in the backlog longer than alertAge.
type Monitor struct {
	scheduler gocron.Scheduler
	source    BacklogSource
	alertAge  time.Duration
}

func Start(source BacklogSource, clock clockwork.Clock, interval, alertAge time.Duration) (*Monitor, error) {
	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	m := &Monitor{scheduler: s, source: source, alertAge: alertAge}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			m.check()
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backlog job: %w", err)
	}
	s.Start()
	return m, nil
}

// check logs the backlog state and reports whether the oldest request is overdue.
func (m *Monitor) check() bool {
	size := m.source.BacklogSize()
	if size == 0 {
		return false
	}
	age := m.source.OldestBacklogAge()
	if age < m.alertAge {
		slog.Debug("Backlog waiting", "size", size, "oldest", age)
		return false
	}
	slog.Warn("Backlog request overdue", "size", size, "oldest", age, "threshold", m.alertAge)
	return true
}

func (m *Monitor) Shutdown() error {
	return m.scheduler.Shutdown()
}
