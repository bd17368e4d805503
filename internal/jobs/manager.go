package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"betsim-platform/internal/monitoring"
)

// Task is a named periodic job. A failing run logs and yields to the next
// tick; there is no retry within the same tick.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Manager struct {
	tasks []Task
	log   *zap.Logger
}

func New(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

func (m *Manager) Register(name string, interval time.Duration, run func(ctx context.Context) error) {
	m.tasks = append(m.tasks, Task{Name: name, Interval: interval, Run: run})
}

// RunOnce triggers a single registered task by name, independent of its
// schedule. Tests drive the tasks through this instead of the wall clock.
func (m *Manager) RunOnce(ctx context.Context, name string) error {
	for _, t := range m.tasks {
		if t.Name == name {
			return t.Run(ctx)
		}
	}
	return fmt.Errorf("unknown task %q", name)
}

// Start runs every registered task on its own ticker until ctx is
// cancelled.
func (m *Manager) Start(ctx context.Context) {
	var wg sync.WaitGroup

	for _, task := range m.tasks {
		wg.Add(1)

		go func(t Task) {
			defer wg.Done()

			ticker := time.NewTicker(t.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if err := t.Run(ctx); err != nil {
						monitoring.JobErrors.WithLabelValues(t.Name).Inc()
						m.log.Error("scheduled task failed",
							zap.String("task", t.Name),
							zap.Error(err),
						)
					}
				case <-ctx.Done():
					return
				}
			}
		}(task)
	}

	<-ctx.Done()
	wg.Wait()
}
