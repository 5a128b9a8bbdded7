package eventscheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, params *ParamsNewEvent) *Event {
	t.Helper()

	event, errNew := NewEvent(params)
	require.NoError(t, errNew)

	return event
}

func newTestScheduler(t *testing.T, totalResources int, events ...*Event) *Scheduler {
	t.Helper()

	scheduler, errNew := NewScheduler(
		&ParamsNewScheduler{
			TotalResources: totalResources,
		},
	)
	require.NoError(t, errNew)

	for _, event := range events {
		scheduler.AddEvent(context.Background(), event)
	}

	return scheduler
}

// requireValidSchedule checks the two schedule invariants: no event starts
// before a dependency ends, and concurrent worker usage never exceeds the
// pool at any instant.
func requireValidSchedule(t *testing.T, scheduler *Scheduler, schedule map[string]Interval) {
	t.Helper()

	var horizon int

	for name, interval := range schedule {
		event, exists := scheduler.Event(name)
		require.True(t, exists)

		require.Equal(t, interval.Start+event.Duration, interval.End)

		if interval.End > horizon {
			horizon = interval.End
		}

		for _, dependency := range event.Dependencies {
			dependencyInterval, wasScheduled := schedule[dependency]
			require.True(t, wasScheduled)

			require.LessOrEqual(
				t,
				dependencyInterval.End,
				interval.Start,
				"dependency '%s' must end before '%s' starts", dependency, name,
			)
		}
	}

	for tick := 0; tick < horizon; tick++ {
		var used int

		for name, interval := range schedule {
			if interval.Start <= tick && tick < interval.End {
				event, _ := scheduler.Event(name)
				used += event.ResourcesRequired
			}
		}

		require.LessOrEqual(
			t,
			used,
			scheduler.TotalResources,
			"worker pool exceeded at time %d", tick,
		)
	}
}
