package eventscheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissedDeadlines(t *testing.T) {
	scheduler := newTestScheduler(
		t,
		1,
		mustEvent(t, &ParamsNewEvent{Name: "a", Duration: 3}),
		mustEvent(t, &ParamsNewEvent{Name: "b", Duration: 4, Deadline: 5, Dependencies: []string{"a"}}),
		mustEvent(t, &ParamsNewEvent{Name: "c", Duration: 2, Deadline: 20, Dependencies: []string{"b"}}),
	)

	_, errCompute := scheduler.ComputeSchedule()
	require.NoError(t, errCompute)

	// single worker: a(0,3), b(3,7), c(7,9)
	require.Equal(
		t,
		[]MissedDeadline{
			{
				Name:     "b",
				Deadline: 5,
				EndTime:  7,
			},
		},
		scheduler.MissedDeadlines(),
	)

	require.Equal(t, 2, scheduler.MissedDeadlines()[0].MissedBy())
	require.Equal(t, 9, scheduler.TotalCompletionTime())
}

func TestMissedDeadlinesIgnoresSentinel(t *testing.T) {
	scheduler := newTestScheduler(
		t,
		1,
		mustEvent(t, &ParamsNewEvent{Name: "slow", Duration: 100}),
		mustEvent(t, &ParamsNewEvent{Name: "slower", Duration: 100, Dependencies: []string{"slow"}}),
	)

	_, errCompute := scheduler.ComputeSchedule()
	require.NoError(t, errCompute)

	require.Empty(
		t,
		scheduler.MissedDeadlines(),
		"events without a deadline are never reported",
	)
}

func TestMissedDeadlinesOrdering(t *testing.T) {
	scheduler := newTestScheduler(
		t,
		3,
		mustEvent(t, &ParamsNewEvent{Name: "x", Duration: 6, Deadline: 1}),
		mustEvent(t, &ParamsNewEvent{Name: "y", Duration: 6, Deadline: 2}),
		mustEvent(t, &ParamsNewEvent{Name: "z", Duration: 4, Deadline: 3}),
	)

	_, errCompute := scheduler.ComputeSchedule()
	require.NoError(t, errCompute)

	missed := scheduler.MissedDeadlines()
	require.Len(t, missed, 3)

	// ordered by end time, then name
	require.Equal(t, "z", missed[0].Name)
	require.Equal(t, "x", missed[1].Name)
	require.Equal(t, "y", missed[2].Name)
}

func TestScheduleReport(t *testing.T) {
	scheduler := newTestScheduler(
		t,
		2,
		mustEvent(t, &ParamsNewEvent{Name: "build", Duration: 3, Deadline: 2}),
		mustEvent(t, &ParamsNewEvent{Name: "test", Duration: 1, Dependencies: []string{"build"}}),
	)

	_, errCompute := scheduler.ComputeSchedule()
	require.NoError(t, errCompute)

	var report strings.Builder

	require.NoError(t, scheduler.ScheduleReport(&report))

	output := report.String()

	require.Contains(t, output, "Sorted Event Execution Order: [build test]")
	require.Contains(t, output, "Event build: Start at 0, End at 3 (Workers: 1, Deadline: 2)")
	require.Contains(t, output, "Event test: Start at 3, End at 4 (Workers: 1)")
	require.Contains(t, output, "Total Completion Time: 4")
	require.Contains(t, output, "Event build: Deadline was 2, finished at 3 (Missed by 1)")
}
