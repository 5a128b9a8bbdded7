package eventscheduler

import (
	"fmt"
	"io"
)

// ScheduleReport writes the topological execution order, the per-event
// intervals, the total completion time and the deadline section of the
// current schedule.
func (s *Scheduler) ScheduleReport(w io.Writer) error {
	order, errSort := s.TopologicalOrder()
	if errSort != nil {
		return errSort
	}

	fmt.Fprintf(w, "Sorted Event Execution Order: %v\n", order)
	fmt.Fprintln(w, "\nEvent Schedule:")

	for _, name := range order {
		interval, wasScheduled := s.schedule[name]
		if !wasScheduled {
			continue
		}

		event := s.events[name]

		fmt.Fprintf(
			w,
			"Event %s: Start at %d, End at %d (Workers: %d%s)\n",

			name,
			interval.Start,
			interval.End,
			event.ResourcesRequired,
			ternary(
				event.HasDeadline(),
				fmt.Sprintf(", Deadline: %d", event.Deadline),
				"",
			),
		)
	}

	fmt.Fprintf(w, "\nTotal Completion Time: %d\n", s.TotalCompletionTime())

	missed := s.MissedDeadlines()
	if len(missed) == 0 {
		fmt.Fprintln(w, "\nAll deadlines met.")

		return nil
	}

	fmt.Fprintln(w, "\nDEADLINE VIOLATIONS:")

	for _, violation := range missed {
		fmt.Fprintf(
			w,
			"Event %s: Deadline was %d, finished at %d (Missed by %d)\n",

			violation.Name,
			violation.Deadline,
			violation.EndTime,
			violation.MissedBy(),
		)
	}

	return nil
}
