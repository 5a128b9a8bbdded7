package eventscheduler

import (
	"sort"
)

// MissedDeadline pairs an event with its declared deadline and the end
// time the schedule actually assigned it.
type MissedDeadline struct {
	Name     string
	Deadline int
	EndTime  int
}

func (m MissedDeadline) MissedBy() int {
	return m.EndTime - m.Deadline
}

// MissedDeadlines reports every scheduled event whose end time exceeds
// its declared deadline, ordered by (end time, name). Events without
// a deadline are never reported.
func (s *Scheduler) MissedDeadlines() []MissedDeadline {
	var missed []MissedDeadline

	for name, interval := range s.schedule {
		event, exists := s.events[name]
		if !exists {
			continue
		}

		if event.HasDeadline() && interval.End > event.Deadline {
			missed = append(
				missed,
				MissedDeadline{
					Name:     name,
					Deadline: event.Deadline,
					EndTime:  interval.End,
				},
			)
		}
	}

	sort.Slice(
		missed,
		func(i, j int) bool {
			if missed[i].EndTime != missed[j].EndTime {
				return missed[i].EndTime < missed[j].EndTime
			}

			return missed[i].Name < missed[j].Name
		},
	)

	return missed
}

// TotalCompletionTime returns the makespan of the computed schedule,
// zero when no schedule was computed.
func (s *Scheduler) TotalCompletionTime() int {
	var result int

	for _, interval := range s.schedule {
		if interval.End > result {
			result = interval.End
		}
	}

	return result
}
