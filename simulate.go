package eventscheduler

import (
	"container/heap"
	"sort"
)

// ComputeSchedule assigns a start/end interval to every registered event
// so that no event starts before its dependencies end and the sum of
// worker requirements of concurrently running events never exceeds
// TotalResources. Greedy earliest-start, first fit in (priority, name)
// order - a smaller lower-priority event may be admitted ahead of a
// higher-priority one that does not fit the remaining capacity.
//
// The previous schedule is cleared before anything else: on a sort error
// the scheduler is left with an empty schedule rather than a stale one.
// On deadlock the partial schedule is returned together with
// ErrSchedulingDeadlock.
func (s *Scheduler) ComputeSchedule() (map[string]Interval, error) {
	s.schedule = make(map[string]Interval, len(s.events))

	order, errSort := s.TopologicalOrder()
	if errSort != nil {
		return nil, errSort
	}

	ready := &readyQueue{}
	waiting := make(map[string]map[string]struct{})

	for _, name := range order {
		event := s.events[name]

		if len(event.Dependencies) == 0 {
			heap.Push(
				ready,
				readyEvent{
					Priority: event.Priority,
					Name:     name,
				},
			)

			continue
		}

		pending := make(map[string]struct{}, len(event.Dependencies))

		for _, dependency := range event.Dependencies {
			pending[dependency] = struct{}{}
		}

		waiting[name] = pending
	}

	var (
		currentTime   int
		usedResources int
	)

	active := &activeQueue{}

	for ready.Len() > 0 || active.Len() > 0 || len(waiting) > 0 {
		s.retireCompleted(currentTime, active, ready, waiting, &usedResources)

		admitted := s.admitReady(currentTime, ready, active, &usedResources)

		if active.Len() > 0 {
			// jump to the next completion
			currentTime = (*active)[0].EndTime

			continue
		}

		if !admitted && ready.Len()+len(waiting) > 0 {
			// nothing runs, nothing fits, nothing will ever free workers
			return s.Schedule(),
				ErrSchedulingDeadlock{
					Unscheduled: s.unscheduledNames(),
				}
		}
	}

	return s.Schedule(), nil
}

// retireCompleted pops every active event ending at the current instant,
// frees its workers and releases waiters whose last dependency it was.
func (s *Scheduler) retireCompleted(
	currentTime int,
	active *activeQueue,
	ready *readyQueue,
	waiting map[string]map[string]struct{},
	usedResources *int,
) {
	for active.Len() > 0 && (*active)[0].EndTime == currentTime {
		completed := heap.Pop(active).(activeEvent)
		*usedResources -= completed.Resources

		for name, pending := range waiting {
			if _, depends := pending[completed.Name]; !depends {
				continue
			}

			delete(pending, completed.Name)

			if len(pending) == 0 {
				delete(waiting, name)

				heap.Push(
					ready,
					readyEvent{
						Priority: s.events[name].Priority,
						Name:     name,
					},
				)
			}
		}
	}
}

// admitReady scans the whole ready queue in (priority, name) order,
// starts every event that fits the remaining capacity and defers the
// rest to the next pass. Reports whether anything was admitted.
func (s *Scheduler) admitReady(
	currentTime int,
	ready *readyQueue,
	active *activeQueue,
	usedResources *int,
) bool {
	var deferred []readyEvent

	admitted := false

	for ready.Len() > 0 {
		candidate := heap.Pop(ready).(readyEvent)
		event := s.events[candidate.Name]

		if *usedResources+event.ResourcesRequired > s.TotalResources {
			deferred = append(deferred, candidate)

			continue
		}

		// dependencies are complete by construction, deferring to their
		// recorded end times guards the exact-completion instant
		startTime := currentTime

		for _, dependency := range event.Dependencies {
			if endTime := s.schedule[dependency].End; endTime > startTime {
				startTime = endTime
			}
		}

		endTime := startTime + event.Duration

		s.schedule[candidate.Name] = Interval{
			Start: startTime,
			End:   endTime,
		}

		*usedResources += event.ResourcesRequired

		heap.Push(
			active,
			activeEvent{
				EndTime:   endTime,
				Name:      candidate.Name,
				Resources: event.ResourcesRequired,
			},
		)

		admitted = true
	}

	for _, candidate := range deferred {
		heap.Push(ready, candidate)
	}

	return admitted
}

func (s *Scheduler) unscheduledNames() []string {
	var result []string

	for name := range s.events {
		if _, wasScheduled := s.schedule[name]; !wasScheduled {
			result = append(result, name)
		}
	}

	sort.Strings(result)

	return result
}
