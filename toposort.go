package eventscheduler

import (
	"container/heap"
	"sort"
)

// TopologicalOrder returns every registered event exactly once, each after
// all its dependencies. Kahn's algorithm, drained level by level: every
// currently ready event is popped in (priority, name) order before the
// events it released are seeded back. Level batching keeps tie-breaking
// independent of how readiness rounds interleave.
func (s *Scheduler) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(s.events))
	dependents := make(map[string][]string, len(s.events))

	names := s.sortedEventNames()

	for _, name := range names {
		inDegree[name] = 0
	}

	for _, name := range names {
		for _, dependency := range s.events[name].Dependencies {
			if _, exists := s.events[dependency]; !exists {
				return nil,
					ErrUnknownDependency{
						EventName:  name,
						Dependency: dependency,
					}
			}

			dependents[dependency] = append(dependents[dependency], name)
			inDegree[name]++
		}
	}

	ready := &readyQueue{}

	for _, name := range names {
		if inDegree[name] == 0 {
			*ready = append(
				*ready,
				readyEvent{
					Priority: s.events[name].Priority,
					Name:     name,
				},
			)
		}
	}

	heap.Init(ready)

	order := make([]string, 0, len(s.events))

	for ready.Len() > 0 {
		// drain the whole level before seeding the next one
		batch := make([]string, 0, ready.Len())

		for ready.Len() > 0 {
			batch = append(
				batch,
				heap.Pop(ready).(readyEvent).Name,
			)
		}

		var newlyReady []string

		for _, current := range batch {
			order = append(order, current)

			for _, dependent := range dependents[current] {
				inDegree[dependent]--

				if inDegree[dependent] == 0 {
					newlyReady = append(newlyReady, dependent)
				}
			}
		}

		for _, name := range newlyReady {
			heap.Push(
				ready,
				readyEvent{
					Priority: s.events[name].Priority,
					Name:     name,
				},
			)
		}
	}

	if len(order) != len(s.events) {
		return nil,
			ErrDependencyCycle{
				Remaining: remainingAfterSort(names, order),
			}
	}

	return order, nil
}

func remainingAfterSort(all, sorted []string) []string {
	placed := make(map[string]struct{}, len(sorted))

	for _, name := range sorted {
		placed[name] = struct{}{}
	}

	var remaining []string

	for _, name := range all {
		if _, wasPlaced := placed[name]; !wasPlaced {
			remaining = append(remaining, name)
		}
	}

	sort.Strings(remaining)

	return remaining
}
