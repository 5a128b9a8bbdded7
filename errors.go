package eventscheduler

import (
	"fmt"
	"strings"
)

// ErrUnknownDependency reports an event depending on a name
// that is not registered with the scheduler.
type ErrUnknownDependency struct {
	EventName  string
	Dependency string
}

func (e ErrUnknownDependency) Error() string {
	return fmt.Sprintf(
		"event '%s' depends on unknown event '%s'",
		e.EventName,
		e.Dependency,
	)
}

// ErrDependencyCycle reports a cycle among the registered events.
// Remaining holds, sorted by name, the events the sort could not place.
type ErrDependencyCycle struct {
	Remaining []string
}

func (e ErrDependencyCycle) Error() string {
	return fmt.Sprintf(
		"cycle detected in event dependencies, unsortable events: %s",
		strings.Join(e.Remaining, ", "),
	)
}

// ErrSchedulingDeadlock reports a simulation stall: ready events exist,
// none fits the remaining capacity and nothing active will free workers.
// The schedule computed so far is still returned alongside this error.
type ErrSchedulingDeadlock struct {
	Unscheduled []string
}

func (e ErrSchedulingDeadlock) Error() string {
	return fmt.Sprintf(
		"scheduling deadlock, events left unscheduled: %s",
		strings.Join(e.Unscheduled, ", "),
	)
}
