package eventscheduler

import (
	"context"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Scheduler is the event registry plus the owner of the computed schedule.
// TotalResources is the fixed pool of fungible workers shared by all
// concurrently running events.
type Scheduler struct {
	TotalResources int

	events   map[string]*Event
	schedule map[string]Interval
}

type ParamsNewScheduler struct {
	TotalResources int `valid:"required"`
}

func NewScheduler(params *ParamsNewScheduler) (*Scheduler, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "EventScheduler",
				Caller:      "NewScheduler",
				Issue:       errValidation,
			}
	}

	if params.TotalResources < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewScheduler",
				Issue: goerrors.ErrNegativeInput{
					InputName: "TotalResources",
				},
			}
	}

	return &Scheduler{
			TotalResources: params.TotalResources,

			events:   map[string]*Event{},
			schedule: map[string]Interval{},
		},
		nil
}

// AddEvent inserts the event, overwriting any event with the same name.
// Dependency names are not resolved here, resolution is deferred
// to sort time so events can be added in any order.
func (s *Scheduler) AddEvent(_ context.Context, event *Event) {
	s.events[event.Name] = event
}

// RemoveEvent deletes the named event together with its stale schedule
// entry and reports whether the event existed.
func (s *Scheduler) RemoveEvent(_ context.Context, name string) bool {
	if _, exists := s.events[name]; !exists {
		return false
	}

	delete(s.events, name)
	delete(s.schedule, name)

	return true
}

// ParamsModifyEvent is a partial update, nil fields keep the current value.
type ParamsModifyEvent struct {
	Duration          *int
	Dependencies      *[]string
	ResourcesRequired *int
	Priority          *int
	Deadline          *int
}

// ModifyEvent applies the non-nil fields to the named event and reports
// whether the event exists. An already computed schedule is not
// invalidated, callers re-run ComputeSchedule to see the effects.
func (s *Scheduler) ModifyEvent(_ context.Context, name string, params *ParamsModifyEvent) bool {
	event, exists := s.events[name]
	if !exists {
		return false
	}

	if params.Duration != nil {
		event.Duration = *params.Duration
	}

	if params.Dependencies != nil {
		event.Dependencies = normalizeDependencies(*params.Dependencies)
	}

	if params.ResourcesRequired != nil {
		event.ResourcesRequired = *params.ResourcesRequired
	}

	if params.Priority != nil {
		event.Priority = *params.Priority
	}

	if params.Deadline != nil {
		event.Deadline = ternary(*params.Deadline <= 0, NoDeadline, *params.Deadline)
	}

	return true
}

// Event returns the named event if registered.
func (s *Scheduler) Event(name string) (*Event, bool) {
	event, exists := s.events[name]

	return event, exists
}

// Events returns all registered events sorted by name.
func (s *Scheduler) Events() []*Event {
	result := make([]*Event, 0, len(s.events))

	for _, event := range s.events {
		result = append(result, event)
	}

	sort.Slice(
		result,
		func(i, j int) bool {
			return result[i].Name < result[j].Name
		},
	)

	return result
}

func (s *Scheduler) NumberEvents() int {
	return len(s.events)
}

// Schedule returns a copy of the last computed schedule.
func (s *Scheduler) Schedule() map[string]Interval {
	result := make(map[string]Interval, len(s.schedule))

	for name, interval := range s.schedule {
		result[name] = interval
	}

	return result
}

func (s *Scheduler) sortedEventNames() []string {
	names := make([]string, 0, len(s.events))

	for name := range s.events {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
