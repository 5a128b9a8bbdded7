package eventscheduler

import (
	"fmt"
	"slices"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// NoDeadline marks an event that has no completion deadline.
const NoDeadline = -1

const (
	DefaultResourcesRequired = 1
	DefaultPriority          = 1
)

// Event is a unit of work with a duration, precedence constraints,
// a worker requirement, a tie-breaking priority and an optional deadline.
type Event struct {
	Name              string
	Duration          int
	Dependencies      []string
	ResourcesRequired int
	Priority          int
	Deadline          int
}

type ParamsNewEvent struct {
	Name     string `valid:"required"`
	Duration int    `valid:"required"`

	Dependencies      []string
	ResourcesRequired int
	Priority          int
	Deadline          int
}

// NewEvent validates the passed params and applies the documented defaults:
// one worker, priority one, no deadline. Zero values on the optional
// fields are treated as absent.
func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "EventScheduler",
				Caller:      "NewEvent",
				Issue:       errValidation,
			}
	}

	if params.Duration < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Duration",
				},
			}
	}

	if params.ResourcesRequired < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrNegativeInput{
					InputName: "ResourcesRequired",
				},
			}
	}

	if slices.Contains(params.Dependencies, params.Name) {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrInvalidInput{
					InputName: "Dependencies - event cannot depend on itself",
				},
			}
	}

	return &Event{
			Name:     params.Name,
			Duration: params.Duration,

			Dependencies:      normalizeDependencies(params.Dependencies),
			ResourcesRequired: ternary(params.ResourcesRequired == 0, DefaultResourcesRequired, params.ResourcesRequired),
			Priority:          ternary(params.Priority == 0, DefaultPriority, params.Priority),
			Deadline:          ternary(params.Deadline <= 0, NoDeadline, params.Deadline),
		},
		nil
}

// normalizeDependencies returns a per-event copy with duplicates dropped,
// so dependency slices are never aliased between events.
func normalizeDependencies(dependencies []string) []string {
	result := make([]string, 0, len(dependencies))

	for _, dependency := range dependencies {
		if slices.Contains(result, dependency) {
			continue
		}

		result = append(result, dependency)
	}

	return result
}

func (ev *Event) HasDeadline() bool {
	return ev.Deadline > 0
}

func (ev *Event) String() string {
	var sb strings.Builder

	sb.WriteString("Event{\n")
	sb.WriteString(fmt.Sprintf("\tName: %q,\n", ev.Name))
	sb.WriteString(fmt.Sprintf("\tDuration: %d,\n", ev.Duration))

	if len(ev.Dependencies) > 0 {
		sb.WriteString(fmt.Sprintf("\tDependencies: %q,\n", ev.Dependencies))
	} else {
		sb.WriteString("\tDependencies: nil,\n")
	}

	sb.WriteString(fmt.Sprintf("\tResourcesRequired: %d,\n", ev.ResourcesRequired))
	sb.WriteString(fmt.Sprintf("\tPriority: %d,\n", ev.Priority))

	if ev.HasDeadline() {
		sb.WriteString(fmt.Sprintf("\tDeadline: %d,\n", ev.Deadline))
	} else {
		sb.WriteString("\tDeadline: none,\n")
	}

	sb.WriteString("}")

	return sb.String()
}
