package eventscheduler

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileEvent is one task entry of the persisted event set. Only the name
// and duration are mandatory, absent fields take the event defaults.
type FileEvent struct {
	Name              string   `json:"name"`
	Duration          int      `json:"duration"`
	Dependencies      []string `json:"dependencies,omitempty"`
	ResourcesRequired int      `json:"resources_required,omitempty"`
	Priority          int      `json:"priority,omitempty"`
	Deadline          int      `json:"deadline,omitempty"`
}

// FileEventSet is the on-disk shape of a scheduler: the worker pool size
// plus every registered event.
type FileEventSet struct {
	TotalResources int         `json:"total_resources"`
	Tasks          []FileEvent `json:"tasks"`
}

// Export serializes the registry into the persisted shape,
// tasks sorted by name so saved files are stable.
func (s *Scheduler) Export() *FileEventSet {
	tasks := make([]FileEvent, 0, len(s.events))

	for _, name := range s.sortedEventNames() {
		event := s.events[name]

		tasks = append(
			tasks,
			FileEvent{
				Name:              event.Name,
				Duration:          event.Duration,
				Dependencies:      event.Dependencies,
				ResourcesRequired: event.ResourcesRequired,
				Priority:          event.Priority,
				Deadline:          event.Deadline,
			},
		)
	}

	return &FileEventSet{
		TotalResources: s.TotalResources,
		Tasks:          tasks,
	}
}

// Import rebuilds the registry from the persisted shape. Every task goes
// through NewEvent so defaults and validation apply. A positive
// total_resources replaces the current pool size. With replaceExisting
// the current events and schedule are dropped first, otherwise imported
// tasks are merged over the existing set.
func (s *Scheduler) Import(fileSet *FileEventSet, replaceExisting bool) error {
	if replaceExisting {
		s.events = map[string]*Event{}
		s.schedule = map[string]Interval{}
	}

	for _, task := range fileSet.Tasks {
		event, errNew := NewEvent(
			&ParamsNewEvent{
				Name:     task.Name,
				Duration: task.Duration,

				Dependencies:      task.Dependencies,
				ResourcesRequired: task.ResourcesRequired,
				Priority:          task.Priority,
				Deadline:          task.Deadline,
			},
		)
		if errNew != nil {
			return fmt.Errorf(
				"import task '%s': %w",
				task.Name,
				errNew,
			)
		}

		s.events[event.Name] = event
	}

	if fileSet.TotalResources > 0 {
		s.TotalResources = fileSet.TotalResources
	}

	return nil
}

// SaveToFile writes the exported event set as indented JSON.
func (s *Scheduler) SaveToFile(path string) error {
	data, errMarshal := json.MarshalIndent(s.Export(), "", "  ")
	if errMarshal != nil {
		return fmt.Errorf("marshal event set: %w", errMarshal)
	}

	if errWrite := os.WriteFile(path, data, 0644); errWrite != nil {
		return fmt.Errorf("write event set: %w", errWrite)
	}

	return nil
}

// LoadFromFile reads a persisted event set and imports it.
func (s *Scheduler) LoadFromFile(path string, replaceExisting bool) error {
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return fmt.Errorf("read event set: %w", errRead)
	}

	var fileSet FileEventSet

	if errUnmarshal := json.Unmarshal(data, &fileSet); errUnmarshal != nil {
		return fmt.Errorf("parse event set: %w", errUnmarshal)
	}

	return s.Import(&fileSet, replaceExisting)
}
