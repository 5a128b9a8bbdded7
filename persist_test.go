package eventscheduler

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestScheduler(
		t,
		5,
		mustEvent(t, &ParamsNewEvent{Name: "build", Duration: 3, Priority: 2}),
		mustEvent(t, &ParamsNewEvent{Name: "test", Duration: 2, Dependencies: []string{"build"}, ResourcesRequired: 2, Deadline: 9}),
		mustEvent(t, &ParamsNewEvent{Name: "deploy", Duration: 1, Dependencies: []string{"test"}}),
	)

	destination := newTestScheduler(t, 1)

	require.NoError(
		t,
		destination.Import(source.Export(), true),
	)

	require.Equal(t, source.TotalResources, destination.TotalResources)
	require.Equal(t, source.Events(), destination.Events())
}

func TestImportDefaults(t *testing.T) {
	raw := `{
		"total_resources": 3,
		"tasks": [
			{"name": "minimal", "duration": 2},
			{"name": "full", "duration": 1, "dependencies": ["minimal"], "resources_required": 2, "priority": 4, "deadline": 8}
		]
	}`

	var fileSet FileEventSet

	require.NoError(t, json.Unmarshal([]byte(raw), &fileSet))

	scheduler := newTestScheduler(t, 1)
	require.NoError(t, scheduler.Import(&fileSet, true))

	require.Equal(t, 3, scheduler.TotalResources)

	minimal, exists := scheduler.Event("minimal")
	require.True(t, exists)

	require.Equal(
		t,
		&Event{
			Name:              "minimal",
			Duration:          2,
			Dependencies:      []string{},
			ResourcesRequired: 1,
			Priority:          1,
			Deadline:          NoDeadline,
		},
		minimal,
	)

	full, exists := scheduler.Event("full")
	require.True(t, exists)

	require.Equal(
		t,
		&Event{
			Name:              "full",
			Duration:          1,
			Dependencies:      []string{"minimal"},
			ResourcesRequired: 2,
			Priority:          4,
			Deadline:          8,
		},
		full,
	)
}

func TestImportInvalidTask(t *testing.T) {
	scheduler := newTestScheduler(t, 1)

	errImport := scheduler.Import(
		&FileEventSet{
			Tasks: []FileEvent{
				{Name: "broken"},
			},
		},
		true,
	)

	require.Error(t, errImport)
	require.ErrorContains(t, errImport, "broken")
}

func TestImportMerge(t *testing.T) {
	scheduler := newTestScheduler(
		t,
		2,
		mustEvent(t, &ParamsNewEvent{Name: "existing", Duration: 1}),
	)

	require.NoError(
		t,
		scheduler.Import(
			&FileEventSet{
				Tasks: []FileEvent{
					{Name: "incoming", Duration: 2},
				},
			},
			false,
		),
	)

	require.Equal(t, 2, scheduler.NumberEvents())

	_, exists := scheduler.Event("existing")
	require.True(t, exists)

	// zero total_resources in the file leaves the pool untouched
	require.Equal(t, 2, scheduler.TotalResources)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	source := newTestScheduler(
		t,
		4,
		mustEvent(t, &ParamsNewEvent{Name: "build", Duration: 3}),
		mustEvent(t, &ParamsNewEvent{Name: "test", Duration: 2, Dependencies: []string{"build"}, Deadline: 6}),
	)

	require.NoError(t, source.SaveToFile(path))

	destination := newTestScheduler(t, 1)
	require.NoError(t, destination.LoadFromFile(path, true))

	require.Equal(t, 4, destination.TotalResources)
	require.Equal(t, source.Events(), destination.Events())
}

func TestLoadFileErrors(t *testing.T) {
	scheduler := newTestScheduler(t, 1)

	require.Error(
		t,
		scheduler.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"), true),
	)
}
