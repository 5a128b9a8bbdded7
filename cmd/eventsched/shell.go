package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	eventscheduler "github.com/TudorHulban/eventscheduler"
)

const menuSeparator = "======================================================================"

type shell struct {
	scheduler *eventscheduler.Scheduler
	input     *bufio.Scanner
}

func newShell(totalResources int) (*shell, error) {
	scheduler, errNew := eventscheduler.NewScheduler(
		&eventscheduler.ParamsNewScheduler{
			TotalResources: totalResources,
		},
	)
	if errNew != nil {
		return nil, errNew
	}

	return &shell{
			scheduler: scheduler,
			input:     bufio.NewScanner(os.Stdin),
		},
		nil
}

func (sh *shell) printMenu() {
	fmt.Println("\n" + menuSeparator)
	fmt.Println(styleHeading("Event Scheduling System - Main Menu"))
	fmt.Println(menuSeparator)
	fmt.Println("1. Add a new event")
	fmt.Println("2. View all events")
	fmt.Println("3. Remove an event")
	fmt.Println("4. Modify an event")
	fmt.Println("5. Generate schedule")
	fmt.Println("6. View current schedule")
	fmt.Println("7. Check deadlines")
	fmt.Println("8. Load events from JSON file")
	fmt.Println("9. Save events to JSON file")
	fmt.Println("0. Exit")
	fmt.Println(menuSeparator)
}

func (sh *shell) loop() error {
	ctx := context.Background()

	fmt.Println("\n" + menuSeparator)
	fmt.Println(styleHeading("Welcome to the Event Scheduling System"))
	fmt.Println(menuSeparator)
	fmt.Printf(
		"\nScheduler initialized with %d workers.\n",
		sh.scheduler.TotalResources,
	)

	if strings.EqualFold(sh.promptLine("\nLoad events from JSON file? (y/n): "), "y") {
		sh.loadFromFile(sh.promptLine("Enter filename: "))
	}

	for {
		sh.printMenu()

		switch sh.promptLine("\nEnter your choice (0-9): ") {
		case "1":
			sh.addEvent(ctx)
		case "2":
			sh.viewEvents()
		case "3":
			sh.removeEvent(ctx)
		case "4":
			sh.modifyEvent(ctx)
		case "5":
			sh.generateSchedule()
		case "6":
			sh.viewSchedule()
		case "7":
			sh.checkDeadlines()
		case "8":
			sh.loadFromFile(sh.promptLine("Enter filename to load: "))
		case "9":
			sh.saveToFile(sh.promptLine("Enter filename to save: "))
		case "0":
			fmt.Println("\nThank you for using the Event Scheduling System!")

			return nil
		default:
			fmt.Println(styleError("\nInvalid choice."))
		}
	}
}

func (sh *shell) addEvent(ctx context.Context) {
	fmt.Println(styleHeading("\n--- Add New Event ---"))

	name := sh.promptLine("Event name: ")
	if name == "" {
		fmt.Println(styleError("Event name cannot be empty!"))

		return
	}

	if _, exists := sh.scheduler.Event(name); exists {
		fmt.Printf("%s\n", styleError(fmt.Sprintf("Event '%s' already exists!", name)))

		return
	}

	event, errNew := eventscheduler.NewEvent(
		&eventscheduler.ParamsNewEvent{
			Name:     name,
			Duration: sh.promptInt("Duration: ", 0, false),

			Dependencies:      sh.promptList("Dependencies (comma-separated, leave empty for none): "),
			ResourcesRequired: sh.promptInt("Workers required: ", eventscheduler.DefaultResourcesRequired, false),
			Priority:          sh.promptInt("Priority (1=highest): ", eventscheduler.DefaultPriority, false),
			Deadline:          sh.promptInt("Deadline (-1 for no deadline): ", eventscheduler.NoDeadline, true),
		},
	)
	if errNew != nil {
		fmt.Printf("%s %v\n", styleError("Could not add event:"), errNew)

		return
	}

	sh.scheduler.AddEvent(ctx, event)
	fmt.Printf("Event '%s' added.\n", name)
}

func (sh *shell) viewEvents() {
	if sh.scheduler.NumberEvents() == 0 {
		fmt.Println("\nNo events in the system.")

		return
	}

	fmt.Println(styleHeading("\n--- All Events ---"))

	for _, event := range sh.scheduler.Events() {
		dependencies := "None"
		if len(event.Dependencies) > 0 {
			dependencies = strings.Join(event.Dependencies, ", ")
		}

		deadline := "No deadline"
		if event.HasDeadline() {
			deadline = fmt.Sprintf("%d", event.Deadline)
		}

		fmt.Printf("\nEvent: %s\n", event.Name)
		fmt.Printf("  Duration: %d\n", event.Duration)
		fmt.Printf("  Dependencies: %s\n", dependencies)
		fmt.Printf("  Workers Required: %d\n", event.ResourcesRequired)
		fmt.Printf("  Priority: %d\n", event.Priority)
		fmt.Printf("  Deadline: %s\n", deadline)
	}
}

func (sh *shell) removeEvent(ctx context.Context) {
	if sh.scheduler.NumberEvents() == 0 {
		fmt.Println("\nNo events to remove.")

		return
	}

	fmt.Println(styleHeading("\n--- Remove Event ---"))

	name := sh.promptLine("Event name to remove: ")

	if sh.scheduler.RemoveEvent(ctx, name) {
		fmt.Printf("Event '%s' removed.\n", name)

		return
	}

	fmt.Printf("Event '%s' not found.\n", name)
}

func (sh *shell) modifyEvent(ctx context.Context) {
	if sh.scheduler.NumberEvents() == 0 {
		fmt.Println("\nNo events to modify.")

		return
	}

	fmt.Println(styleHeading("\n--- Modify Event ---"))

	name := sh.promptLine("Event name to modify: ")

	event, exists := sh.scheduler.Event(name)
	if !exists {
		fmt.Printf("Event '%s' not found.\n", name)

		return
	}

	fmt.Printf("\nCurrent values for event '%s':\n%s\n", name, event)
	fmt.Println("\nEnter new values (press Enter to keep current value):")

	var updates eventscheduler.ParamsModifyEvent

	if raw := sh.promptLine(fmt.Sprintf("Duration [%d]: ", event.Duration)); raw != "" {
		updates.Duration = sh.parseIntOrSkip(raw)
	}

	if raw := sh.promptLine("Dependencies [" + strings.Join(event.Dependencies, ", ") + "]: "); raw != "" {
		dependencies := splitList(raw)
		updates.Dependencies = &dependencies
	}

	if raw := sh.promptLine(fmt.Sprintf("Workers Required [%d]: ", event.ResourcesRequired)); raw != "" {
		updates.ResourcesRequired = sh.parseIntOrSkip(raw)
	}

	if raw := sh.promptLine(fmt.Sprintf("Priority [%d]: ", event.Priority)); raw != "" {
		updates.Priority = sh.parseIntOrSkip(raw)
	}

	if raw := sh.promptLine(fmt.Sprintf("Deadline [%d]: ", event.Deadline)); raw != "" {
		updates.Deadline = sh.parseIntOrSkip(raw)
	}

	if updates == (eventscheduler.ParamsModifyEvent{}) {
		fmt.Println("No changes made.")

		return
	}

	sh.scheduler.ModifyEvent(ctx, name, &updates)
	fmt.Printf("Event '%s' modified.\n", name)
}

func (sh *shell) generateSchedule() {
	if sh.scheduler.NumberEvents() == 0 {
		fmt.Println("\nNo events to schedule.")

		return
	}

	fmt.Println(styleHeading("\n--- Generating Schedule ---"))

	if _, errCompute := sh.scheduler.ComputeSchedule(); errCompute != nil {
		var deadlock eventscheduler.ErrSchedulingDeadlock

		if !errors.As(errCompute, &deadlock) {
			fmt.Printf("%s %v\n", styleError("\nError generating schedule:"), errCompute)

			return
		}

		fmt.Printf("%s %v\n", styleWarning("\nPartial schedule:"), errCompute)
	}

	if errReport := sh.scheduler.ScheduleReport(os.Stdout); errReport != nil {
		fmt.Printf("%s %v\n", styleError("\nError printing schedule:"), errReport)
	}
}

func (sh *shell) viewSchedule() {
	if len(sh.scheduler.Schedule()) == 0 {
		fmt.Println("\nNo schedule generated yet. Use option 5 to generate a schedule.")

		return
	}

	if errReport := sh.scheduler.ScheduleReport(os.Stdout); errReport != nil {
		fmt.Printf("%s %v\n", styleError("\nError printing schedule:"), errReport)
	}
}

func (sh *shell) checkDeadlines() {
	if len(sh.scheduler.Schedule()) == 0 {
		fmt.Println("\nNo schedule generated yet. Use option 5 to generate a schedule.")

		return
	}

	fmt.Println(styleHeading("\n--- Deadline Status ---"))

	missed := sh.scheduler.MissedDeadlines()
	if len(missed) == 0 {
		fmt.Println(styleOK("All deadlines met."))

		return
	}

	fmt.Println(styleError("Deadline Violations:"))

	for _, violation := range missed {
		fmt.Printf(
			"  Event %s: Deadline was %d, finished at %d (Missed by %d)\n",

			violation.Name,
			violation.Deadline,
			violation.EndTime,
			violation.MissedBy(),
		)
	}
}

func (sh *shell) loadFromFile(path string) {
	replaceExisting := true

	if sh.scheduler.NumberEvents() > 0 {
		replaceExisting = strings.EqualFold(
			sh.promptLine("Clear existing events? (y/n): "),
			"y",
		)
	}

	if errLoad := sh.scheduler.LoadFromFile(path, replaceExisting); errLoad != nil {
		fmt.Printf("%s %v\n", styleError("Error loading file:"), errLoad)

		return
	}

	fmt.Printf(
		"Loaded %d events from '%s'\n",
		sh.scheduler.NumberEvents(),
		path,
	)
	fmt.Printf(
		"Total workers available: %d\n",
		sh.scheduler.TotalResources,
	)
}

func (sh *shell) saveToFile(path string) {
	if errSave := sh.scheduler.SaveToFile(path); errSave != nil {
		fmt.Printf("%s %v\n", styleError("Error saving file:"), errSave)

		return
	}

	fmt.Printf(
		"Saved %d events to '%s'\n",
		sh.scheduler.NumberEvents(),
		path,
	)
}
