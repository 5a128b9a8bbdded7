package main

import (
	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	styleHeading = color.New(color.Bold, color.FgCyan).SprintFunc()
	styleOK      = color.New(color.FgGreen).SprintFunc()
	styleWarning = color.New(color.Bold, color.FgYellow).SprintFunc()
	styleError   = color.New(color.Bold, color.FgRed).SprintFunc()
	styleDim     = color.New(color.Faint).SprintFunc()
)
