package main

import (
	"fmt"
	"strconv"
	"strings"
)

func (sh *shell) promptLine(prompt string) string {
	fmt.Print(prompt)

	if !sh.input.Scan() {
		return ""
	}

	return strings.TrimSpace(sh.input.Text())
}

// promptInt re-asks until it gets a valid integer, an empty answer
// takes the default.
func (sh *shell) promptInt(prompt string, defaultValue int, allowNegative bool) int {
	for {
		raw := sh.promptLine(prompt)
		if raw == "" {
			return defaultValue
		}

		value, errParse := strconv.Atoi(raw)
		if errParse != nil {
			fmt.Println(styleDim("Invalid input. Please enter a number."))

			continue
		}

		if value < 0 && !allowNegative {
			fmt.Println(styleDim("Please enter a non-negative number."))

			continue
		}

		return value
	}
}

func (sh *shell) parseIntOrSkip(raw string) *int {
	value, errParse := strconv.Atoi(raw)
	if errParse != nil {
		fmt.Println(styleDim("Invalid number, keeping current value."))

		return nil
	}

	return &value
}

func (sh *shell) promptList(prompt string) []string {
	return splitList(sh.promptLine(prompt))
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var result []string

	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
