// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ColorScheme struct {
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI codes for plain console output, set by InitializeColors.
var (
	Green = "\033[92m"
	Red   = "\033[91m"
	Reset = "\033[0m"
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode(getenv func(string) string) TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, key := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(getenv(key))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// createLightColorScheme returns a color scheme optimized for light terminals
func createLightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:     lipgloss.Color("4"), // Dark Blue for better contrast
		Accent:      lipgloss.Color("5"),
		Success:     lipgloss.Color("2"),
		Error:       lipgloss.Color("1"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
	}
}

// createDarkColorScheme returns a color scheme optimized for dark terminals
func createDarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:     lipgloss.Color("39"),
		Accent:      lipgloss.Color("205"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
	}
}

// InitializeColors detects the terminal mode, sets the ANSI codes used for
// console output and returns the matching scheme for the shell.
func InitializeColors() (TerminalMode, ColorScheme) {
	mode := detectTerminalMode(os.Getenv)
	if mode == TerminalModeLight {
		Green, Red = "\033[32m", "\033[31m"
		return mode, createLightColorScheme()
	}
	Green, Red = "\033[92m", "\033[91m"
	return mode, createDarkColorScheme()
}
