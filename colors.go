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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ColorScheme holds the lipgloss colors of the explore UI.
type ColorScheme struct {
	Primary     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.FgGreen)
	keyColor     = color.New(color.FgGreen)
)

// detectTerminalMode guesses whether the terminal has a light or dark background
func detectTerminalMode(getenv func(string) string) TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func colorSchemeFor(mode TerminalMode) *ColorScheme {
	if mode == TerminalModeLight {
		return &ColorScheme{
			Primary:     lipgloss.Color("4"),
			Border:      lipgloss.Color("8"),
			BorderFocus: lipgloss.Color("4"),
			Text:        lipgloss.Color("0"),
			TextMuted:   lipgloss.Color("240"),
			Success:     lipgloss.Color("2"),
			Error:       lipgloss.Color("1"),
		}
	}
	return &ColorScheme{
		Primary:     lipgloss.Color("39"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("243"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
	}
}

// GetColorScheme returns the scheme matching the current terminal
func GetColorScheme() *ColorScheme {
	return colorSchemeFor(detectTerminalMode(os.Getenv))
}

// statusOutput receives the status lines below; each ends in one newline
var statusOutput io.Writer = os.Stderr

func printSuccess(format string, args ...any) {
	successColor.Fprintf(statusOutput, "✅ "+format+"\n", args...)
}

func printInfo(format string, args ...any) {
	infoColor.Fprintf(statusOutput, "📝 "+format+"\n", args...)
}

func printWarning(format string, args ...any) {
	warningColor.Fprintf(statusOutput, "⚠️  "+format+"\n", args...)
}

func printError(format string, args ...any) {
	errorColor.Fprintf(statusOutput, "❌ "+format+"\n", args...)
}

func heading(s string) string {
	return headingColor.Sprint(s)
}

func key(s string) string {
	return keyColor.Sprint(s)
}

func highlight(v any) string {
	return successColor.Sprint(fmt.Sprint(v))
}
