package engine

import "strings"

// command is a global instruction recognized outside the strict
// numeric-menu phases.
type command int

const (
	cmdNone command = iota
	cmdRestart
	cmdCareers
	cmdMore
	cmdResume
)

// parseCommand matches the global command words, case-insensitively.
// Commands are English keywords on every language track, matching how
// the service is advertised ("Reply CAREERS...").
func parseCommand(input string) command {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "START", "RESTART":
		return cmdRestart
	case "CAREERS":
		return cmdCareers
	case "MORE":
		return cmdMore
	case "RESUME":
		return cmdResume
	}
	return cmdNone
}

// isDigits reports whether the input is a bare digit string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
