package cli

import (
	"regexp"
	"strings"
)

type command int

const (
	cmdMove command = iota
	cmdHelp
	cmdActions
	cmdRules
	cmdDebug
	cmdExit
	cmdUnknown
)

var movePattern = regexp.MustCompile(`^[a-hA-H][1-8]$`)

// parseInput classifies a line of user input as either a move in field
// notation or one of the game commands. For moves the normalized field is
// returned alongside.
func parseInput(line string) (command, string) {
	line = strings.TrimSpace(line)

	if movePattern.MatchString(line) {
		return cmdMove, strings.ToLower(line)
	}

	switch strings.ToLower(line) {
	case "help":
		return cmdHelp, ""
	case "actions":
		return cmdActions, ""
	case "rules":
		return cmdRules, ""
	case "debug":
		return cmdDebug, ""
	case "exit":
		return cmdExit, ""
	}

	return cmdUnknown, ""
}
