package main

import (
	"testing"

	"github.com/urfave/cli/v2"
)

func TestAllFlagsExistInHelp(t *testing.T) {
	// If this test is failing, it is because you've recently added/removed a
	// flag in main.go, but did not add/remove it to the usage.go
	// flag grouping (appHelpFlagGroups).

	var helpFlags []cli.Flag
	for _, group := range appHelpFlagGroups {
		helpFlags = append(helpFlags, group.Flags...)
	}
	allFlags := append([]cli.Flag{}, appFlags...)
	allFlags = append(allFlags, serveFlags...)
	for _, command := range newApp().Commands {
		allFlags = append(allFlags, command.Flags...)
	}

	for _, flag := range allFlags {
		if !doesFlagExist(flag, helpFlags) {
			t.Errorf("Flag %s does not exist in help/usage flags.", flag.Names()[0])
		}
	}
	for _, flag := range helpFlags {
		if !doesFlagExist(flag, allFlags) {
			t.Errorf("Flag %s does not exist in main.go, but exists in help flags", flag.Names()[0])
		}
	}
}

func doesFlagExist(flag cli.Flag, flags []cli.Flag) bool {
	for _, f := range flags {
		if f.Names()[0] == flag.Names()[0] {
			return true
		}
	}
	return false
}
