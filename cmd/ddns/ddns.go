// Package main is the entry point of the PDD DDNS updater.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/config"
	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/setter"
	"github.com/pddtools/pdd-ddns/internal/updater"
)

// Version is the version of the updater that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "PDD DDNS"
	}
	return fmt.Sprintf("PDD DDNS (%s)", Version)
}

func initConfig(ppfmt pp.PP, args []string) (*config.Config, api.Handle, setter.Setter, bool) {
	c := config.Default()

	// Read the config
	if !c.ReadArgs(ppfmt, args) || !c.ReadEnv(ppfmt) {
		return c, nil, nil, false
	}

	// Print the config
	c.Print(ppfmt)

	// Get the handle
	h, ok := c.Auth.New(ppfmt)
	if !ok {
		return c, nil, nil, false
	}

	// Get the setter
	s, ok := setter.New(ppfmt, h)
	if !ok {
		return c, nil, nil, false
	}

	return c, h, s, true
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji("EMOJI", &ppfmt) || !config.ReadVerbosity("VERBOSITY", &ppfmt) {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}

	// Show the name and the version of the updater
	ppfmt.Noticef(pp.EmojiStar, formatName())

	ctx := context.Background()

	// Read the config and get the handle and the setter
	c, h, s, configOk := initConfig(ppfmt, args)
	if !configOk {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	var code setter.ResponseCode
	switch c.Action {
	case config.ActionUpdate:
		code = updater.UpdateIP(ctx, ppfmt, c, h, s)
	case config.ActionSet:
		code = updater.SetIP(ctx, ppfmt, c, s)
	}

	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	if code == setter.ResponseFailed {
		return 1
	}
	return 0
}
