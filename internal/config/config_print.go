package config

import (
	"fmt"

	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/provider"
)

const itemTitleWidth = 24

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Domain:")
	item("Full name:", "%s", c.Domain.Describe())
	item("Subdomain:", "%q", c.Domain.Subdomain)
	item("Zone:", "%q", c.Domain.Zone)

	section("Action:")
	switch c.Action {
	case ActionUpdate:
		item("Command:", "%s", "update")
		item("Detection provider:", "%s", provider.Name(c.Provider))
	case ActionSet:
		item("Command:", "%s", "set")
		item("New address:", "%v", c.Value)
	}
}
