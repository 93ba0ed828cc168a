package config

import (
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

func describeUsage(ppfmt pp.PP) {
	ppfmt.Errorf(pp.EmojiConfig, "Usage: ddns update <token> <domain>")
	ppfmt.Errorf(pp.EmojiConfig, "       ddns set <token> <domain> <address>")
}

// ReadArgs parses the positional command line, which must be either
// "update <token> <domain>" or "set <token> <domain> <address>".
// The args slice does not include the program name.
func (c *Config) ReadArgs(ppfmt pp.PP, args []string) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading the command line . . .")
		ppfmt = ppfmt.Indent()
	}

	if len(args) == 0 {
		ppfmt.Errorf(pp.EmojiUserError, "No command was given")
		describeUsage(ppfmt)
		return false
	}

	switch command := args[0]; command {
	case "update":
		c.Action = ActionUpdate
		if len(args) != 3 {
			ppfmt.Errorf(pp.EmojiUserError, "The command %q takes exactly 2 operands, not %d", command, len(args)-1)
			describeUsage(ppfmt)
			return false
		}
	case "set":
		c.Action = ActionSet
		if len(args) != 4 {
			ppfmt.Errorf(pp.EmojiUserError, "The command %q takes exactly 3 operands, not %d", command, len(args)-1)
			describeUsage(ppfmt)
			return false
		}
	default:
		ppfmt.Errorf(pp.EmojiUserError, "%q is not a recognized command", command)
		describeUsage(ppfmt)
		return false
	}

	// the token is taken as is; the registrar will reject invalid ones
	if !ReadAuth(ppfmt, args[1], &c.Auth) {
		return false
	}

	d, err := domain.New(args[2])
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "The domain %q is %v", args[2], err)
		return false
	}
	c.Domain = d

	if c.Action == ActionSet {
		ip, err := netip.ParseAddr(args[3])
		if err != nil {
			ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the IP address %q: %v", args[3], err)
			return false
		}
		c.Value = ip
	}

	return true
}

// ReadEnv reads all relevant environment variables except VERBOSITY
// and EMOJI, which the caller handles before anything is printed, and
// PDD_BASE_URL, which [ReadAuth] handles.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadProvider(ppfmt, "IP_PROVIDER", &c.Provider) {
		return false
	}

	return true
}
