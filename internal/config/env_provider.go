package config

import (
	"strings"

	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/provider"
)

// ReadProvider reads an environment variable naming an IP provider.
//
// The special form "url:URL" asks an arbitrary URL that replies with
// a JSON object of the form {"ip":"<address>"}.
func ReadProvider(ppfmt pp.PP, key string, field *provider.Provider) bool {
	switch val := Getenv(key); val {
	case "":
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, provider.Name(*field))
		return true
	case "ipify":
		*field = provider.NewIpify()
		return true
	default:
		if strings.HasPrefix(val, "url:") {
			url := strings.TrimSpace(strings.TrimPrefix(val, "url:"))
			p, ok := provider.NewCustom(ppfmt, url)
			if !ok {
				return false
			}
			*field = p
			return true
		}

		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a valid provider", key, val)
		return false
	}
}
