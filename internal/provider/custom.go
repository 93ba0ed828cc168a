package provider

import (
	"net/url"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

// NewCustom creates an HTTP provider that queries a user-specified URL.
// The server must reply with a JSON object of the form {"ip":"<address>"}.
func NewCustom(ppfmt pp.PP, rawURL string) (Provider, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the custom provider URL (redacted)")
		return nil, false
	}

	if !u.IsAbs() || u.Opaque != "" || u.Host == "" {
		ppfmt.Errorf(pp.EmojiUserError, "The custom provider URL (redacted) does not look like a valid URL")
		return nil, false
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The custom provider URL (redacted) uses HTTP; consider using HTTPS instead")

	case "https":
		// HTTPS is good!

	default:
		ppfmt.Errorf(pp.EmojiUserError, "The custom provider URL (redacted) must use HTTP or HTTPS")
		return nil, false
	}

	return HTTP{ProviderName: "custom", URL: rawURL}, true
}
