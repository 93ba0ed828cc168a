package config

import (
	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

// ReadAuth assembles the authentication data from the token operand
// and the PDD_BASE_URL environment variable. The base URL is only
// changed for testing.
func ReadAuth(ppfmt pp.PP, token string, field *api.Auth) bool {
	baseURL := api.DefaultBaseURL
	if !ReadString(ppfmt, "PDD_BASE_URL", &baseURL) {
		return false
	}

	*field = api.PDDAuth{Token: token, BaseURL: baseURL}
	return true
}
