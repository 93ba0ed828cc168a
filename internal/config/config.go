// Package config reads and parses configurations.
package config

import (
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/provider"
)

// An Action is an operation the command line can request.
type Action int

const (
	// ActionUpdate rewrites the DNS record only when it disagrees
	// with the detected IP address.
	ActionUpdate Action = iota

	// ActionSet rewrites the DNS record unconditionally.
	ActionSet
)

// Config holds the parsed command line and environment variables.
type Config struct {
	Auth     api.Auth
	Domain   domain.Domain
	Provider provider.Provider
	Action   Action
	Value    netip.Addr // the address to write; only meaningful for ActionSet
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Auth:     nil,
		Domain:   domain.Domain{},
		Provider: provider.NewIpify(),
		Action:   ActionUpdate,
		Value:    netip.Addr{},
	}
}
