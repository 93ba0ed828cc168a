// Package provider implements protocols to detect public IP addresses.
package provider

import (
	"context"
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

//go:generate mockgen -typed -destination=../mocks/mock_provider.go -package=mocks . Provider

// Provider is the abstraction of a protocol to detect public IP addresses.
type Provider interface {
	// Name gives the name of the protocol.
	Name() string

	// GetIP detects the public IP address of the machine.
	GetIP(ctx context.Context, ppfmt pp.PP) (netip.Addr, bool)
}

// Name gets the protocol name. It returns "none" for nil.
func Name(p Provider) string {
	if p == nil {
		return "none"
	}

	return p.Name()
}
