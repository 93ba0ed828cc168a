// Package setter implements the logic to rewrite DNS records using [api.Handle].
package setter

import (
	"context"
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

//go:generate mockgen -typed -destination=../mocks/mock_setter.go -package=mocks . Setter

// Setter uses [api.Handle] to update DNS records.
type Setter interface {
	// Set writes the given IP address into the record of a domain,
	// regardless of what the record currently holds.
	Set(ctx context.Context, ppfmt pp.PP, d domain.Domain, ip netip.Addr) ResponseCode
}
