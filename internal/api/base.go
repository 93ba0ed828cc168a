// Package api implements the DNS API of the registrar.
package api

import (
	"context"
	"net/netip"
	"strconv"

	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

//go:generate mockgen -typed -destination=../mocks/mock_api.go -package=mocks . Handle

// An ID is the numeric identifier of a DNS record.
type ID int64

// String gives the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// A Record is a DNS record in a zone. Content is kept as the raw string
// the registrar returned; whether it parses as an IP address is for the
// caller to decide.
type Record struct {
	ID        ID
	Subdomain string
	Content   string
}

// A Handle provides access to the DNS records of a registrar account.
type Handle interface {
	// ListRecords lists all DNS records of a zone in the order the
	// registrar returns them.
	ListRecords(ctx context.Context, ppfmt pp.PP, zone string) ([]Record, bool)

	// FindRecord returns the first record in the zone listing whose
	// subdomain is exactly that of d.
	FindRecord(ctx context.Context, ppfmt pp.PP, d domain.Domain) (Record, bool)

	// UpdateRecord rewrites the content of the record with the given ID
	// and returns the record as the registrar stored it.
	UpdateRecord(ctx context.Context, ppfmt pp.PP, d domain.Domain, id ID, ip netip.Addr) (Record, bool)
}

// An Auth contains authentication information to create a [Handle].
type Auth interface {
	New(ppfmt pp.PP) (Handle, bool)
}
