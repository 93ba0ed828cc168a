package setter

import (
	"context"
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

type setter struct {
	Handle api.Handle
}

// New creates a new Setter.
func New(_ppfmt pp.PP, handle api.Handle) (Setter, bool) {
	return setter{
		Handle: handle,
	}, true
}

// Set rewrites the record of d to hold ip. The record is looked up
// first to learn its ID; the rewriting then happens unconditionally,
// even when the record already holds ip.
func (s setter) Set(ctx context.Context, ppfmt pp.PP, d domain.Domain, ip netip.Addr) ResponseCode {
	r, ok := s.Handle.FindRecord(ctx, ppfmt, d)
	if !ok {
		return ResponseFailed
	}

	updated, ok := s.Handle.UpdateRecord(ctx, ppfmt, d, r.ID, ip)
	if !ok {
		return ResponseFailed
	}

	ppfmt.Noticef(pp.EmojiUpdateRecord, "Updated the record of %q to %s (ID: %s)",
		d.Describe(), updated.Content, updated.ID)
	return ResponseUpdated
}
