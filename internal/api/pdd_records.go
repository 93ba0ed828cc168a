package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
)

// Values of the "success" field that tag the two variants of every
// response from the registrar.
const (
	successOK    = "ok"
	successError = "error"
)

// pddRecord is the wire form of a DNS record.
type pddRecord struct {
	ID        ID     `json:"record_id"`
	Subdomain string `json:"subdomain"`
	Content   string `json:"content"`
}

// pddListResponse is the response to the "list" call. Records is kept
// raw and decoded only when Success is "ok"; the payload of an error
// response is never touched.
type pddListResponse struct {
	Success string          `json:"success"`
	Error   string          `json:"error"`
	Records json.RawMessage `json:"records"`
}

// pddEditResponse is the response to the "edit" call, tagged the same way.
type pddEditResponse struct {
	Success string          `json:"success"`
	Error   string          `json:"error"`
	Record  json.RawMessage `json:"record"`
}

type pddListParams struct {
	Domain string `url:"domain"`
}

type pddEditParams struct {
	Domain   string `url:"domain"`
	RecordID ID     `url:"record_id"`
	Content  string `url:"content"`
}

// ListRecords lists all DNS records of a zone in the order the
// registrar returns them.
func (h PDDHandle) ListRecords(ctx context.Context, ppfmt pp.PP, zone string) ([]Record, bool) {
	body, ok := h.do(ctx, ppfmt, http.MethodGet, "/list", pddListParams{Domain: zone})
	if !ok {
		return nil, false
	}

	var response pddListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to parse the response from the registrar: %v", err)
		return nil, false
	}

	switch response.Success {
	case successOK:
		// fall through to the records
	case successError:
		ppfmt.Errorf(pp.EmojiError, "Failed to list the records of %q: %s", zone, response.Error)
		return nil, false
	default:
		ppfmt.Errorf(pp.EmojiImpossible, "The registrar replied with an unrecognized status %q", response.Success)
		return nil, false
	}

	var raw []pddRecord
	if err := json.Unmarshal(response.Records, &raw); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to parse the records of %q: %v", zone, err)
		return nil, false
	}

	rs := make([]Record, 0, len(raw))
	for _, r := range raw {
		rs = append(rs, Record(r))
	}

	return rs, true
}

// FindRecord looks the record of d up in the zone listing. The first
// record whose subdomain exactly equals d.Subdomain wins; the match is
// case-sensitive.
func (h PDDHandle) FindRecord(ctx context.Context, ppfmt pp.PP, d domain.Domain) (Record, bool) {
	rs, ok := h.ListRecords(ctx, ppfmt, d.Zone)
	if !ok {
		return Record{}, false
	}

	for _, r := range rs {
		if r.Subdomain == d.Subdomain {
			return r, true
		}
	}

	ppfmt.Errorf(pp.EmojiError, "The zone %q has no DNS record whose subdomain is %q", d.Zone, d.Subdomain)
	return Record{}, false
}

// UpdateRecord rewrites the content of the record with the given ID and
// returns the record as the registrar stored it.
func (h PDDHandle) UpdateRecord(ctx context.Context, ppfmt pp.PP,
	d domain.Domain, id ID, ip netip.Addr,
) (Record, bool) {
	params := pddEditParams{Domain: d.Zone, RecordID: id, Content: ip.String()}
	body, ok := h.do(ctx, ppfmt, http.MethodPost, "/edit", params)
	if !ok {
		return Record{}, false
	}

	var response pddEditResponse
	if err := json.Unmarshal(body, &response); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to parse the response from the registrar: %v", err)
		return Record{}, false
	}

	switch response.Success {
	case successOK:
		// fall through to the updated record
	case successError:
		ppfmt.Errorf(pp.EmojiError, "Failed to update the record of %q (ID: %s): %s", d.Describe(), id, response.Error)
		return Record{}, false
	default:
		ppfmt.Errorf(pp.EmojiImpossible, "The registrar replied with an unrecognized status %q", response.Success)
		return Record{}, false
	}

	var raw pddRecord
	if err := json.Unmarshal(response.Record, &raw); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to parse the updated record of %q: %v", d.Describe(), err)
		return Record{}, false
	}

	return Record(raw), true
}
