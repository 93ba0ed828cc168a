// Package domain splits DNS names into the record's subdomain and the
// registered zone holding it.
package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

// profile does C2 in UTS#46 with all checks on. It is used only to
// display names, never to alter what is sent on the wire.
//
//nolint:gochecknoglobals
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.RemoveLeadingDots(false),
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profile.ToUnicode(ascii)
	roundTrip, errToU := profile.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// A Domain is a DNS name split into the subdomain of the record to
// manage and the registered zone that holds it.
type Domain struct {
	Subdomain string // everything before the first dot
	Zone      string // everything after the first dot
}

// ErrNotSplittable means a name contains no dot at all.
var ErrNotSplittable error = errors.New(`not of the form "subdomain.zone"`)

// New splits a name of the form "subdomain.zone" at the first dot.
// Both halves are kept verbatim; the registrar matches subdomains
// case-sensitively and accepts zones in Unicode and Punycode alike.
func New(name string) (Domain, error) {
	subdomain, zone, found := strings.Cut(name, ".")
	if !found {
		return Domain{}, ErrNotSplittable
	}

	return Domain{Subdomain: subdomain, Zone: zone}, nil
}

// DNSName gives back the full name the domain was split from.
func (d Domain) DNSName() string {
	return d.Subdomain + "." + d.Zone
}

// Describe gives the most human-readable form of the full name that is
// still unambiguous.
func (d Domain) Describe() string {
	return safelyToUnicode(d.DNSName())
}
