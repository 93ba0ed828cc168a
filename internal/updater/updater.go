// Package updater reconciles DNS records with the detected public IP address.
package updater

import (
	"context"
	"net/netip"

	"github.com/pddtools/pdd-ddns/internal/api"
	"github.com/pddtools/pdd-ddns/internal/config"
	"github.com/pddtools/pdd-ddns/internal/domain"
	"github.com/pddtools/pdd-ddns/internal/pp"
	"github.com/pddtools/pdd-ddns/internal/setter"
)

// currentIP reads the address the registrar currently holds for d.
// A record whose content is not an IP address is an error; the tool
// only manages records that hold addresses.
func currentIP(ctx context.Context, ppfmt pp.PP, h api.Handle, d domain.Domain) (netip.Addr, bool) {
	r, ok := h.FindRecord(ctx, ppfmt, d)
	if !ok {
		return netip.Addr{}, false
	}

	ip, err := netip.ParseAddr(r.Content)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to parse the IP address %q in the record of %q (ID: %s)",
			r.Content, d.Describe(), r.ID)
		return netip.Addr{}, false
	}

	ppfmt.Debugf(pp.EmojiInternet, "The record of %q currently holds %v (ID: %s)", d.Describe(), ip, r.ID)
	return ip, true
}

func detectIP(ctx context.Context, ppfmt pp.PP, c *config.Config) (netip.Addr, bool) {
	ip, ok := c.Provider.GetIP(ctx, ppfmt)
	if !ok {
		ppfmt.Errorf(pp.EmojiError, "Failed to detect the current IP address")
		return netip.Addr{}, false
	}

	ppfmt.Debugf(pp.EmojiInternet, "Detected the current IP address: %v", ip)
	return ip, true
}

// UpdateIP rewrites the record of the configured domain to the detected
// public IP address, skipping the rewrite when the record already holds
// that address.
func UpdateIP(ctx context.Context, ppfmt pp.PP, c *config.Config, h api.Handle, s setter.Setter) setter.ResponseCode {
	current, ok := currentIP(ctx, ppfmt, h, c.Domain)
	if !ok {
		return setter.ResponseFailed
	}

	detected, ok := detectIP(ctx, ppfmt, c)
	if !ok {
		return setter.ResponseFailed
	}

	if current == detected {
		ppfmt.Infof(pp.EmojiAlreadyDone, "The record of %q is already up to date", c.Domain.Describe())
		return setter.ResponseNoop
	}

	ppfmt.Infof(pp.EmojiUpdateRecord, "The record of %q is %v but the current address is %v; updating",
		c.Domain.Describe(), current, detected)
	return s.Set(ctx, ppfmt, c.Domain, detected)
}

// SetIP writes the configured address into the record of the configured
// domain without detecting or comparing anything.
func SetIP(ctx context.Context, ppfmt pp.PP, c *config.Config, s setter.Setter) setter.ResponseCode {
	return s.Set(ctx, ppfmt, c.Domain, c.Value)
}
