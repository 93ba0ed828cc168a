package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/netip"
	"time"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

// httpClient is shared by all HTTP-based providers. The timeout is the
// transport default; there is no knob to change it.
//
//nolint:gochecknoglobals
var httpClient = http.Client{Timeout: 30 * time.Second}

type httpConn struct {
	url     string
	method  string
	accept  string
	extract func(pp.PP, []byte) (netip.Addr, bool)
}

func (d httpConn) getIP(ctx context.Context, ppfmt pp.PP) (netip.Addr, bool) {
	req, err := http.NewRequestWithContext(ctx, d.method, d.url, nil)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to prepare the request to %q: %v", d.url, err)
		return netip.Addr{}, false
	}

	if d.accept != "" {
		req.Header.Set("Accept", d.accept)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to send the request to %q: %v", d.url, err)
		return netip.Addr{}, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to read the response from %q: %v", d.url, err)
		return netip.Addr{}, false
	}

	ppfmt.Tracef(pp.EmojiInternet, "Response from %q: %q", d.url, body)

	if resp.StatusCode != http.StatusOK {
		ppfmt.Errorf(pp.EmojiError, "Failed to detect the IP address: %q replied with status %d", d.url, resp.StatusCode)
		return netip.Addr{}, false
	}

	return d.extract(ppfmt, body)
}

// getIPFromJSON reads the IP address from a JSON response of the form
// {"ip":"<address>"}.
func getIPFromJSON(ctx context.Context, ppfmt pp.PP, url string) (netip.Addr, bool) {
	c := httpConn{
		url:    url,
		method: http.MethodGet,
		accept: "application/json",
		extract: func(ppfmt pp.PP, body []byte) (netip.Addr, bool) {
			var response struct {
				IP string `json:"ip"`
			}
			if err := json.Unmarshal(body, &response); err != nil {
				ppfmt.Errorf(pp.EmojiError, "Failed to parse the response of %q: %v", url, err)
				return netip.Addr{}, false
			}

			ip, err := netip.ParseAddr(response.IP)
			if err != nil {
				ppfmt.Errorf(pp.EmojiError, "Failed to parse the IP address %q in the response of %q", response.IP, url)
				return netip.Addr{}, false
			}

			return ip, true
		},
	}

	return c.getIP(ctx, ppfmt)
}

// HTTP represents a generic detection protocol that reads the address
// from a JSON response over HTTP(S).
type HTTP struct {
	ProviderName string // name of the protocol
	URL          string // URL of the detection server
}

// Name gives the name of the protocol.
func (p HTTP) Name() string {
	return p.ProviderName
}

// GetIP detects the public IP address by querying the detection server.
func (p HTTP) GetIP(ctx context.Context, ppfmt pp.PP) (netip.Addr, bool) {
	return getIPFromJSON(ctx, ppfmt, p.URL)
}
