package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

// DefaultBaseURL is the endpoint of version 2 of the Yandex PDD API.
const DefaultBaseURL = "https://pddimp.yandex.ru/api2/admin/dns"

// A PDDHandle implements the [Handle] interface with the Yandex PDD API.
type PDDHandle struct {
	baseURL string
	token   string
	client  *http.Client
}

// A PDDAuth implements the [Auth] interface, holding the token needed
// to create a [PDDHandle].
type PDDAuth struct {
	Token   string
	BaseURL string
}

// New creates a [PDDHandle] from the authentication data.
func (t PDDAuth) New(_ pp.PP) (Handle, bool) {
	base := t.BaseURL
	if base == "" {
		// the base URL is only changed for testing
		base = DefaultBaseURL
	}

	return PDDHandle{
		baseURL: base,
		token:   t.Token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, true
}

// do sends an authenticated request to the registrar and hands back the
// raw response body. The query string is built from params; the token
// travels in the PddToken header, never in the URL.
func (h PDDHandle) do(ctx context.Context, ppfmt pp.PP, method, endpoint string, params any) ([]byte, bool) {
	values, err := query.Values(params)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to encode the parameters of the request to the registrar: %v", err)
		return nil, false
	}

	url := h.baseURL + endpoint + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to prepare the request to %q: %v", url, err)
		return nil, false
	}
	req.Header.Set("PddToken", h.token)

	resp, err := h.client.Do(req)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to send the request to %q: %v", url, err)
		return nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to read the response from %q: %v", url, err)
		return nil, false
	}

	ppfmt.Tracef(pp.EmojiInternet, "Response from %q: %q", url, body)

	if resp.StatusCode != http.StatusOK {
		ppfmt.Errorf(pp.EmojiError, "Failed to access the registrar: %q replied with status %d", url, resp.StatusCode)
		return nil, false
	}

	return body, true
}
