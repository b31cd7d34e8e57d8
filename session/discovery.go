package session

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// DefaultGatewayEndpoint is the single REST route this module is allowed to
// call (spec.md §6): a GET returning `{"url": "wss://..."}`. Grounded on
// arikawa/api's request shape for the same endpoint, without pulling in the
// REST client itself (out of scope per spec.md §1).
const DefaultGatewayEndpoint = "https://discord.com/api/v10/gateway/bot"

// GatewayProtocolVersion and gatewayEncoding are appended as query
// parameters to the discovered URL (§6: "the discovered URL with query
// parameters v=5 and encoding=json appended").
const (
	GatewayProtocolVersion = 5
	gatewayEncoding        = "json"
)

// GatewayURLFunc resolves the gateway URL to dial. Tests substitute a stub;
// production uses NewRESTGatewayURLFunc.
type GatewayURLFunc func(ctx context.Context) (string, error)

type gatewayBotResponse struct {
	URL string `json:"url"`
}

// NewRESTGatewayURLFunc returns a GatewayURLFunc performing a single
// authenticated GET against endpoint, in the shape §6 describes. A non-2xx
// status or a response missing "url" is a gateway discovery failure (§7
// kind 5), counted against max_reconnect_attempts by the caller.
func NewRESTGatewayURLFunc(client *http.Client, endpoint, token string) GatewayURLFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return "", errors.Wrap(err, "failed to build gateway discovery request")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bot "+token)
		}

		resp, err := client.Do(req)
		if err != nil {
			return "", errors.Wrap(err, "failed to reach gateway discovery endpoint")
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", errors.Errorf("gateway discovery returned status %d", resp.StatusCode)
		}

		var body gatewayBotResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return "", errors.Wrap(err, "failed to decode gateway discovery response")
		}
		if body.URL == "" {
			return "", errors.New("gateway discovery response missing url")
		}

		return body.URL, nil
	}
}

// dialURL appends the protocol version and encoding query parameters to a
// discovered gateway URL.
func dialURL(base string) string {
	sep := "?"
	for _, r := range base {
		if r == '?' {
			sep = "&"
			break
		}
	}
	return base + sep + "v=5&encoding=" + gatewayEncoding
}
