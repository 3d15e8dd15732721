package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ledgerline/sfin/model"
)

// BridgeClient talks to a bridge's unauthenticated endpoints: the /info
// capability query and the one-time claim of a setup token. Each call
// issues exactly one HTTP request with no retries.
type BridgeClient struct {
	bridgeURL *url.URL
	holder    transportHolder
	userAgent string
}

// NewBridgeClient validates the bridge root URL. Without WithHTTPClient
// the client builds and owns its own transport.
func NewBridgeClient(bridgeURL string, opts ...Option) (*BridgeClient, error) {
	u, err := model.ParseURI(strings.TrimSpace(bridgeURL), "bridge url")
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	holder := transportHolder{client: o.httpClient}
	if holder.client == nil {
		holder = transportHolder{client: &http.Client{}, owns: true}
	}
	return &BridgeClient{bridgeURL: u, holder: holder, userAgent: o.userAgent}, nil
}

// Close releases the transport if this client created it.
func (c *BridgeClient) Close() { c.holder.Close() }

// Info fetches the protocol versions the bridge supports.
func (c *BridgeClient) Info(ctx context.Context) (model.BridgeInfo, error) {
	endpoint := joinURL(c.bridgeURL, "info")
	body, err := c.do(ctx, http.MethodGet, endpoint, "application/json")
	if err != nil {
		return model.BridgeInfo{}, err
	}
	obj, err := model.DecodeObject(body)
	if err != nil {
		return model.BridgeInfo{}, &APIError{
			URL:        endpoint.String(),
			StatusCode: http.StatusOK,
			Body:       string(body),
			Msg:        "not valid JSON",
		}
	}
	return model.BridgeInfoFromJSON(obj)
}

// Claim exchanges a one-time setup token for access credentials. The
// token is decoded locally, its claim URL is POSTed once, and the plain
// text response body is parsed as an access URL.
func (c *BridgeClient) Claim(ctx context.Context, setupToken string) (Credentials, error) {
	token, err := ParseSetupToken(setupToken)
	if err != nil {
		return Credentials{}, err
	}
	body, err := c.do(ctx, http.MethodPost, token.ClaimURL, "text/plain")
	if err != nil {
		return Credentials{}, err
	}
	accessURL := strings.TrimSpace(string(body))
	if accessURL == "" {
		return Credentials{}, &APIError{
			URL:        token.ClaimURL.String(),
			StatusCode: http.StatusOK,
			Msg:        "response did not include an access URL",
		}
	}
	return ParseCredentials(accessURL)
}

func (c *BridgeClient) do(ctx context.Context, method string, endpoint *url.URL, accept string) ([]byte, error) {
	httpClient, err := c.holder.HTTPClient()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{URL: endpoint.String(), StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func joinURL(base *url.URL, segment string) *url.URL {
	joined := append(pathSegments(base.Path), segment)
	u := *base
	u.Path = "/" + strings.Join(joined, "/")
	return &u
}
