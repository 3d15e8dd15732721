package api

import (
	"context"
	"io"
	"net/http"

	"github.com/ledgerline/sfin/model"
)

// AccessClient queries the authenticated accounts endpoint behind an
// access URL. Basic Auth is injected at the transport layer so every
// request carries it; the client is stateless beyond its credentials and
// safe for concurrent use.
type AccessClient struct {
	credentials Credentials
	holder      transportHolder
}

// NewAccessClient wraps the credentials in an authenticating transport.
// With WithHTTPClient the injected client's transport becomes the base
// and is never released by Close.
func NewAccessClient(credentials Credentials, opts ...Option) *AccessClient {
	o := buildOptions(opts)
	rt := &BasicAuthRoundTripper{
		Username:  credentials.Username,
		Password:  credentials.Password,
		UserAgent: o.userAgent,
	}
	owns := true
	if o.httpClient != nil {
		rt.Base = o.httpClient.Transport
		owns = false
	}
	return &AccessClient{
		credentials: credentials,
		holder:      transportHolder{client: &http.Client{Transport: rt}, owns: owns},
	}
}

// Close releases the transport if this client created it.
func (c *AccessClient) Close() { c.holder.Close() }

// Credentials returns the parsed credentials this client requests with.
func (c *AccessClient) Credentials() Credentials { return c.credentials }

// GetAccounts fetches the account set matching opts. A nil opts requests
// everything. Date ordering is validated before any request goes out.
func (c *AccessClient) GetAccounts(ctx context.Context, opts *GetAccountsOptions) (model.AccountSet, error) {
	query, err := opts.Values()
	if err != nil {
		return model.AccountSet{}, err
	}
	endpoint := c.credentials.EndpointURL([]string{"accounts"}, query)

	httpClient, err := c.holder.HTTPClient()
	if err != nil {
		return model.AccountSet{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.AccountSet{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return model.AccountSet{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.AccountSet{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return model.AccountSet{}, &APIError{URL: endpoint.String(), StatusCode: resp.StatusCode, Body: string(body)}
	}

	obj, err := model.DecodeObject(body)
	if err != nil {
		return model.AccountSet{}, &APIError{
			URL:        endpoint.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Msg:        "not valid JSON",
		}
	}
	return model.AccountSetFromJSON(obj)
}
