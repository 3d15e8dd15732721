package api

import (
	"errors"
	"net/http"
)

// DefaultUserAgent identifies this client to bridges unless overridden.
const DefaultUserAgent = "sfin-go/1.0"

// transportHolder tracks whether a client owns its *http.Client. An
// owned client is released on Close; an injected one never is. The flag
// is fixed at construction.
type transportHolder struct {
	client *http.Client
	owns   bool
}

func (h *transportHolder) HTTPClient() (*http.Client, error) {
	if h.client == nil {
		return nil, errors.New("http client not initialized")
	}
	return h.client, nil
}

func (h *transportHolder) Close() {
	if h.owns && h.client != nil {
		h.client.CloseIdleConnections()
	}
}

type options struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a client at construction time.
type Option func(*options)

// WithHTTPClient injects an externally owned http.Client. The client
// will not be released on Close.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func buildOptions(opts []Option) options {
	o := options{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
