package api

import "net/http"

// BasicAuthRoundTripper injects Basic Auth and a User-Agent into every
// outgoing request by cloning it, leaving the caller's request untouched.
type BasicAuthRoundTripper struct {
	Username  string
	Password  string
	UserAgent string
	Base      http.RoundTripper
}

func (rt *BasicAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.SetBasicAuth(rt.Username, rt.Password)
	if rt.UserAgent != "" {
		cloned.Header.Set("User-Agent", rt.UserAgent)
	}
	return rt.base().RoundTrip(cloned)
}

func (rt *BasicAuthRoundTripper) CloseIdleConnections() {
	type closer interface{ CloseIdleConnections() }
	if c, ok := rt.base().(closer); ok {
		c.CloseIdleConnections()
	}
}

func (rt *BasicAuthRoundTripper) base() http.RoundTripper {
	if rt.Base != nil {
		return rt.Base
	}
	return http.DefaultTransport
}
