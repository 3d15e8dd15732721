package api

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// SetupToken is a one-time token handed out by a bridge. Its payload is a
// base64-encoded claim URL that is POSTed exactly once to obtain an
// access URL.
type SetupToken struct {
	Raw      string
	ClaimURL *url.URL
}

// ParseSetupToken decodes token into its claim URL. Both standard and
// URL-safe base64 alphabets are accepted since bridges differ on which
// one they emit.
func ParseSetupToken(token string) (SetupToken, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return SetupToken{}, &SetupTokenError{Msg: "must not be empty"}
	}

	decoded, err := decodeBase64WithFallback(trimmed)
	if err != nil {
		return SetupToken{}, err
	}

	claimURL, err := url.Parse(strings.TrimSpace(string(decoded)))
	if err != nil {
		return SetupToken{}, &SetupTokenError{Msg: "not a valid URI", Cause: err}
	}
	if claimURL.Scheme == "" || claimURL.Host == "" {
		return SetupToken{}, &SetupTokenError{Msg: "must include a scheme and host"}
	}
	return SetupToken{Raw: trimmed, ClaimURL: claimURL}, nil
}

func decodeBase64WithFallback(s string) ([]byte, error) {
	compact := strings.Join(strings.Fields(s), "")
	if b, err := base64.StdEncoding.DecodeString(compact); err == nil {
		return b, nil
	}
	b, err := base64.URLEncoding.DecodeString(compact)
	if err != nil {
		return nil, &SetupTokenError{Msg: "not valid base64", Cause: err}
	}
	return b, nil
}
