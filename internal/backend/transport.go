package backend

import (
	"net/http"
)

type BasicAuthTransport struct {
	Username string
	Password string
	Proxied  http.RoundTripper
}

func (b *BasicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if b.Username != "" && b.Password != "" {
		req = req.Clone(req.Context())
		req.SetBasicAuth(b.Username, b.Password)
	}
	return b.Proxied.RoundTrip(req)
}
