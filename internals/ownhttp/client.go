package ownhttp

import (
	"net"
	"net/http"
	"time"
)

// UserAgent is sent with every request
var UserAgent = "mclaunch (+https://github.com/minepkg/mclaunch)"

// Options configure the client returned by [NewWithOptions]
type Options struct {
	// ConnectTimeout limits dialing and the TLS handshake of a single connection
	ConnectTimeout time.Duration
	// ResponseHeaderTimeout limits waiting for the response headers
	ResponseHeaderTimeout time.Duration
	// RequestsPerSecond throttles outgoing requests. 0 disables throttling
	RequestsPerSecond float64
}

// DefaultOptions are used by [New]
var DefaultOptions = Options{
	ConnectTimeout:        10 * time.Second,
	ResponseHeaderTimeout: 30 * time.Second,
}

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return NewWithOptions(DefaultOptions)
}

// NewWithOptions returns a http.Client with per connection timeouts, the User-Agent header
// and optional throttling
func NewWithOptions(o Options) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   o.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   o.ConnectTimeout,
		ResponseHeaderTimeout: o.ResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   4,
	}

	return &http.Client{Transport: NewAddHeaderTransport(Throttle(transport, o.RequestsPerSecond))}
}

// AddHeaderTransport sets the User-Agent header on every request
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return adt.T.RoundTrip(req)
}

// NewAddHeaderTransport wraps T. A nil T uses http.DefaultTransport
func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
