package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport spaces out requests to one mirror. Every round trip waits
// for the limiter; a cancelled request context stops the wait
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return tt.T.RoundTrip(req)
}

// Limit returns the configured requests per second
func (tt *ThrottleTransport) Limit() float64 {
	return float64(tt.limiter.Limit())
}

// Throttle wraps T so at most perSecond requests start each second. Bursts are
// not allowed. With perSecond <= 0 T is returned unchanged, a nil T uses http.DefaultTransport
func Throttle(T http.RoundTripper, perSecond float64) http.RoundTripper {
	if T == nil {
		T = http.DefaultTransport
	}
	if perSecond <= 0 {
		return T
	}
	return &ThrottleTransport{T: T, limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}
