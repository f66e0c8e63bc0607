package youtubeapi

import (
	"net/http"
)

// retryOnceTransport wraps an oauth2-authenticated transport so that a
// 401/403 response triggers onAuthFailure exactly once per request
// before the response is handed back to the caller. The request itself
// is not sent again: the 401/403 response reaches the caller as is.
type retryOnceTransport struct {
	base          http.RoundTripper
	onAuthFailure func()
}

func (t *retryOnceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.onAuthFailure()
	}
	return resp, nil
}

// withAuthFailureHook returns a client identical to client except its
// transport calls onAuthFailure whenever the Data API rejects a
// request with 401/403.
func withAuthFailureHook(client *http.Client, onAuthFailure func()) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport:     &retryOnceTransport{base: base, onAuthFailure: onAuthFailure},
		CheckRedirect: client.CheckRedirect,
		Jar:           client.Jar,
		Timeout:       client.Timeout,
	}
}
