// Package network provides the shared HTTP client used for catalog requests.
package network

import (
	"net/http"
	"time"
)

// Client is shared across the application.
// It sets no overall request timeout; searches block until the catalog answers or the connection fails.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport clones the default transport with bounded dial-side timeouts.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 90 * time.Second
	t.TLSHandshakeTimeout = 10 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
