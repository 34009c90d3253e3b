// Package network builds the HTTP clients used to reach the extraction service.
package network

import (
	"net/http"
	"time"

	"github.com/mediagrab/mediagrab/key"
	"github.com/spf13/viper"
)

// New returns a client with the given timeout. With spoof set, TLS
// connections present a browser fingerprint.
func New(timeout time.Duration, spoof bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if spoof {
		transport = NewSpoofTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// FromConfig returns a client configured by provider.timeout and network.spoof_tls.
func FromConfig() *http.Client {
	timeout := time.Duration(viper.GetInt(key.ProviderTimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	return New(timeout, viper.GetBool(key.NetworkSpoofTLS))
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
