package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mediagrab/mediagrab/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// SpoofTransport sends HTTPS requests over a Chrome TLS fingerprint. It tries
// HTTP/2 first and retries over HTTP/1.1 when that fails. Plain HTTP requests
// go through an ordinary transport.
type SpoofTransport struct {
	h2    *http2.Transport
	h1    *http.Transport
	plain *http.Transport
}

// NewSpoofTransport creates a transport whose dials time out after timeout.
func NewSpoofTransport(timeout time.Duration) *SpoofTransport {
	dialer := &net.Dialer{Timeout: timeout}

	return &SpoofTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, dialer, network, addr, nil)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, dialer, network, addr, []string{"http/1.1"})
			},
		},
		plain: newTransport(),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *SpoofTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry, rewindErr := rewind(req)
	if rewindErr != nil {
		return nil, err
	}

	log.Debugf("h2 request to %s failed, retrying over http/1.1: %s", req.URL.Host, err)
	return t.h1.RoundTrip(retry)
}

// CloseIdleConnections closes idle connections on every underlying transport.
func (t *SpoofTransport) CloseIdleConnections() {
	t.h2.CloseIdleConnections()
	t.h1.CloseIdleConnections()
	t.plain.CloseIdleConnections()
}

// rewind clones req with a fresh body so it can be sent again.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}

	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}

	clone.Body = body
	return clone, nil
}

// dialTLS opens a connection with the Chrome 120 client hello. A nil protos
// keeps the fingerprint's own ALPN list (h2 and http/1.1).
func dialTLS(ctx context.Context, dialer *net.Dialer, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
