// Package http builds the outbound HTTP clients used by Mars Explorer.
package http

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout               = 30 * time.Second
	DefaultMaxIdleConns          = 20
	DefaultMaxIdleConnsPerHost   = 4
	DefaultIdleConnTimeout       = 90 * time.Second
	DefaultTLSHandshakeTimeout   = 10 * time.Second
	DefaultExpectContinueTimeout = 1 * time.Second
)

// ClientConfig configures NewClient. Zero values take the defaults above.
type ClientConfig struct {
	// Timeout bounds the whole request, including reading the body.
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	// Transport replaces the default transport entirely. Tests use it to
	// inject failures.
	Transport http.RoundTripper
}

// NewClient returns an *http.Client with pooled keep-alive connections.
// A nil cfg means all defaults.
func NewClient(cfg *ClientConfig) *http.Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	timeout := orDuration(cfg.Timeout, DefaultTimeout)

	transport := cfg.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          orInt(cfg.MaxIdleConns, DefaultMaxIdleConns),
			MaxIdleConnsPerHost:   orInt(cfg.MaxIdleConnsPerHost, DefaultMaxIdleConnsPerHost),
			IdleConnTimeout:       orDuration(cfg.IdleConnTimeout, DefaultIdleConnTimeout),
			TLSHandshakeTimeout:   orDuration(cfg.TLSHandshakeTimeout, DefaultTLSHandshakeTimeout),
			ExpectContinueTimeout: DefaultExpectContinueTimeout,
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
