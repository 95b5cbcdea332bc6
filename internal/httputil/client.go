// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewClient builds the HTTP client used by stages that talk to the network.
// The timeout covers the whole request, including reading the response
// body. With insecureSkipVerify set the client accepts any TLS certificate,
// for instances behind self-signed certs.
func NewClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
