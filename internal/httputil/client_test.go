// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientTimeout(t *testing.T) {
	client := NewClient(30*time.Second, false)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestNewClientVerifiesCertificates(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// The test server's self-signed certificate must be rejected by default.
	client := NewClient(5*time.Second, false)
	resp, err := client.Get(ts.URL)
	if err == nil {
		resp.Body.Close()
	}
	assert.Error(t, err)
}

func TestNewClientInsecureSkipVerify(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, true)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
