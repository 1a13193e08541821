package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "dashboard-api/pkg/http"
)

func TestSourceEndpoints(t *testing.T) {
	src := Source{
		PrimaryURL: "https://weather.gc.ca/rss/city/on-143_e.xml",
		ProxyTemplates: []string{
			"https://corsproxy.io/?",
			"https://api.allorigins.win/raw?url=",
		},
	}

	endpoints := src.Endpoints()
	require.Len(t, endpoints, 3)
	assert.Equal(t, "https://weather.gc.ca/rss/city/on-143_e.xml", endpoints[0])
	assert.Equal(t, "https://corsproxy.io/?https%3A%2F%2Fweather.gc.ca%2Frss%2Fcity%2Fon-143_e.xml", endpoints[1])
	assert.Equal(t, "https://api.allorigins.win/raw?url=https%3A%2F%2Fweather.gc.ca%2Frss%2Fcity%2Fon-143_e.xml", endpoints[2])
}

func TestFetchDocumentFallsBackToProxy(t *testing.T) {
	var primaryHits, proxyHits int

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryHits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyHits++
		_, _ = w.Write([]byte(`ok`))
	}))
	defer proxy.Close()

	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	src := Source{
		Name:           "test",
		PrimaryURL:     primary.URL,
		ProxyTemplates: []string{proxy.URL + "/?"},
		Timeout:        5 * time.Second,
	}

	var body string
	err := fetchDocument(context.Background(), client, src, func(b []byte) error {
		body = string(b)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
	assert.Equal(t, 1, primaryHits)
	assert.Equal(t, 1, proxyHits)
}

func TestFetchDocumentReturnsLastFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	src := Source{Name: "test", PrimaryURL: server.URL, Timeout: 5 * time.Second}

	err := fetchDocument(context.Background(), client, src, func([]byte) error { return nil })
	assert.ErrorIs(t, err, ErrHTTPStatus)
}

func TestFetchDocumentParseFailureMovesOn(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`garbage`))
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`valid`))
	}))
	defer good.Close()

	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	src := Source{
		Name:           "test",
		PrimaryURL:     bad.URL,
		ProxyTemplates: []string{good.URL + "/?"},
		Timeout:        5 * time.Second,
	}

	err := fetchDocument(context.Background(), client, src, func(b []byte) error {
		if string(b) != "valid" {
			return parseError("unexpected body", nil)
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestFetchDocumentTimeoutIsNetworkError(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	src := Source{Name: "test", PrimaryURL: slow.URL, Timeout: 20 * time.Millisecond}

	err := fetchDocument(context.Background(), client, src, func([]byte) error { return nil })
	assert.ErrorIs(t, err, ErrNetwork)
}
