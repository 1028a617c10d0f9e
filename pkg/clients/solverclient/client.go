package solverclient

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote planning optimizer over HTTP. The optimizer
// owns the search; this client only carries the request/response contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a solver client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}
