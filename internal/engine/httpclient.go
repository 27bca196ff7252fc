package engine

import (
	"net/http"
	"time"
)

// UserAgentBot identifies this scraper to the Data API.
const UserAgentBot = "GoComments/1.0"

// NewHTTPClient builds a pooled client suitable for polling a JSON API.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
	}
}
