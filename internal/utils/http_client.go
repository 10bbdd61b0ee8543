package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-task-tracker-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 15*time.Second)
//	resp, err := client.R().Get("/api/tasks")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client sending and accepting JSON
// against baseURL. A timeout of zero or less leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
