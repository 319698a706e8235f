package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the client-side cap on a single request round trip.
const DefaultTimeout = 30 * time.Second

// APIError is the normalized failure envelope for a dispatched request.
// Message carries the server's "error" field when present, otherwise the
// raw response body or a transport error description. Status is the HTTP
// status code, zero for transport failures.
type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Client performs single-shot requests against the cursor-agents API.
// Every call is one round trip: no retries, no multi-step protocol.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL. The URL is used verbatim;
// no trailing-slash normalization is applied. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request against path and returns the JSON response body.
func (c *Client) Get(path string) (json.RawMessage, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON-serializable body.
// A nil body sends an empty request body.
func (c *Client) Post(path string, body any) (json.RawMessage, error) {
	return c.do(http.MethodPost, path, body)
}

// Delete performs a DELETE request against path.
func (c *Client) Delete(path string) (json.RawMessage, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "Connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: "Connection error: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, data)
	}

	if !json.Valid(data) {
		return nil, &APIError{Message: fmt.Sprintf("invalid JSON in response: %s", strings.TrimSpace(string(data)))}
	}

	return json.RawMessage(data), nil
}

// decodeError builds an APIError from a non-2xx response. The body's
// "error" field is surfaced when the body is a JSON object carrying one,
// otherwise the raw body is used verbatim.
func decodeError(status int, body []byte) *APIError {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{Message: envelope.Error, Status: status}
	}
	return &APIError{Message: string(body), Status: status}
}
