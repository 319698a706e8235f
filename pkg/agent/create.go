package agent

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CreateSpec holds the flag values used to assemble a create-agent request.
// Headers and Body carry the raw JSON strings as supplied on the command
// line; they are parsed during validation and payload assembly.
type CreateSpec struct {
	Name      string
	TargetURL string
	Method    string
	Headers   string // JSON object
	Body      string // JSON value of any type
	Schedule  string // cron pattern or interval, forwarded verbatim
	OneTime   bool
	Timeout   int // milliseconds, forwarded to the service
	Queue     string
}

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// Validate checks the flag combination before any request is built.
// An agent must either be one-time or carry a schedule.
func (s *CreateSpec) Validate() error {
	if !s.OneTime && s.Schedule == "" {
		return errors.New("either --one-time must be true or --schedule must be provided")
	}
	if !validMethods[s.Method] {
		return fmt.Errorf("invalid --method %q (want GET, POST, PUT, DELETE or PATCH)", s.Method)
	}
	if _, err := parseHeaders(s.Headers); err != nil {
		return err
	}
	if s.Body != "" && !json.Valid([]byte(s.Body)) {
		return errors.New("invalid JSON in --body")
	}
	return nil
}

// Payload assembles the request body for POST /agents. The payload always
// carries name, targetUrl, method, headers, oneTime and timeout. body and
// queue are included when provided. schedule is included only for
// recurring agents: one-time takes precedence.
func (s *CreateSpec) Payload() (map[string]any, error) {
	headers, err := parseHeaders(s.Headers)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"name":      s.Name,
		"targetUrl": s.TargetURL,
		"method":    s.Method,
		"headers":   headers,
		"oneTime":   s.OneTime,
		"timeout":   s.Timeout,
	}

	if s.Body != "" {
		var body any
		if err := json.Unmarshal([]byte(s.Body), &body); err != nil {
			return nil, fmt.Errorf("invalid JSON in --body: %w", err)
		}
		payload["body"] = body
	}

	if !s.OneTime && s.Schedule != "" {
		payload["schedule"] = s.Schedule
	}

	if s.Queue != "" {
		payload["queue"] = s.Queue
	}

	return payload, nil
}

// parseHeaders decodes the --headers value, which must be a JSON object.
// An empty string is treated as the default empty object.
func parseHeaders(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON in --headers: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("invalid --headers: must be a JSON object")
	}
	return obj, nil
}
