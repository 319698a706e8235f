package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetReturnsResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/agents" {
			t.Errorf("path = %s, want /agents", r.URL.Path)
		}
		w.Write([]byte(`{"agents":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	raw, err := c.Get("/agents")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(raw) != `{"agents":[]}` {
		t.Errorf("body = %s, want %s", raw, `{"agents":[]}`)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Post("/task-operator", map[string]any{"queue": "task-operator"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}

	var decoded map[string]any
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if decoded["queue"] != "task-operator" {
		t.Errorf("queue = %v, want task-operator", decoded["queue"])
	}
}

func TestDeleteMethod(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"success":true,"message":"deleted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	if _, err := c.Delete("/agents/daily-check"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
}

func TestHTTPErrorSurfacesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Agent not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get("/agents/missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "Agent not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Agent not found")
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusNotFound)
	}
}

func TestHTTPErrorFallsBackToRawBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-JSON body", "upstream exploded"},
		{"JSON object without error field", `{"message":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, 0)
			_, err := c.Get("/queues")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *APIError", err)
			}
			if apiErr.Message != tt.body {
				t.Errorf("Message = %q, want raw body %q", apiErr.Message, tt.body)
			}
			if apiErr.Status != http.StatusInternalServerError {
				t.Errorf("Status = %d, want 500", apiErr.Status)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	// Start and immediately close a server so the port is free but refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.Get("/agents")
	if err == nil {
		t.Fatal("expected connection error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if !strings.HasPrefix(apiErr.Message, "Connection error: ") {
		t.Errorf("Message = %q, want Connection error prefix", apiErr.Message)
	}
	if apiErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for transport failure", apiErr.Status)
	}
}

func TestInvalidJSONSuccessResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get("/agents")
	if err == nil {
		t.Fatal("expected error for non-JSON 200 response")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error = %q, want mention of invalid JSON", err)
	}
}

func TestBaseURLUsedVerbatim(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	if _, err := c.Get("/queues/daily-tasks"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotPath != "/queues/daily-tasks" {
		t.Errorf("path = %q, want /queues/daily-tasks", gotPath)
	}
}

func TestAPIErrorJSONShape(t *testing.T) {
	t.Run("with status", func(t *testing.T) {
		out, err := json.Marshal(&APIError{Message: "boom", Status: 500})
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != `{"error":"boom","status":500}` {
			t.Errorf("marshal = %s", out)
		}
	})

	t.Run("status omitted when zero", func(t *testing.T) {
		out, err := json.Marshal(&APIError{Message: "Connection error: refused"})
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != `{"error":"Connection error: refused"}` {
			t.Errorf("marshal = %s", out)
		}
	})
}
