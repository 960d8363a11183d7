package advisor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_RejectsEmptyKey(t *testing.T) {
	if _, err := NewClient("", "gemini-1.5-flash", ""); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("NewClient(\"\") error = %v, want ErrNoAPIKey", err)
	}
	if _, err := NewClient("   ", "gemini-1.5-flash", ""); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("NewClient(whitespace) error = %v, want ErrNoAPIKey", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient("test-key", "", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.model != "gemini-1.5-flash" {
		t.Errorf("default model = %q, want gemini-1.5-flash", c.model)
	}
	if c.baseURL != defaultBaseURL {
		t.Errorf("default baseURL = %q, want %q", c.baseURL, defaultBaseURL)
	}
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, "gemini-1.5-flash:generateContent") {
			t.Errorf("path = %q, want generateContent for gemini-1.5-flash", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key param = %q, want test-key", r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Save "},{"text":"20% of income."}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", "gemini-1.5-flash", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := c.Generate(context.Background(), "how much should I save?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Save 20% of income." {
		t.Errorf("Generate = %q, want %q", got, "Save 20% of income.")
	}
}

func TestGenerate_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"bad request", http.StatusBadRequest, ErrUnavailable},
		{"not found", http.StatusNotFound, ErrUnavailable},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, err := NewClient("test-key", "", srv.URL)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if _, err := c.Generate(context.Background(), "q"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerate_ErrorBodyKeepsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found"}}`))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", "", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.Generate(context.Background(), "q")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("error %q should keep the API message", err)
	}
}

func TestGenerate_EmptyCandidatesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", "", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Generate(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Generate error = %v, want ErrUnavailable", err)
	}
}

func TestGenerate_NetworkFailureUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	c, err := NewClient("test-key", "", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Generate(context.Background(), "q"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Generate error = %v, want ErrUnavailable", err)
	}
}
