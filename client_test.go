package axiora_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/axiora/axiora-go"
)

// newTestServer returns a client pointed at a fake API plus a pointer to the
// last request it saw.
func newTestServer(t *testing.T, status int, body string) (*axiora.Client, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		captured.URL = r.URL
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := axiora.New(axiora.WithAPIKey("ax_test_key"), axiora.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, &captured
}

func TestNewWithoutKeyFails(t *testing.T) {
	t.Setenv(axiora.EnvAPIKey, "")
	_, err := axiora.New()
	if err == nil {
		t.Fatal("expected error when no API key is available")
	}
	if !strings.Contains(err.Error(), axiora.EnvAPIKey) {
		t.Errorf("error should name %s, got %q", axiora.EnvAPIKey, err)
	}
}

func TestNewReadsEnvKey(t *testing.T) {
	t.Setenv(axiora.EnvAPIKey, "ax_from_env")
	if _, err := axiora.New(); err != nil {
		t.Fatalf("New with env key: %v", err)
	}
}

func TestExplicitKeyWinsOverEnv(t *testing.T) {
	t.Setenv(axiora.EnvAPIKey, "ax_from_env")
	c, captured := newTestServer(t, http.StatusOK, `{}`)
	// rebuild with both env and explicit key against the same server
	c, err := axiora.New(axiora.WithAPIKey("ax_explicit"), axiora.WithBaseURL(c.BaseURL()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Request(context.Background(), http.MethodGet, "/coverage", nil); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer ax_explicit" {
		t.Errorf("Authorization = %q, want explicit key", got)
	}
}

func TestRequestHeaders(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{}`)
	if _, err := c.Request(context.Background(), http.MethodGet, "/coverage", nil); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer ax_test_key" {
		t.Errorf("Authorization = %q", got)
	}
	if got := captured.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
	if got := captured.Header.Get("User-Agent"); !strings.HasPrefix(got, "axiora-go/") {
		t.Errorf("User-Agent = %q, want axiora-go/ prefix", got)
	}
}

func TestRequestStripsNilParams(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{}`)
	_, err := c.Request(context.Background(), http.MethodGet, "/companies/search", axiora.Params{
		"query":  "Toyota",
		"sector": nil,
		"limit":  10,
	})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	q := captured.URL.Query()
	if q.Get("query") != "Toyota" {
		t.Errorf("query param = %q, want Toyota", q.Get("query"))
	}
	if q.Get("limit") != "10" {
		t.Errorf("limit param = %q, want 10", q.Get("limit"))
	}
	if _, present := q["sector"]; present {
		t.Error("nil-valued sector must not be transmitted")
	}
}

func TestRequestCleanParamsNoOp(t *testing.T) {
	// A mapping with no nil entries passes through untouched.
	c, captured := newTestServer(t, http.StatusOK, `{}`)
	_, err := c.Request(context.Background(), http.MethodGet, "/screen", axiora.Params{
		"min_roe": 10.5,
		"limit":   20,
	})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	q := captured.URL.Query()
	if q.Get("min_roe") != "10.5" || q.Get("limit") != "20" {
		t.Errorf("unexpected query %q", captured.URL.RawQuery)
	}
}

func TestRequestJoinsBaseURLWithTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := axiora.New(axiora.WithAPIKey("ax_test_key"), axiora.WithBaseURL(srv.URL+"/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Request(context.Background(), http.MethodGet, "/sectors", nil); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if gotPath != "/sectors" {
		t.Errorf("path = %q, want /sectors", gotPath)
	}
}

func TestRequestDecodesBody(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"data":[{"name":"Toyota"}],"meta":{"total":1}}`)
	result, err := c.Request(context.Background(), http.MethodGet, "/companies/search", nil)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	body, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type %T, want map", result)
	}
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %#v", body["data"])
	}
}

func TestRequestStatusError(t *testing.T) {
	c, _ := newTestServer(t, http.StatusNotFound, `{"detail":"Company not found"}`)
	_, err := c.Request(context.Background(), http.MethodGet, "/companies/INVALID", nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var se *axiora.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error type %T, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", se.StatusCode)
	}
	if se.Detail() != "Company not found" {
		t.Errorf("Detail = %q", se.Detail())
	}
}

func TestStatusErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"detail":"Company not found"}`, "Company not found"},
		{"error field", `{"error":"bad token"}`, "bad token"},
		{"no known field", `{"message":"nope"}`, ""},
		{"plain text", "upstream exploded", "upstream exploded"},
		{"long text truncated", strings.Repeat("x", 300), strings.Repeat("x", 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := &axiora.StatusError{StatusCode: 500, Body: []byte(tt.body)}
			if got := se.Detail(); got != tt.want {
				t.Errorf("Detail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientStringRedactsKey(t *testing.T) {
	const secret = "ax_live_supersecretkey123"
	c, err := axiora.New(axiora.WithAPIKey(secret))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, repr := range []string{c.String(), fmt.Sprint(c), fmt.Sprintf("%v", c), fmt.Sprintf("%+v", c)} {
		if strings.Contains(repr, secret) {
			t.Errorf("API key leaked in %q", repr)
		}
	}
}
