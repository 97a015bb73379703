package retriever_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/axiora/axiora-go"
	"github.com/axiora/axiora-go/retriever"
)

func newClient(t *testing.T, status int, body string, query *url.Values) *axiora.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if query != nil {
			*query = r.URL.Query()
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	c, err := axiora.New(axiora.WithAPIKey("ax_test_key"), axiora.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRetrieveTransform(t *testing.T) {
	body := `{"data":[{"content":"X","company_name":"Toyota","doc_id":"D1"}],"meta":{"total":1}}`
	r := retriever.New(newClient(t, 200, body, nil))

	docs, err := r.Retrieve(context.Background(), "supply chain")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}
	doc := docs[0]
	if doc.Content != "X" {
		t.Errorf("Content = %q, want X", doc.Content)
	}
	if doc.Metadata["company_name"] != "Toyota" {
		t.Errorf("company_name = %v", doc.Metadata["company_name"])
	}
	if doc.Metadata["doc_id"] != "D1" {
		t.Errorf("doc_id = %v", doc.Metadata["doc_id"])
	}
	if _, present := doc.Metadata["content"]; present {
		t.Error("content must not appear in metadata")
	}
}

func TestRetrieveSnippetFallback(t *testing.T) {
	body := `{"data":[{"snippet":"only a snippet","doc_id":"D2"},{"doc_id":"D3"}]}`
	r := retriever.New(newClient(t, 200, body, nil))

	docs, err := r.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if docs[0].Content != "only a snippet" {
		t.Errorf("Content = %q, want snippet fallback", docs[0].Content)
	}
	if _, present := docs[0].Metadata["snippet"]; present {
		t.Error("snippet must not appear in metadata")
	}
	if docs[1].Content != "" {
		t.Errorf("Content = %q, want empty when neither field present", docs[1].Content)
	}
}

func TestRetrieveDropsNullMetadata(t *testing.T) {
	body := `{"data":[{"content":"X","section":null,"doc_id":"D1"}]}`
	r := retriever.New(newClient(t, 200, body, nil))

	docs, err := r.Retrieve(context.Background(), "q")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if _, present := docs[0].Metadata["section"]; present {
		t.Error("null fields must not appear in metadata")
	}
}

func TestRetrieveHTTPFailureReturnsEmpty(t *testing.T) {
	r := retriever.New(newClient(t, 500, `{"detail":"boom"}`, nil))

	docs, err := r.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("status failures must not propagate, got %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("docs = %#v, want empty non-nil slice", docs)
	}
}

func TestRetrieveTransportFailurePropagates(t *testing.T) {
	c, err := axiora.New(
		axiora.WithAPIKey("ax_test_key"),
		axiora.WithBaseURL("http://127.0.0.1:1"), // nothing listens here
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := retriever.New(c).Retrieve(context.Background(), "anything"); err == nil {
		t.Fatal("transport errors must propagate")
	}
}

func TestRetrieveQueryParams(t *testing.T) {
	var query url.Values
	c := newClient(t, 200, `{"data":[]}`, &query)
	r := retriever.New(c, retriever.WithSection("risk_factors"), retriever.WithLimit(5))

	if _, err := r.Retrieve(context.Background(), "semiconductor"); err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if query.Get("q") != "semiconductor" {
		t.Errorf("q = %q", query.Get("q"))
	}
	if query.Get("limit") != "5" {
		t.Errorf("limit = %q, want 5", query.Get("limit"))
	}
	if query.Get("section") != "risk_factors" {
		t.Errorf("section = %q", query.Get("section"))
	}
}

func TestRetrieveDefaultLimit(t *testing.T) {
	var query url.Values
	c := newClient(t, 200, `{"data":[]}`, &query)

	if _, err := retriever.New(c).Retrieve(context.Background(), "x"); err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if query.Get("limit") != "10" {
		t.Errorf("default limit = %q, want 10", query.Get("limit"))
	}
	if _, present := query["section"]; present {
		t.Error("unset section must not be transmitted")
	}
}
