// Package retriever searches English translations of Japanese EDINET filings
// and returns them as documents suitable for a retrieval pipeline.
//
// Unlike the tools package, which surfaces HTTP failures as errors for the
// agent to read, the retriever degrades to an empty result set on any API
// status error. A retrieval pipeline expects "no documents", not an
// exception; transport-level failures still propagate.
package retriever

import (
	"context"
	"errors"
	"net/http"

	"github.com/axiora/axiora-go"
)

const defaultLimit = 10

// Document is one retrieved filing excerpt: the translated text plus every
// other non-null field of the API item as metadata.
type Document struct {
	Content  string
	Metadata map[string]interface{}
}

// Retriever searches /translations/search through a shared *axiora.Client.
type Retriever struct {
	client  *axiora.Client
	section string
	limit   int
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithSection restricts results to one filing section: mda, risk_factors,
// business_overview, governance, financial_notes, accounting_policy.
func WithSection(section string) Option {
	return func(r *Retriever) { r.section = section }
}

// WithLimit caps the number of results. Default 10, API max 50.
func WithLimit(n int) Option {
	return func(r *Retriever) { r.limit = n }
}

// New builds a Retriever on top of an existing client.
func New(c *axiora.Client, opts ...Option) *Retriever {
	r := &Retriever{client: c, limit: defaultLimit}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve runs a full-text search and converts the hits into documents.
// An API status error yields an empty slice and a nil error.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Document, error) {
	params := axiora.Params{"q": query, "limit": r.limit}
	if r.section != "" {
		params["section"] = r.section
	}
	result, err := r.client.Request(ctx, http.MethodGet, "/translations/search", params)
	if err != nil {
		var se *axiora.StatusError
		if errors.As(err, &se) {
			return []Document{}, nil
		}
		return nil, err
	}
	return toDocuments(result), nil
}

// toDocuments maps each item of the response's data array to a Document.
// Content comes from "content", falling back to "snippet", else empty; every
// other non-null field becomes metadata.
func toDocuments(result interface{}) []Document {
	body, ok := result.(map[string]interface{})
	if !ok {
		return nil
	}
	items, ok := body["data"].([]interface{})
	if !ok {
		return nil
	}
	docs := make([]Document, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		content, _ := item["content"].(string)
		if content == "" {
			content, _ = item["snippet"].(string)
		}
		metadata := make(map[string]interface{})
		for k, v := range item {
			if k == "content" || k == "snippet" || v == nil {
				continue
			}
			metadata[k] = v
		}
		docs = append(docs, Document{Content: content, Metadata: metadata})
	}
	return docs
}
