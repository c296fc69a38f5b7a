package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/toksum/pkg/toksum"
)

// testEncoder returns one token per whitespace-separated field.
type testEncoder struct {
	name string
}

func (e testEncoder) Encode(text string) []int {
	fields := strings.Fields(text)
	ids := make([]int, len(fields))
	for i := range fields {
		ids[i] = i + 1
	}
	return ids
}

func (e testEncoder) Decode(ids []int) string { return "" }
func (e testEncoder) Name() string            { return e.name }

func newTestEcho() *echo.Echo {
	resolve := func(sel toksum.Selector) (toksum.Encoder, error) {
		name, err := toksum.ResolveEncoding(sel.Model, sel.Encoding)
		if err != nil {
			return nil, err
		}
		return testEncoder{name: name}, nil
	}
	e := echo.New()
	NewServer(resolve).Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTokenizeEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doJSON(t, e, http.MethodPost, "/v1/tokenize", `{"text":"one two three","model":"gpt-4"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp TokenizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected a response id")
	}
	if resp.Encoding != "cl100k_base" {
		t.Fatalf("unexpected encoding: %q", resp.Encoding)
	}
	if len(resp.Tokens) != 3 || resp.Count != 3 {
		t.Fatalf("unexpected tokens: %v count=%d", resp.Tokens, resp.Count)
	}
}

func TestCountEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doJSON(t, e, http.MethodPost, "/v1/count", `{"text":"a b","encoding":"p50k_base"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp CountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count: got %d want 2", resp.Count)
	}
	if resp.Encoding != "p50k_base" {
		t.Fatalf("unexpected encoding: %q", resp.Encoding)
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	tests := []struct {
		name string
		body string
	}{
		{"missing selector", `{"text":"hello"}`},
		{"unknown model", `{"text":"hello","model":"gpt-9000"}`},
		{"conflicting pair", `{"text":"hello","model":"gpt-4","encoding":"p50k_base"}`},
		{"malformed body", `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/v1/tokenize", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), "invalid_request_error") {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestModelsAndEncodings(t *testing.T) {
	t.Parallel()

	e := newTestEcho()

	rec := doJSON(t, e, http.MethodGet, "/v1/models", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("models status: got %d", rec.Code)
	}
	var models ModelsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &models); err != nil {
		t.Fatalf("decode models: %v", err)
	}
	if models.Models["gpt-4"] != "cl100k_base" {
		t.Fatalf("unexpected mapping: %v", models.Models)
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/encodings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("encodings status: got %d", rec.Code)
	}
	var encodings EncodingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &encodings); err != nil {
		t.Fatalf("decode encodings: %v", err)
	}
	if len(encodings.Encodings) != 4 {
		t.Fatalf("expected 4 encodings, got %v", encodings.Encodings)
	}
}
