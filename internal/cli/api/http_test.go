package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostJSON_SendsPayload_And_ParsesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type: %q", ct)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["x"] != float64(1) { // JSON number → float64
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	if err := New(ts.URL+"/").PostJSON(context.Background(), "/api", map[string]any{"x": 1}, &out); err != nil {
		t.Fatalf("PostJSON err: %v", err)
	}
	if !out.OK {
		t.Fatalf("body not decoded")
	}
}

func TestGetJSON_NoBody_NoContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "" {
			t.Fatalf("GET must not carry content type")
		}
		if r.URL.Path != "/api/clients" {
			t.Fatalf("path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	var out []map[string]any
	if err := New(ts.URL).GetJSON(context.Background(), "/api/clients", &out); err != nil {
		t.Fatalf("GetJSON err: %v", err)
	}
}

func TestDo_Non2xx_DecodesValidationProblems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"invalid ornaments","invalid":[{"index":0,"id":"a","field":"image","reason":"required"}]}`))
	}))
	defer ts.Close()

	err := New(ts.URL).PutJSON(context.Background(), "/x", map[string]any{}, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || len(apiErr.Invalid) != 1 {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if !strings.Contains(apiErr.Error(), `ornament #0 (id="a"): image required`) {
		t.Fatalf("problem missing in message: %s", apiErr.Error())
	}
}

func TestDo_Non2xx_PlainTextBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	err := New(ts.URL).DeleteJSON(context.Background(), "/x", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "boom" {
		t.Fatalf("expected plain text message, got %v", err)
	}
}

func TestDo_BadJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer ts.Close()

	var out map[string]any
	if err := New(ts.URL).GetJSON(context.Background(), "/x", &out); err == nil {
		t.Fatalf("expected decode error")
	}
}
