package http_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gohttp "github.com/km-arc/go-signup/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newJSONRequest(t *testing.T, body string) *gohttp.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return gohttp.NewRequest(req)
}

func newFormRequest(t *testing.T, values url.Values) *gohttp.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return gohttp.NewRequest(req)
}

// ── Fields ───────────────────────────────────────────────────────────────────

func TestRequest_Fields_Form(t *testing.T) {
	req := newFormRequest(t, url.Values{"name": {"ana"}, "age": {"30"}, "extra": {"x"}})

	got, err := req.Fields("name", "age", "email")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	want := map[string]string{"name": "ana", "age": "30", "email": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestRequest_Fields_JSONScalars(t *testing.T) {
	req := newJSONRequest(t, `{"name":"ana","age":30,"ratio":1.5,"ok":true,"none":null}`)

	got, err := req.Fields("name", "age", "ratio", "ok", "none", "missing")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	want := map[string]string{"name": "ana", "age": "30", "ratio": "1.5", "ok": "true", "none": "", "missing": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestRequest_Fields_EmptyJSONBody(t *testing.T) {
	if _, err := newJSONRequest(t, "  ").Fields("name"); !errors.Is(err, gohttp.ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestRequest_Fields_InvalidJSON(t *testing.T) {
	if _, err := newJSONRequest(t, `{bad json}`).Fields("name"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestRequest_Fields_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "ana")
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := gohttp.NewRequest(r).Fields("name")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if got["name"] != "ana" {
		t.Errorf("name: got %q", got["name"])
	}
}

// ── Query / headers ──────────────────────────────────────────────────────────

func TestRequest_Query(t *testing.T) {
	req := gohttp.NewRequest(httptest.NewRequest(http.MethodGet, "/?created=1", nil))

	if got := req.Query("created"); got != "1" {
		t.Errorf("Query: got %q want %q", got, "1")
	}
	if got := req.Query("missing", "fallback"); got != "fallback" {
		t.Errorf("Query fallback: got %q", got)
	}
}

func TestRequest_Header(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Custom", "value123")

	if got := gohttp.NewRequest(r).Header("X-Custom"); got != "value123" {
		t.Errorf("Header: got %q want %q", got, "value123")
	}
}

func TestRequest_IsJSON(t *testing.T) {
	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "application/json")
	if !gohttp.NewRequest(accept).IsJSON() {
		t.Error("Accept: application/json should be JSON")
	}

	if !newJSONRequest(t, "{}").IsJSON() {
		t.Error("Content-Type: application/json should be JSON")
	}

	if newFormRequest(t, url.Values{}).IsJSON() {
		t.Error("form post should not be JSON")
	}
}
