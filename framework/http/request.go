package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxMemory = 32 << 20 // 32 MB

// ErrEmptyBody is returned when a JSON request has no body.
var ErrEmptyBody = errors.New("empty request body")

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Fields returns the named body fields as strings. JSON scalars are
// rendered as their literal text, so {"age": 25} yields "25". Missing
// fields are returned as "".
func (req *Request) Fields(names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))

	if req.isJSONBody() {
		body, err := req.body()
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
		for _, name := range names {
			out[name] = scalar(m[name])
		}
		return out, nil
	}

	values, err := req.formValues()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if vs := values[name]; len(vs) > 0 {
			out[name] = vs[0]
		} else {
			out[name] = ""
		}
	}
	return out, nil
}

func (req *Request) body() ([]byte, error) {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

func (req *Request) formValues() (map[string][]string, error) {
	if strings.Contains(req.ContentType(), "multipart/form-data") {
		if err := req.raw.ParseMultipartForm(maxMemory); err != nil {
			return nil, err
		}
		return req.raw.MultipartForm.Value, nil
	}
	if err := req.raw.ParseForm(); err != nil {
		return nil, err
	}
	return req.raw.PostForm, nil
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.Header("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.Header("Accept"), "application/json") ||
		req.isJSONBody()
}

func (req *Request) isJSONBody() bool {
	return strings.Contains(req.ContentType(), "application/json")
}
