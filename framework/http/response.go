package http

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-signup/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "malformed body")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// ValidationError sends 422 with the error bag.
//
//	res.ValidationError(errs) // {"errors": {"field": ["msg"]}}
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── Redirects ────────────────────────────────────────────────────────────────

// SeeOther redirects with 303, the status to use after a successful POST.
func (res *Response) SeeOther(url string) {
	res.w.Header().Set("Location", url)
	res.w.WriteHeader(http.StatusSeeOther)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any
