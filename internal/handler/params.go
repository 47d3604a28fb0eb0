package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/devservices/backend/internal/model"
)

// parseListOptions reads limit, skip, order and status from the query string.
// Invalid values produce a 422 and ok=false.
func parseListOptions(w http.ResponseWriter, r *http.Request) (opts model.ListOptions, ok bool) {
	q := r.URL.Query()
	opts.Limit = model.DefaultListLimit

	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 || n > model.MaxListLimit {
			writeValidation(w, "validation_failed", fieldError{Field: "limit", Rule: "range"})
			return opts, false
		}
		opts.Limit = n
	}
	if s := q.Get("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeValidation(w, "validation_failed", fieldError{Field: "skip", Rule: "min"})
			return opts, false
		}
		opts.Offset = n
	}
	switch strings.ToLower(q.Get("order")) {
	case "", "desc":
	case "asc":
		opts.Ascending = true
	default:
		writeValidation(w, "validation_failed", fieldError{Field: "order", Rule: "oneof"})
		return opts, false
	}
	if st := q.Get("status"); st != "" && st != "all" {
		status, err := model.ParseStatus(st)
		if err != nil {
			writeValidation(w, "invalid_status", fieldError{Field: "status", Rule: "oneof"})
			return opts, false
		}
		opts.Status = status
	}
	return opts, true
}

// parseStatusUpdate reads the new status from ?status= or, when absent, from
// a JSON body {"status": "..."}.
func parseStatusUpdate(w http.ResponseWriter, r *http.Request) (model.Status, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" && r.ContentLength != 0 && r.Body != nil {
		var body struct {
			Status string `json:"status" validate:"required"`
		}
		if !decodeAndValidate(w, r, &body) {
			return "", false
		}
		raw = body.Status
	}
	if raw == "" {
		writeValidation(w, "status_required", fieldError{Field: "status", Rule: "required"})
		return "", false
	}
	status, err := model.ParseStatus(raw)
	if err != nil {
		writeValidation(w, "invalid_status", fieldError{Field: "status", Rule: "oneof"})
		return "", false
	}
	return status, true
}
