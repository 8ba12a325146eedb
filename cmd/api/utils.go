package main

import (
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/sortable"
)

// sortParams reads the sort and dir query parameters and applies them to a
// sorter. No parameters means the sorter stays at its configured default.
func sortParams[T any](r *http.Request, sorter *sortable.Sorter[T]) {
	key := r.URL.Query().Get("sort")
	if key == "" {
		return
	}
	sorter.Set(key, sortable.Direction(r.URL.Query().Get("dir")))
}

func parseTime(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// dateRange reads optional from/to query parameters, defaulting to an
// unbounded range.
func dateRange(r *http.Request) (time.Time, time.Time) {
	start := time.Time{}
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := parseTime(v); err == nil {
			start = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := parseTime(v); err == nil {
			end = t
		}
	}
	return start, end
}
