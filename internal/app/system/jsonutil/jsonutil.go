// Package jsonutil provides helper functions for JSON endpoint responses.
//
// The site is almost entirely server-rendered HTML; the JSON surface is the
// health probes, so this package stays deliberately small.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with the given status code.
//
// Usage:
//
//	jsonutil.JSON(w, http.StatusOK, map[string]any{
//	    "status": "ok",
//	})
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 OK JSON response.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// ServiceUnavailable writes a 503 JSON response. Used by the health probes
// when a dependency is down.
func ServiceUnavailable(w http.ResponseWriter, data any) {
	JSON(w, http.StatusServiceUnavailable, data)
}

// Error writes an error response with the given status code.
// The response body is {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
