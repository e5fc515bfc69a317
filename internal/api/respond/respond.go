// Package respond writes the JSON responses shared by all handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes payload with a 200 status.
func OK(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

// Created writes payload with a 201 status.
func Created(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusCreated, payload)
}

// Fail writes an error body with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
