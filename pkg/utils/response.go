// Package utils holds the shared JSON response helpers. Convention: error
// responses are always {"error": "<message>"} with the matching status code;
// successful responses are the resource JSON itself, or a payload with
// "success": true for action endpoints.
package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
