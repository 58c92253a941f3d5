package middleware

import (
	"encoding/json"
	"net/http"
)

// reject stops a request before it reaches a handler, answering with the
// same JSON error shape the handler package uses.
func reject(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
