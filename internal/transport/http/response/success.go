package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success body shape. Every 2xx with a body wraps its
// payload as {"data": ...} so clients can decode errors and successes
// into disjoint shapes.
type Envelope struct {
	Data any `json:"data"`
}

// WriteJSON encodes v with the given status. A Content-Type already set
// by the handler wins over the JSON default.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 with the payload wrapped in the envelope.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 with the payload wrapped in the envelope.
func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
