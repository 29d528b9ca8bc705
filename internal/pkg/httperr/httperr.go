package httperr

import (
	"encoding/json"
	"net/http"
)

type response struct {
	Error string `json:"error"`
}

// Write emits the JSON failure body used by every endpoint:
// {"error": "<message>"} with the given status code.
func Write(w http.ResponseWriter, status int, message string) {
	body, err := json.Marshal(response{Error: message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
