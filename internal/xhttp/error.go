package xhttp

import "net/http"

// Error writes a plain-text status response. Used where the JSON error
// path may itself be broken, e.g. after a panic.
func Error(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
