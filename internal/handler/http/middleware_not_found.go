package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

// notFound and methodNotAllowed replace chi's plain-text defaults so that
// every API failure carries an {"error": ...} body.

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
