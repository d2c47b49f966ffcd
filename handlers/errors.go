package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"reelvault/models"
	"reelvault/services/metadata"
)

// MapError converts any service-layer failure into the user-facing error
// payload. The mapping is total: every input, including nil and errors
// from outside the fetch taxonomy, lands on a defined variant.
func MapError(err error) models.AppError {
	if err == nil {
		return models.AppError{Kind: models.AppErrorUnknown, Message: "An unknown error occurred."}
	}

	var fetchErr *metadata.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case metadata.FetchTransport:
			return models.AppError{Kind: models.AppErrorNetwork, Message: "Please check your internet connection and try again."}
		case metadata.FetchDecode:
			return models.AppError{Kind: models.AppErrorParsing, Message: "The server response could not be read."}
		default:
			// badStatus, invalidURL, noData
			return models.AppError{Kind: models.AppErrorAPI, Message: fetchErr.Error()}
		}
	}

	// Generic transport failures (no connectivity, DNS, timeouts) that
	// did not come through the fetch taxonomy.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return models.AppError{Kind: models.AppErrorNetwork, Message: "Please check your internet connection and try again."}
	}

	return models.AppError{Kind: models.AppErrorUnknown, Message: "An unknown error occurred."}
}

// writeAppError maps the error and writes it as a JSON response.
func writeAppError(w http.ResponseWriter, err error) {
	appErr := MapError(err)
	status := http.StatusBadGateway
	if appErr.Kind == models.AppErrorUnknown {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, appErr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
