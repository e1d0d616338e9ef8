package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/tenderfindsa/tender-match-service/internal/models"
)

// SendErrorResponse sends an error as JSON.
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Println(err)
	}
}

// SendJSONResponse writes a payload as JSON with the given status code.
func SendJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(payload)
}

// ParseLimitOffset parses limit and offset query parameters.
func ParseLimitOffset(limitStr, offsetStr string, defaultLimit, maxLimit int) (int, int, error) {
	var limit, offset int
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > maxLimit {
			return 0, 0, fmt.Errorf("invalid limit parameter, must be a positive integer [1:%d]", maxLimit)
		}
	} else {
		limit = defaultLimit
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter, must be a non-negative integer")
		}
	} else {
		offset = 0
	}

	return limit, offset, nil
}

// ParseOptionalFloat parses an optional numeric query parameter.
func ParseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric parameter: %s", value)
	}
	return &parsed, nil
}

// UserIDFromRequest extracts the authenticated user id set by the upstream
// auth middleware.
func UserIDFromRequest(r *http.Request) string {
	return r.Header.Get("X-User-Id")
}
