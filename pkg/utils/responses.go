package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, success bool, message, errMsg string, payload any) {
	response := Response{
		Success: success,
		Message: message,
		Error:   errMsg,
		Payload: payload,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, payload any) {
	ResponseJSON(w, http.StatusOK, true, message, "", payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, payload any) {
	ResponseJSON(w, http.StatusCreated, true, message, "", payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusBadRequest, false, "", errMsg, nil)
}

// returns 400 Bad Request with field-level validation errors
func ResponseValidationFailed(w http.ResponseWriter, errMsg string, fields map[string]string) {
	ResponseJSON(w, http.StatusBadRequest, false, "", errMsg, fields)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusUnauthorized, false, "", errMsg, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusForbidden, false, "", errMsg, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusNotFound, false, "", errMsg, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusInternalServerError, false, "", errMsg, nil)
}
