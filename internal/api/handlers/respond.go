package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorResponse единый формат тела ошибки
type errorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет payload как JSON с указанным статусом.
// nil payload пишет только статус
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Заголовки уже ушли, ошибку кодирования можно только проглотить
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondBadRequest отвечает 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// RespondUnauthorized отвечает 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, errorResponse{Error: msg})
}

// RespondForbidden отвечает 403 с сообщением
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusForbidden, errorResponse{Error: msg})
}

// RespondNotFound отвечает 404 с сообщением
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, errorResponse{Error: msg})
}

// RespondConflict отвечает 409 с сообщением
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusConflict, errorResponse{Error: msg})
}

// RespondGone отвечает 410 с сообщением
func RespondGone(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusGone, errorResponse{Error: msg})
}

// RespondInternalError отвечает 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
