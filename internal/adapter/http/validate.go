package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// handleValidate validates a single campaign record. The body is decoded
// as an arbitrary JSON value rather than a typed struct so that malformed
// top-level shapes (an array, a bare string) reach the engine and come
// back as a report instead of a transport error. Only JSON syntax errors
// produce HTTP 400. The report is returned with HTTP 200 whether the
// record is valid or not: the engine classifies, callers decide
// disposition. Persistence failures produce HTTP 500.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	var payload any
	if err = json.Unmarshal(body, &payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	report, err := h.svc.ValidateRecord(r.Context(), payload)
	if err != nil {
		h.logger.Error("validate record error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(report); err != nil {
		// encoding should rarely fail; log and send generic error
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleValidateBatch validates an ordered list of records and returns one
// report per input, in input order. The body must be a JSON array; its
// elements may be any shape, each one validated independently.
func (h *Handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	var payloads []any
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		http.Error(w, "body must be a JSON array", http.StatusBadRequest)
		return
	}

	reports, err := h.svc.ValidateBatch(r.Context(), payloads)
	if err != nil {
		h.logger.Error("validate batch error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(reports); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
