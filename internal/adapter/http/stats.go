package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dataguard/internal/core/port"
)

// handleStatsOverview returns aggregated metrics for persisted records over
// a specified period. It accepts optional `from`, `to` (YYYY-MM-DD dates)
// and `source` query parameters. If no period is provided, it defaults to
// the last 30 days. Invalid parameters result in HTTP 400. Internal errors
// produce HTTP 500. On success it writes a JSON representation of the stats.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().AddDate(0, 0, -30)
	}

	if toStr != "" {
		req.To, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if src := q.Get("source"); src != "" {
		req.Source = &src
	}

	stats, err := h.svc.Stats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
