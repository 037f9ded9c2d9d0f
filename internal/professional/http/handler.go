package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Handler struct {
	reader professional.Reader
	logger logs.Logger
}

func NewHandler(reader professional.Reader, logger logs.Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// PaginatedResponse wraps a page of professionals. NextCursor is empty on the last page.
type PaginatedResponse struct {
	Data       []professional.Record `json:"data"`
	Limit      int                   `json:"limit"`
	TotalCount int                   `json:"total_count"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func parseFilter(r *http.Request) professional.Filter {
	q := r.URL.Query()
	return professional.Filter{
		State: q.Get("state"),
		City:  q.Get("city"),
	}
}

func parsePage(r *http.Request) (professional.Cursor, int, error) {
	q := r.URL.Query()

	limit := defaultLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return professional.Cursor{}, 0, errors.New("invalid limit")
		}
		limit = min(n, maxLimit)
	}

	cursor, err := professional.ParseCursor(q.Get("cursor"))
	if err != nil {
		return professional.Cursor{}, 0, err
	}
	return cursor, limit, nil
}

func (h *Handler) log(r *http.Request) logs.Logger {
	if l := LoggerFromContext(r.Context()); l != nil {
		return l
	}
	return h.logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListProfessionals pages through indexed professionals.
// Query params: state, city, limit, cursor
func (h *Handler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := parsePage(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, next, total, err := h.reader.List(r.Context(), cursor, limit, parseFilter(r))
	if err != nil {
		h.log(r).Error("failed to list professionals", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []professional.Record{}
	}

	resp := PaginatedResponse{
		Data:       records,
		Limit:      limit,
		TotalCount: total,
	}
	resp.NextCursor = next.String()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	phone := professional.NormalizePhone(chi.URLParam(r, "phone"))
	if phone == "" {
		http.Error(w, "invalid phone", http.StatusBadRequest)
		return
	}

	rec, err := h.reader.Get(r.Context(), phone)
	if errors.Is(err, professional.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log(r).Error("failed to get professional", "phone", phone, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
