package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/service"
	"github.com/go-chi/chi/v5"
)

// Columns the list endpoints accept in sortBy. The ORDER BY clause is built
// by string interpolation, so anything outside this set is dropped instead of
// reaching the query.
var sortableColumns = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"first_name":     true,
	"last_name":      true,
	"email":          true,
	"city":           true,
	"referral_count": true,
	"referral_code":  true,
	"referral_level": true,
	"invoice_status": true,
	"title":          true,
	"slug":           true,
	"sort_order":     true,
	"published":      true,
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var conflict *service.EmailConflictError
	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": conflict.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func idParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// paginationFromQuery maps the shared limit/offset/sortBy/order query
// parameters onto the request package's pagination conditions.
func paginationFromQuery(r *http.Request) request.PaginationConditions {
	var conditions request.PaginationConditions
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			conditions.Limit = &limit
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			conditions.Offset = &offset
		}
	}
	if raw := q.Get("sortBy"); sortableColumns[raw] {
		conditions.SortBy = &raw
	}
	if raw := strings.ToUpper(q.Get("order")); raw == "ASC" || raw == "DESC" {
		conditions.Order = &raw
	}
	return conditions
}

func queryString(r *http.Request, key string) *string {
	if raw := r.URL.Query().Get(key); raw != "" {
		return &raw
	}
	return nil
}

func queryBool(r *http.Request, key string) *bool {
	if raw := r.URL.Query().Get(key); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			return &b
		}
	}
	return nil
}

func queryUint(r *http.Request, key string) *uint {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			u := uint(v)
			return &u
		}
	}
	return nil
}

func queryInt64(r *http.Request, key string) *int64 {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return &v
		}
	}
	return nil
}
