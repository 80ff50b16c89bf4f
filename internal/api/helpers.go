package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/omnipdr/omnipdr/internal/errors"
	"github.com/omnipdr/omnipdr/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}

// handleError centralizes error handling for HTTP responses.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	writeJSON(w, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// queryFloat parses a float query parameter, returning def when absent.
func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid " + key + ": " + raw)
	}
	return v, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid " + key + ": " + raw)
	}
	return v, nil
}

// queryDate parses a YYYY-MM-DD query parameter, returning the zero time
// when absent.
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("invalid " + key + ": expected YYYY-MM-DD")
	}
	return t, nil
}
