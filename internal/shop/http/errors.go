package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/httpx"
)

// writeServiceError maps service and store sentinels onto HTTP statuses.
// Anything unrecognised is an infrastructure failure and gets logged before
// the generic 500.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteError(w, http.StatusConflict, "username already registered")
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusConflict, "already exists")
	default:
		log.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
