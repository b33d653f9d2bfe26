package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

const (
	cacheControlHeader = "Cache-Control"
	cacheNoStore       = "no-store"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	w.Header().Set(cacheControlHeader, cacheNoStore)
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{
		Success: false,
		Error:   err.Error(),
		Status:  mapped.Status,
		Reason:  mapped.Reason,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	w.Header().Set(cacheControlHeader, cacheNoStore)
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error:  "internal server error",
		Status: "INTERNAL",
		Reason: "internalError",
	})
}

func writeMethodNotAllowed(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusMethodNotAllowed, errorResponse{
		Error:  "method not allowed",
		Status: "METHOD_NOT_ALLOWED",
		Reason: "methodNotAllowed",
	})
}

func writeRouteNotFound(ctx context.Context, w http.ResponseWriter, path string) {
	w.Header().Set(cacheControlHeader, cacheNoStore)
	writeJSON(ctx, w, http.StatusNotFound, errorResponse{
		Error:  "route not found: " + path,
		Status: "NOT_FOUND",
		Reason: "routeNotFound",
	})
}

// mapError only distinguishes caller mistakes. Upstream trouble is reported
// inside 200 payloads and never reaches here.
func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidParameter",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "teamNotFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}

// setCacheControl lets the edge cache live payloads; generated ones must
// never be cached.
func setCacheControl(w http.ResponseWriter, status usecase.ResolveStatus, liveMaxAge string) {
	if status.Synthetic() {
		w.Header().Set(cacheControlHeader, cacheNoStore)
		return
	}
	if liveMaxAge != "" {
		w.Header().Set(cacheControlHeader, liveMaxAge)
	}
}
