package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/view"
	"block_explorer/internal/logger"
	"block_explorer/pkg/explorer"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// HTTPHandler handles incoming HTTP requests for the explorer page and its JSON mirrors.
type HTTPHandler struct {
	explorerService explorer.Explorer
	logger          logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(explorerService explorer.Explorer, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if explorerService == nil {
		return nil, errors.New("explorerService cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		explorerService: explorerService,
		logger:          appLogger,
	}, nil
}

// HandleIndex handles requests to GET /
func (h *HTTPHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	snapshot, err := h.explorerService.Snapshot(r.Context())
	if err != nil {
		requestLogger.Error("Error getting explorer snapshot", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	data := pageData{Page: view.Render(snapshot), SelectedHash: snapshot.SelectedHash}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		requestLogger.Error("Error executing page template", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if n, err := buf.WriteTo(w); err != nil {
		requestLogger.Error("Error writing response body", "error", err, "bytes_written", n)
	}
}

// HandlePreviousBlock handles requests to POST /block/previous
func (h *HTTPHandler) HandlePreviousBlock(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if err := h.explorerService.PreviousBlock(r.Context()); err != nil {
		requestLogger.Error("Error moving to previous block", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to move to previous block", requestLogger)
		return
	}
	redirectToIndex(w, r)
}

// HandleNextBlock handles requests to POST /block/next
func (h *HTTPHandler) HandleNextBlock(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if err := h.explorerService.NextBlock(r.Context()); err != nil {
		requestLogger.Error("Error moving to next block", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to move to next block", requestLogger)
		return
	}
	redirectToIndex(w, r)
}

// HandleSelectTransaction handles requests to POST /transactions/{hash}/select
func (h *HTTPHandler) HandleSelectTransaction(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	hash, ok := h.pathHash(w, r, requestLogger)
	if !ok {
		return
	}

	if err := h.explorerService.SelectTransaction(r.Context(), hash); err != nil {
		requestLogger.Error("Error selecting transaction", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to select transaction", requestLogger)
		return
	}
	redirectToIndex(w, r)
}

// HandleGetState handles requests to GET /api/state
func (h *HTTPHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	snapshot, err := h.explorerService.Snapshot(r.Context())
	if err != nil {
		requestLogger.Error("Error getting explorer snapshot", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve explorer state", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot, requestLogger)
}

// HandleGetTransaction handles requests to GET /api/transactions/{hash}.
// A hash missing from the current list yields the empty record.
func (h *HTTPHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	hash, ok := h.pathHash(w, r, requestLogger)
	if !ok {
		return
	}

	tx, err := h.explorerService.GetTransaction(r.Context(), hash)
	if err != nil {
		requestLogger.Error("Error getting transaction", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve transaction", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, tx, requestLogger)
}

// HandleHealth handles requests to GET /healthz
func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"}, h.logger)
}

// pathHash extracts and normalizes the {hash} path value, answering 400 when it is malformed.
func (h *HTTPHandler) pathHash(w http.ResponseWriter, r *http.Request, l logger.AppLogger) (string, bool) {
	raw := r.PathValue("hash")
	if raw == "" {
		respondWithError(w, http.StatusBadRequest, "Transaction hash cannot be empty in URL path", l)
		return "", false
	}

	hash, err := domain.NewTransactionHash(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), l)
		return "", false
	}
	return hash.String(), true
}

func redirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}

	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	n, writeErr := w.Write(response)
	if writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
