package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
)

// OpenAPIHandler serves the embedded OpenAPI document as JSON.
type OpenAPIHandler struct {
	rawYAML []byte

	once     sync.Once
	jsonSpec []byte
	jsonErr  error
}

// NewOpenAPIHandler creates a handler for yamlSpec. The conversion to JSON
// happens on the first request and is cached.
func NewOpenAPIHandler(yamlSpec []byte) *OpenAPIHandler {
	return &OpenAPIHandler{rawYAML: yamlSpec}
}

func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(func() {
		h.jsonSpec, h.jsonErr = yaml.YAMLToJSON(h.rawYAML)
	})

	if h.jsonErr != nil {
		slog.Error("failed to convert OpenAPI document", "error", h.jsonErr)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to convert OpenAPI document", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.jsonSpec); err != nil {
		slog.Error("failed to write OpenAPI response", "error", err)
	}
}
