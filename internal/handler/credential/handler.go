package credential

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/evenlode/parley/backend/internal/service/credential"
	"github.com/evenlode/parley/backend/pkg/utils"
)

// Handler exposes credential save and presence checks. The stored value is
// never echoed back.
type Handler struct {
	store credential.Store
}

// New creates a credential handler.
func New(store credential.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the credential routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/credential", h.handleSaveCredential)
	r.Get("/credential", h.handleCredentialStatus)
}

func (h *Handler) handleSaveCredential(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Value string `json:"value"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Value) == "" {
		utils.RespondError(w, http.StatusBadRequest, "credential value is required")
		return
	}

	h.store.Set(payload.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCredentialStatus(w http.ResponseWriter, r *http.Request) {
	_, configured := h.store.Get()
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"configured": configured})
}
