package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatService "github.com/evenlode/parley/backend/internal/service/chat"
	"github.com/evenlode/parley/backend/internal/service/completion"
	"github.com/evenlode/parley/backend/pkg/utils"
)

// Handler exposes session lifecycle and message submission over HTTP.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates a chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Get("/session/{sessionID}/transcript", h.handleGetTranscript)
	r.Post("/session/{sessionID}/messages", h.handleSubmitMessage)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PersonaID string `json:"personaId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.chatSvc.CreateSession(r.Context(), payload.PersonaID)
	if err != nil {
		switch {
		case errors.Is(err, chatService.ErrPersonaRequired):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, chatService.ErrPersonaNotFound):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	transcript, err := h.chatSvc.Transcript(r.Context(), session.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"session":    session,
		"transcript": transcript,
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	transcript, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, transcript)
}

func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.chatSvc.Submit(r.Context(), sessionID, payload.Content)
	if err != nil {
		h.respondSubmitError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"reply": reply})
}

// respondSubmitError maps submission failures onto HTTP statuses. Upstream
// failures surface the upstream message so the frontend can display it.
func (h *Handler) respondSubmitError(w http.ResponseWriter, err error) {
	var upstream *completion.UpstreamError

	switch {
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrMissingCredential):
		utils.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrRequestInFlight):
		utils.RespondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &upstream):
		utils.RespondError(w, http.StatusBadGateway, upstream.Message)
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
