package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/evenlode/parley/backend/internal/handler/chat"
	credentialHandler "github.com/evenlode/parley/backend/internal/handler/credential"
	personaHandler "github.com/evenlode/parley/backend/internal/handler/persona"
	middlewarePkg "github.com/evenlode/parley/backend/internal/middleware"
	personaModel "github.com/evenlode/parley/backend/internal/model/persona"
	chatService "github.com/evenlode/parley/backend/internal/service/chat"
	credentialService "github.com/evenlode/parley/backend/internal/service/credential"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, chatSvc *chatService.Service, credentials credentialService.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		personaHandler.New(personas).RegisterRoutes(api)
		chatHandler.New(chatSvc).RegisterRoutes(api)
		credentialHandler.New(credentials).RegisterRoutes(api)
	})

	return r
}
