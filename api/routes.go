package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires all endpoints under /api. Reads are open; every mutating
// endpoint sits behind the shared-secret guard.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", handlers.gameHandler.listGames())
			r.Get("/{gameID}", handlers.gameHandler.getGame())
			r.Get("/{gameID}/game", handlers.gameHandler.getArchive())
			r.Get("/{gameID}/banner", handlers.gameHandler.getBanner())
			r.Get("/{gameID}/icon", handlers.gameHandler.getIcon())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.gameHandler.createGame())
				r.Put("/{gameID}", handlers.gameHandler.updateMetadata())
				r.Delete("/{gameID}", handlers.gameHandler.deleteGame())
				r.Put("/{gameID}/game", handlers.gameHandler.replaceArchive())
				r.Put("/{gameID}/banner", handlers.gameHandler.replaceBanner())
				r.Put("/{gameID}/icon", handlers.gameHandler.replaceIcon())
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handlers.tagHandler.listTags())
			r.Get("/{tag}", handlers.tagHandler.getTag())
			r.Get("/{tag}/games", handlers.tagHandler.getTagGames())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.tagHandler.createTag())
				r.Put("/{tag}", handlers.tagHandler.updateTag())
				r.Delete("/{tag}", handlers.tagHandler.deleteTag())
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{userID}", handlers.userHandler.getUser())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.userHandler.createUser())
				r.Put("/{userID}", handlers.userHandler.updateUser())
			})
		})
	})
}
