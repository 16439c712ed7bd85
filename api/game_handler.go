package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jabbate19/devcade-api/errs"
	"github.com/jabbate19/devcade-api/services"
)

type gameHandler struct {
	responder Responder
	logger    zerolog.Logger
	games     *services.GameService
}

func newGameHandler(games *services.GameService) gameHandler {
	logger := log.With().Str("handlerName", "gameHandler").Logger()

	return gameHandler{
		responder: NewResponder(logger),
		logger:    logger,
		games:     games,
	}
}

// listGames returns every game with its tags and author.
func (h gameHandler) listGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := h.games.ListGames(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, games)
	}
}

// getGame returns one game with its tags and author.
func (h gameHandler) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := h.games.GetGame(chi.URLParam(r, "gameID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, game)
	}
}

// createGame accepts the full multipart submission (game, banner, icon, title,
// description, author) and runs the upload pipeline.
func (h gameHandler) createGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		archive, err := spoolFormFile(r, "game")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		banner, err := spoolFormFile(r, "banner")
		if err != nil {
			removeUploads(archive)
			h.responder.WriteError(w, err)
			return
		}
		icon, err := spoolFormFile(r, "icon")
		if err != nil {
			removeUploads(archive, banner)
			h.responder.WriteError(w, err)
			return
		}
		defer removeUploads(archive, banner, icon)

		up := services.GameUpload{
			Archive:     archive,
			Banner:      banner,
			Icon:        icon,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Author:      r.FormValue("author"),
		}
		if up.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if up.Author == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("author is required"))
			return
		}

		game, warnings, err := h.games.CreateGame(r.Context(), up)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, CreatedGame{Game: *game, Warnings: warnings})
	}
}

// updateMetadata patches name and description from a JSON body. The asset
// pipeline is not involved.
func (h gameHandler) updateMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var meta GameMetadata
		if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode game metadata body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		game, err := h.games.UpdateMetadata(r.Context(), chi.URLParam(r, "gameID"), meta.Name, meta.Description)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, game)
	}
}

// deleteGame removes the game's stored objects, then its row.
func (h gameHandler) deleteGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.games.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "game deleted successfully",
		})
	}
}

// replaceArchive accepts a single-file multipart submission and republishes
// the game's archive, refreshing the stored hash.
func (h gameHandler) replaceArchive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up, err := h.spoolSingleFile(w, r)
		if err != nil {
			return
		}
		defer removeUploads(up)

		game, err := h.games.ReplaceArchive(r.Context(), chi.URLParam(r, "gameID"), up)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, game)
	}
}

func (h gameHandler) replaceBanner() http.HandlerFunc {
	return h.replaceImage(services.SlotBanner)
}

func (h gameHandler) replaceIcon() http.HandlerFunc {
	return h.replaceImage(services.SlotIcon)
}

func (h gameHandler) replaceImage(slot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up, err := h.spoolSingleFile(w, r)
		if err != nil {
			return
		}
		defer removeUploads(up)

		id := chi.URLParam(r, "gameID")
		if slot == services.SlotIcon {
			err = h.games.ReplaceIcon(r.Context(), id, up)
		} else {
			err = h.games.ReplaceBanner(r.Context(), id, up)
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

func (h gameHandler) getArchive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.games.GetArchive(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteStream(w, body, "application/zip")
	}
}

func (h gameHandler) getBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.games.GetBanner(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteStream(w, body, "")
	}
}

func (h gameHandler) getIcon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.games.GetIcon(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteStream(w, body, "")
	}
}

// spoolSingleFile handles the "file" part shared by the asset-replacement
// endpoints, writing the error response itself on failure.
func (h gameHandler) spoolSingleFile(w http.ResponseWriter, r *http.Request) (services.Upload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		err := errs.NewBadRequestError("malformed multipart form")
		h.responder.WriteError(w, err)
		return services.Upload{}, err
	}

	up, err := spoolFormFile(r, "file")
	if err != nil {
		h.responder.WriteError(w, err)
		return services.Upload{}, err
	}
	return up, nil
}
