package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jabbate19/devcade-api/database"
	"github.com/jabbate19/devcade-api/errs"
	"github.com/jabbate19/devcade-api/models"
	"github.com/jabbate19/devcade-api/services"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
	games     *services.GameService
}

func newTagHandler(tagRepo *database.TagRepo, games *services.GameService) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
		games:     games,
	}
}

func (h tagHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "tags", err))
			return
		}

		h.responder.WriteJSON(w, tags)
	}
}

func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, err := h.requireTag(w, chi.URLParam(r, "tag"))
		if err != nil {
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if tag.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "tag", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, tag)
	}
}

func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "tag")
		if _, err := h.requireTag(w, name); err != nil {
			return
		}

		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.tagRepo.Update(name, &tag); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "tag", err))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag removes the tag and its game associations; the games stay.
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "tag")
		if _, err := h.requireTag(w, name); err != nil {
			return
		}

		if err := h.tagRepo.Delete(name); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "tag", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}

// getTagGames lists the games carrying a tag.
func (h tagHandler) getTagGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "tag")
		if _, err := h.requireTag(w, name); err != nil {
			return
		}

		games, err := h.games.ListGamesByTag(name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, games)
	}
}

// requireTag looks up a tag, writing the error response itself on failure.
func (h tagHandler) requireTag(w http.ResponseWriter, name string) (*models.Tag, error) {
	tag, err := h.tagRepo.FindByName(name)
	if err != nil {
		dbErr := errs.NewDatabaseError("find", "tag", err)
		h.responder.WriteError(w, dbErr)
		return nil, dbErr
	}
	if tag == nil {
		notFound := errs.NewNotFound("tag")
		h.responder.WriteError(w, notFound)
		return nil, notFound
	}
	return tag, nil
}
