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
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.userRepo.FindByID(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode user request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if user.ID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("id is required"))
			return
		}
		if user.UserType != models.UserTypeCSH && user.UserType != models.UserTypeGoogle {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown user_type"))
			return
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "user", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, user)
	}
}

// updateUser patches a user's profile fields. The id and provider type are
// immutable.
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "userID")

		existing, err := h.userRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode user request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.userRepo.Update(id, &user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "user", err))
			return
		}

		user.ID = id
		user.UserType = existing.UserType
		h.responder.WriteJSON(w, user)
	}
}
