package api

import (
	"github.com/jabbate19/devcade-api/database"
	"github.com/jabbate19/devcade-api/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, games *services.GameService) *routeHandlers {
	return &routeHandlers{
		gameHandler: newGameHandler(games),
		tagHandler:  newTagHandler(db.TagRepo(), games),
		userHandler: newUserHandler(db.UserRepo()),
	}
}
