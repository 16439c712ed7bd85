package database

import (
	"gorm.io/gorm"
)

type Database struct {
	gameRepo *GameRepo
	tagRepo  *TagRepo
	userRepo *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		gameRepo: NewGameRepo(db),
		tagRepo:  NewTagRepo(db),
		userRepo: NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) GameRepo() *GameRepo {
	return d.gameRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
