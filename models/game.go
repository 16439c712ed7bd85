package models

import "time"

// Game represents a published arcade game. The row is created only after the
// game's archive has been stored; Hash always reflects the bytes currently at
// the archive's object-storage key.
type Game struct {
	ID          string    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Author      string    `json:"author" db:"author" gorm:"type:text;not null"`
	UploadDate  time.Time `json:"upload_date" db:"upload_date" gorm:"type:date;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Hash        string    `json:"hash" db:"hash" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:game_tags;joinForeignKey:GameID;joinReferences:TagName"`
	User *User `json:"user,omitempty" gorm:"foreignKey:Author;references:ID"`
}

func (Game) TableName() string {
	return "game"
}

// GameWithTags is the read projection served by list/get endpoints: a Game
// with Tags and the resolved author User populated. It is never written back.
type GameWithTags = Game
