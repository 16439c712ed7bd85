package models

// Tag represents a label applied to games (e.g. "multiplayer", "authrequired").
// Tags are shared across games through the game_tags join table.
type Tag struct {
	Name        string `json:"name" db:"name" gorm:"type:text;primaryKey;not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
}

func (Tag) TableName() string {
	return "tags"
}
