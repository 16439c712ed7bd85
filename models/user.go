package models

// UserType identifies which identity provider a user came from.
type UserType string

const (
	UserTypeCSH    UserType = "CSH"
	UserTypeGoogle UserType = "GOOGLE"
)

// User is a game author. The ID is the provider-side identity (CSH username or
// Google subject id), not a generated key.
type User struct {
	ID        string   `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	UserType  UserType `json:"user_type" db:"user_type" gorm:"type:text;not null"`
	FirstName string   `json:"first_name" db:"first_name" gorm:"type:text;not null"`
	LastName  string   `json:"last_name" db:"last_name" gorm:"type:text;not null"`
	Picture   string   `json:"picture" db:"picture" gorm:"type:text;not null"`
	Admin     bool     `json:"admin" db:"admin" gorm:"not null"`
	Email     string   `json:"email" db:"email" gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
