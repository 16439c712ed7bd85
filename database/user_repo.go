package database

import (
	"errors"

	"github.com/jabbate19/devcade-api/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by id, or nil when no row exists.
func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update patches a user's mutable fields. The id and provider type are fixed
// at creation.
func (r *UserRepo) Update(id string, user *models.User) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"picture":    user.Picture,
			"admin":      user.Admin,
			"email":      user.Email,
		}).Error
}
