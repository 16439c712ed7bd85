package database

import (
	"errors"

	"github.com/jabbate19/devcade-api/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by name.
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByName returns a tag by name, or nil when no row exists.
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag.
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Update renames and redescribes a tag. A rename propagates to game_tags so
// existing associations follow the tag.
func (r *TagRepo) Update(name string, tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tag{}).Where("name = ?", name).
			Updates(map[string]any{"name": tag.Name, "description": tag.Description}).Error; err != nil {
			return err
		}
		if tag.Name == name {
			return nil
		}
		return tx.Exec("UPDATE game_tags SET tag_name = ? WHERE tag_name = ?", tag.Name, name).Error
	})
}

// Delete removes a tag and its game associations. The games themselves are
// untouched.
func (r *TagRepo) Delete(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM game_tags WHERE tag_name = ?", name).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, "name = ?", name).Error
	})
}
