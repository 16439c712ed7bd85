package database

import (
	"errors"

	"github.com/jabbate19/devcade-api/models"
	"gorm.io/gorm"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db}
}

// FindAll returns every game with its tags and author preloaded, ordered by
// display name.
func (r *GameRepo) FindAll() ([]*models.Game, error) {
	var games []*models.Game
	err := r.db.Preload("Tags").Preload("User").Order("name ASC").Find(&games).Error
	return games, err
}

// FindByID returns a game with its tags and author preloaded, or nil when no
// row exists.
func (r *GameRepo) FindByID(id string) (*models.Game, error) {
	var game models.Game
	err := r.db.Preload("Tags").Preload("User").First(&game, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByTag returns all games carrying the named tag, ordered by display name.
func (r *GameRepo) FindByTag(tagName string) ([]*models.Game, error) {
	var games []*models.Game
	err := r.db.
		Joins("JOIN game_tags ON game_tags.game_id = game.id").
		Where("game_tags.tag_name = ?", tagName).
		Order("name ASC").
		Find(&games).Error
	return games, err
}

// Add inserts a new game row.
func (r *GameRepo) Add(game *models.Game) error {
	return r.db.Create(game).Error
}

// UpdateMetadata patches only the display name and description.
func (r *GameRepo) UpdateMetadata(id, name, description string) error {
	return r.db.Model(&models.Game{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "description": description}).Error
}

// UpdateHash records the digest of a replaced archive.
func (r *GameRepo) UpdateHash(id, hash string) error {
	return r.db.Model(&models.Game{}).Where("id = ?", id).
		Update("hash", hash).Error
}

// Delete removes the game row and its tag links in one transaction.
func (r *GameRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM game_tags WHERE game_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Game{}, "id = ?", id).Error
	})
}
