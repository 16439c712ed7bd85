// Package services holds the game upload pipeline: archive validation, content
// hashing, asset publication, and the sequencing between object storage and
// the relational store.
package services

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jabbate19/devcade-api/errs"
	"github.com/jabbate19/devcade-api/models"
	"github.com/jabbate19/devcade-api/storage"
)

// Image slot names, doubling as the object key suffix under the game's
// namespace.
const (
	SlotBanner = "banner"
	SlotIcon   = "icon"
)

// GameStore is the relational surface the pipeline needs. Implemented by
// database.GameRepo; tests substitute fakes.
type GameStore interface {
	FindAll() ([]*models.Game, error)
	FindByID(id string) (*models.Game, error)
	FindByTag(tagName string) ([]*models.Game, error)
	Add(game *models.Game) error
	UpdateMetadata(id, name, description string) error
	UpdateHash(id, hash string) error
	Delete(id string) error
}

// GameService sequences the upload pipeline and owns the consistency contract
// between object storage and the game table:
//
//   - create publishes objects before the row exists, so a failed publish
//     never leaves a row pointing at missing objects;
//   - delete removes objects before the row, for the same reason;
//   - no stage is compensated after a later failure. Objects orphaned by a
//     failed insert stay in the bucket and are cleaned up out of band.
type GameService struct {
	games  GameStore
	store  storage.ObjectStore
	cache  *ListingCache
	logger zerolog.Logger
}

func NewGameService(games GameStore, store storage.ObjectStore, cache *ListingCache) *GameService {
	return &GameService{
		games:  games,
		store:  store,
		cache:  cache,
		logger: log.With().Str("service", "games").Logger(),
	}
}

// CreateGame runs the full pipeline: validate -> hash -> publish archive ->
// publish images (best effort) -> insert row. Validation failures, a bad
// archive or a non-image banner or icon, abort before anything is written. An
// archive publish failure aborts before the row is written. Image publish
// failures are returned as warnings alongside the created game.
func (s *GameService) CreateGame(ctx context.Context, up GameUpload) (*models.Game, []Warning, error) {
	id := up.ID
	if id == "" {
		id = uuid.NewString()
	}

	if err := ValidateArchive(up.Archive); err != nil {
		return nil, nil, err
	}
	if err := ValidateImage(SlotBanner, up.Banner); err != nil {
		return nil, nil, err
	}
	if err := ValidateImage(SlotIcon, up.Icon); err != nil {
		return nil, nil, err
	}

	hash, err := HashFile(up.Archive.Path)
	if err != nil {
		return nil, nil, errs.NewInternalErrorWithCause("failed to hash archive", err)
	}

	if err := s.publishFile(ctx, storage.ArchiveKey(id), up.Archive); err != nil {
		return nil, nil, err
	}

	warnings := s.publishImages(ctx, id, up.Banner, up.Icon)

	game := &models.Game{
		ID:          id,
		Author:      up.Author,
		UploadDate:  today(),
		Name:        up.Title,
		Hash:        hash,
		Description: up.Description,
	}
	if err := s.games.Add(game); err != nil {
		// The archive is already in the bucket at this point. It stays there:
		// a retried submission under a fresh id works, and orphans are swept
		// out of band.
		s.logger.Error().Err(err).Str("gameID", id).
			Msg("game row insert failed after archive publication; objects orphaned")
		return nil, warnings, errs.NewDatabaseError("insert", "game", err)
	}

	s.cache.Invalidate(ctx)
	return game, warnings, nil
}

// UpdateMetadata patches name and description only. The asset pipeline is
// bypassed entirely.
func (s *GameService) UpdateMetadata(ctx context.Context, id, name, description string) (*models.Game, error) {
	game, err := s.requireGame(id)
	if err != nil {
		return nil, err
	}

	if err := s.games.UpdateMetadata(id, name, description); err != nil {
		return nil, errs.NewDatabaseError("update", "game", err)
	}

	game.Name = name
	game.Description = description
	s.cache.Invalidate(ctx)
	return game, nil
}

// ReplaceArchive validates and republishes the game's archive under its
// existing id, then records the new content hash.
func (s *GameService) ReplaceArchive(ctx context.Context, id string, up Upload) (*models.Game, error) {
	game, err := s.requireGame(id)
	if err != nil {
		return nil, err
	}

	if err := ValidateArchive(up); err != nil {
		return nil, err
	}

	hash, err := HashFile(up.Path)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash archive", err)
	}

	if err := s.publishFile(ctx, storage.ArchiveKey(id), up); err != nil {
		return nil, err
	}

	if err := s.games.UpdateHash(id, hash); err != nil {
		return nil, errs.NewDatabaseError("update", "game", err)
	}

	game.Hash = hash
	s.cache.Invalidate(ctx)
	return game, nil
}

// ReplaceBanner republishes the game's banner image. Unlike the best-effort
// image publication inside CreateGame, a failure here is surfaced: the caller
// asked for exactly this asset.
func (s *GameService) ReplaceBanner(ctx context.Context, id string, up Upload) error {
	return s.replaceImage(ctx, id, SlotBanner, up)
}

// ReplaceIcon republishes the game's icon image.
func (s *GameService) ReplaceIcon(ctx context.Context, id string, up Upload) error {
	return s.replaceImage(ctx, id, SlotIcon, up)
}

func (s *GameService) replaceImage(ctx context.Context, id, slot string, up Upload) error {
	if _, err := s.requireGame(id); err != nil {
		return err
	}
	if err := ValidateImage(slot, up); err != nil {
		return err
	}
	return s.publishFile(ctx, imageKey(id, slot), up)
}

// DeleteGame removes the game's three objects, then its row and tag links.
// The row is only touched once every object deletion succeeded, so a storage
// failure leaves the system in its prior consistent state.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	if _, err := s.requireGame(id); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range storage.Keys(id) {
		key := key
		g.Go(func() error {
			return s.store.Delete(gctx, key)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.games.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "game", err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

// GetGame returns the game with its tags and author resolved.
func (s *GameService) GetGame(id string) (*models.GameWithTags, error) {
	return s.requireGame(id)
}

// ListGames returns every game with tags and author resolved, name-ordered,
// served through the listing cache when one is configured.
func (s *GameService) ListGames(ctx context.Context) ([]*models.GameWithTags, error) {
	if games, ok := s.cache.Get(ctx); ok {
		return games, nil
	}

	games, err := s.games.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "games", err)
	}

	s.cache.Set(ctx, games)
	return games, nil
}

// ListGamesByTag returns the games carrying the named tag, name-ordered.
func (s *GameService) ListGamesByTag(tagName string) ([]*models.Game, error) {
	games, err := s.games.FindByTag(tagName)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "games", err)
	}
	return games, nil
}

// GetArchive streams the game's zip archive. The caller owns the ReadCloser.
func (s *GameService) GetArchive(ctx context.Context, id string) (io.ReadCloser, error) {
	return s.getObject(ctx, id, storage.ArchiveKey(id))
}

// GetBanner streams the game's banner image.
func (s *GameService) GetBanner(ctx context.Context, id string) (io.ReadCloser, error) {
	return s.getObject(ctx, id, storage.BannerKey(id))
}

// GetIcon streams the game's icon image.
func (s *GameService) GetIcon(ctx context.Context, id string) (io.ReadCloser, error) {
	return s.getObject(ctx, id, storage.IconKey(id))
}

func (s *GameService) getObject(ctx context.Context, id, key string) (io.ReadCloser, error) {
	if _, err := s.requireGame(id); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, key)
}

// requireGame looks up the game row, mapping absence to NotFound.
func (s *GameService) requireGame(id string) (*models.Game, error) {
	game, err := s.games.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "game", err)
	}
	if game == nil {
		return nil, errs.NewNotFound("game")
	}
	return game, nil
}

// publishImages publishes both already-validated images, collecting failures
// as warnings rather than aborting. The archive and metadata are load-bearing;
// images are degradable.
func (s *GameService) publishImages(ctx context.Context, id string, banner, icon Upload) []Warning {
	var warnings []Warning
	for _, img := range []struct {
		slot string
		up   Upload
	}{
		{SlotBanner, banner},
		{SlotIcon, icon},
	} {
		if err := s.publishFile(ctx, imageKey(id, img.slot), img.up); err != nil {
			s.logger.Warn().Err(err).Str("gameID", id).Str("asset", img.slot).
				Msg("image publication failed; continuing")
			warnings = append(warnings, Warning{Asset: img.slot, Reason: err.Error()})
		}
	}
	return warnings
}

func (s *GameService) publishFile(ctx context.Context, key string, up Upload) error {
	f, err := os.Open(up.Path)
	if err != nil {
		return errs.NewInternalErrorWithCause("failed to open upload", err)
	}
	defer f.Close()

	return s.store.Put(ctx, key, f, up.ContentType)
}

func imageKey(id, slot string) string {
	if slot == SlotIcon {
		return storage.IconKey(id)
	}
	return storage.BannerKey(id)
}

// today returns the current date truncated to day precision, matching the
// date column type.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
