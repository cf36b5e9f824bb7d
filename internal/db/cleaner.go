package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

const deleteOrphanFavorites = `
DELETE FROM favorites
 WHERE user_id NOT IN (SELECT id FROM users)
    OR (planet_id IS NOT NULL AND planet_id NOT IN (SELECT id FROM planets))
    OR (people_id IS NOT NULL AND people_id NOT IN (SELECT id FROM people))
`

// SweepOrphanFavorites deletes favorites whose user, planet or person no
// longer exists and returns how many rows were removed.
func SweepOrphanFavorites(ctx context.Context, db *sql.DB) (int64, error) {
	res, err := db.ExecContext(ctx, deleteOrphanFavorites)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StartOrphanFavoriteCleaner sweeps orphaned favorites every interval until
// ctx is cancelled. Such rows only appear in stores written without foreign
// key enforcement. A non-positive interval disables the cleaner.
func StartOrphanFavoriteCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	log *zap.Logger,
) {
	if interval <= 0 {
		log.Info("orphaned favorites cleaner disabled")
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rows, err := SweepOrphanFavorites(ctx, db)
				if err != nil {
					log.Error("failed to clean orphaned favorites", zap.Error(err))
					continue
				}
				if rows > 0 {
					log.Info("cleaned orphaned favorites", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
