package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// deleteWithFavorites deletes the row id from table and, in the same
// transaction, the favorites whose column references it. table and column
// are fixed identifiers supplied by this package, never user input.
func deleteWithFavorites(ctx context.Context, db *sql.DB, table, column string, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE `+column+` = $1`, id); err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
