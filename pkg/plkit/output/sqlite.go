package output

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE runs (
		run_id TEXT PRIMARY KEY,
		generated_at TEXT NOT NULL,
		club TEXT NOT NULL,
		currency TEXT NOT NULL,
		total_quantity INTEGER NOT NULL,
		total_price TEXT NOT NULL
	)`,
	`CREATE TABLE products (
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		position INTEGER NOT NULL,
		product TEXT NOT NULL,
		display_name TEXT NOT NULL,
		colour TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price TEXT NOT NULL,
		total_price TEXT NOT NULL,
		PRIMARY KEY (run_id, product)
	)`,
	`CREATE TABLE product_sizes (
		run_id TEXT NOT NULL,
		product TEXT NOT NULL,
		size TEXT NOT NULL,
		label TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		PRIMARY KEY (run_id, product, size)
	)`,
	`CREATE TABLE personalisations (
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		position INTEGER NOT NULL,
		product TEXT NOT NULL,
		size TEXT,
		colour TEXT NOT NULL,
		sleeve TEXT,
		back TEXT,
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE INDEX idx_personalisations_product ON personalisations(product)`,
}

// WriteSQLite writes both reports to a fresh SQLite database at path,
// replacing any existing file.
func WriteSQLite(ctx context.Context, path, runID string, products *models.ProductReport, personal *models.PersonalisationReport) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range sqliteSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, generated_at, club, currency, total_quantity, total_price) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), products.ClubName, products.Currency,
		products.TotalQuantity, products.TotalPrice.StringFixed(2),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if err := insertProducts(ctx, tx, runID, products); err != nil {
		return err
	}
	if err := insertPersonalisations(ctx, tx, runID, personal); err != nil {
		return err
	}
	return tx.Commit()
}

func insertProducts(ctx context.Context, tx *sql.Tx, runID string, r *models.ProductReport) error {
	productStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (run_id, position, product, display_name, colour, quantity, unit_price, total_price) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer productStmt.Close()

	sizeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO product_sizes (run_id, product, size, label, quantity) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sizeStmt.Close()

	for i, p := range r.Rows {
		if _, err := productStmt.ExecContext(ctx, runID, i+1, p.Name, p.DisplayName(), string(p.Colour),
			p.Quantity(), p.UnitPrice.StringFixed(2), p.TotalPrice().StringFixed(2)); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		for _, s := range models.Sizes {
			if _, err := sizeStmt.ExecContext(ctx, runID, p.Name, string(s),
				models.SizeLabel(p.Name, string(s)), p.Counts[s]); err != nil {
				return fmt.Errorf("insert size %s of %q: %w", s, p.Name, err)
			}
		}
	}
	return nil
}

func insertPersonalisations(ctx context.Context, tx *sql.Tx, runID string, r *models.PersonalisationReport) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO personalisations (run_id, position, product, size, colour, sleeve, back) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range r.Rows {
		if _, err := stmt.ExecContext(ctx, runID, i+1, p.Product, nullString(p.Size),
			string(p.Colour), nullString(p.Sleeve), nullString(p.Back)); err != nil {
			return fmt.Errorf("insert personalisation %d: %w", i+1, err)
		}
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
