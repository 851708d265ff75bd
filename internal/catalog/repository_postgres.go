package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listActiveProductsQuery = `
		SELECT id, name, category, color, size, seller_id, image_urls
		FROM products
		WHERE status = 'active'
		ORDER BY created_at, id
	`
	getActiveProductQuery = `
		SELECT id, name, category, color, size, seller_id, image_urls
		FROM products
		WHERE id = $1 AND status = 'active'
	`
	insertProductQuery = `
		INSERT INTO products (id, name, category, color, size, seller_id, status, image_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`
	deleteProductsQuery = `DELETE FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ActiveProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listActiveProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			// a malformed row must not hide the rest of the catalog
			log.Warnw("skip malformed product row", "err", err)
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetActive(ctx context.Context, id string) (Product, error) {
	row := r.db.QueryRowContext(ctx, getActiveProductQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// Reset deletes all products and inserts the provided list as active rows in
// a single transaction. Only the first color and size are stored since the
// table keeps one of each.
func (r *PostgresRepository) Reset(ctx context.Context, products []Product) ([]Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteProductsQuery); err != nil {
		return nil, fmt.Errorf("clear products: %w", err)
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		p = withID(p)
		if _, err := tx.ExecContext(ctx, insertProductQuery,
			p.ID,
			p.Name,
			nullIfEmpty(p.Category),
			nullIfEmpty(first(p.Colors)),
			nullIfEmpty(first(p.Sizes)),
			p.SellerID,
			StatusActive,
			pq.Array(nonNil(p.ImageURLs)),
		); err != nil {
			return nil, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		out = append(out, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct adapts a `products` row: the single color and size columns
// become one-element sets, NULLs become empty values.
func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		category sql.NullString
		color    sql.NullString
		size     sql.NullString
		images   []string
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&category,
		&color,
		&size,
		&p.SellerID,
		pq.Array(&images),
	); err != nil {
		return Product{}, err
	}

	if category.Valid {
		p.Category = category.String
	}
	p.Colors = []string{}
	if color.Valid && color.String != "" {
		p.Colors = append(p.Colors, color.String)
	}
	p.Sizes = []string{}
	if size.Valid && size.String != "" {
		p.Sizes = append(p.Sizes, size.String)
	}
	p.ImageURLs = images
	return p, nil
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nonNil(vals []string) []string {
	if vals == nil {
		return []string{}
	}
	return vals
}
