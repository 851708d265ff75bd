package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productColumns = []string{"id", "name", "category", "color", "size", "seller_id", "image_urls"}

func TestActiveProducts_AdaptsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productColumns).
		AddRow("7d5c0a2e-1111-4c1a-9e55-0a1b2c3d4e5f", "Kurta", "Ethnic", "ivory", "M", "seller-1", "{/img/a.jpg,/img/b.jpg}").
		AddRow("7d5c0a2e-2222-4c1a-9e55-0a1b2c3d4e5f", "Tee", nil, nil, nil, "seller-2", nil)
	mock.ExpectQuery("FROM products\\s+WHERE status = 'active'").WillReturnRows(rows)

	products, err := repo.ActiveProducts(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	k := products[0]
	if len(k.Colors) != 1 || k.Colors[0] != "ivory" || len(k.Sizes) != 1 || k.Sizes[0] != "M" {
		t.Fatalf("single color/size columns not adapted: %+v", k)
	}
	if len(k.ImageURLs) != 2 || k.ImageURLs[1] != "/img/b.jpg" {
		t.Fatalf("image urls not scanned: %+v", k.ImageURLs)
	}

	tee := products[1]
	if tee.Category != "" || tee.Colors == nil || len(tee.Colors) != 0 || len(tee.Sizes) != 0 {
		t.Fatalf("NULL columns should become empty values: %+v", tee)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestActiveProducts_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WillReturnError(errors.New("connection refused"))

	if _, err := repo.ActiveProducts(context.Background()); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestGetActive_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE id = \\$1 AND status = 'active'").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err = repo.GetActive(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReset_ReplacesCatalogInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO products").
		WithArgs("7d5c0a2e-3333-4c1a-9e55-0a1b2c3d4e5f", "Blazer", "Outerwear", "navy", "L", "seller-1", StatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.Reset(context.Background(), []Product{{
		ID:       "7d5c0a2e-3333-4c1a-9e55-0a1b2c3d4e5f",
		Name:     "Blazer",
		Category: "Outerwear",
		Colors:   []string{"navy", "grey"},
		Sizes:    []string{"L"},
		SellerID: "seller-1",
	}})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "7d5c0a2e-3333-4c1a-9e55-0a1b2c3d4e5f" {
		t.Fatalf("unexpected stored products %+v", stored)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestActiveProducts_SkipsMalformedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// a NULL id cannot be scanned into a string
	rows := sqlmock.NewRows(productColumns).
		AddRow(nil, "Broken", nil, nil, nil, "seller-1", nil).
		AddRow("7d5c0a2e-4444-4c1a-9e55-0a1b2c3d4e5f", "Scarf", "Accessories", "red", nil, "seller-1", nil)
	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	products, err := repo.ActiveProducts(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(products) != 1 || products[0].Name != "Scarf" {
		t.Fatalf("expected only the valid row, got %+v", products)
	}
}
