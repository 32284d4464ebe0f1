package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CategoryRepository define as operações de banco de dados de categorias
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, categoryID int) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID int) error
}

// ProductSearchFilters agrupa os filtros opcionais da busca de produtos.
// Ponteiro nil (ou string vazia) significa "ignorar este filtro".
type ProductSearchFilters struct {
	CategoryID  *int
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SubCategory string
}

// ProductRepository define as operações de banco de dados de produtos
type ProductRepository interface {
	Search(ctx context.Context, filters ProductSearchFilters) ([]Product, error)
	ListByCategoryID(ctx context.Context, categoryID int) ([]Product, error)
	GetByID(ctx context.Context, productID int) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, productID int) error
}

// PostgresCategoryRepository implementa CategoryRepository usando PostgreSQL
type PostgresCategoryRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCategoryRepository cria uma nova instância do repositório de categorias
func NewPostgresCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT category_id, name, description FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.CategoryID, &category.Name, &category.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, categoryID int) (*Category, error) {
	var category Category
	err := r.db.QueryRow(ctx, `
		SELECT category_id, name, description FROM categories WHERE category_id = $1
	`, categoryID).Scan(&category.CategoryID, &category.Name, &category.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, category *Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING category_id
	`, category.Name, category.Description).Scan(&category.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, category *Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $1, description = $2 WHERE category_id = $3
	`, category.Name, category.Description, category.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", category.CategoryID, ErrNotFound)
	}
	return nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, categoryID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	return nil
}

// PostgresProductRepository implementa ProductRepository usando PostgreSQL
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProductRepository cria uma nova instância do repositório de produtos
func NewPostgresProductRepository(db *pgxpool.Pool) ProductRepository {
	return &PostgresProductRepository{db: db}
}

const selectProductColumns = `
	product_id, name, price, category_id, description, subcategory, stock, featured, image_url
`

func scanProduct(row pgx.Row, product *Product) error {
	return row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
		&product.CategoryID,
		&product.Description,
		&product.SubCategory,
		&product.Stock,
		&product.Featured,
		&product.ImageURL,
	)
}

func (r *PostgresProductRepository) collectProducts(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Search aplica cada filtro somente quando informado: parâmetro nulo
// (ou string vazia) ignora o filtro correspondente
func (r *PostgresProductRepository) Search(ctx context.Context, filters ProductSearchFilters) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectProductColumns+`
		FROM products
		WHERE ($1::int IS NULL OR category_id = $1)
		  AND ($2::numeric IS NULL OR price >= $2)
		  AND ($3::numeric IS NULL OR price <= $3)
		  AND ($4::text = '' OR subcategory = $4)
		ORDER BY product_id
	`, filters.CategoryID, filters.MinPrice, filters.MaxPrice, filters.SubCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return r.collectProducts(rows)
}

func (r *PostgresProductRepository) ListByCategoryID(ctx context.Context, categoryID int) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectProductColumns+` FROM products WHERE category_id = $1 ORDER BY product_id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of category %d: %w", categoryID, err)
	}
	return r.collectProducts(rows)
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, productID int) (*Product, error) {
	var product Product
	row := r.db.QueryRow(ctx, `
		SELECT `+selectProductColumns+` FROM products WHERE product_id = $1
	`, productID)
	err := scanProduct(row, &product)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return &product, nil
}

func (r *PostgresProductRepository) Create(ctx context.Context, product *Product) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, price, category_id, description, subcategory, stock, featured, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id
	`, product.Name, product.Price, product.CategoryID, product.Description,
		product.SubCategory, product.Stock, product.Featured, product.ImageURL).Scan(&product.ProductID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, product *Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1, price = $2, category_id = $3, description = $4,
		    subcategory = $5, stock = $6, featured = $7, image_url = $8
		WHERE product_id = $9
	`, product.Name, product.Price, product.CategoryID, product.Description,
		product.SubCategory, product.Stock, product.Featured, product.ImageURL, product.ProductID)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", product.ProductID, ErrNotFound)
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, productID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	return nil
}
