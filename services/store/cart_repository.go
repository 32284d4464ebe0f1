package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ShoppingCartRepository define as operações de persistência do carrinho
type ShoppingCartRepository interface {
	// GetByUserID reconstrói o carrinho do usuário a partir do banco.
	// Usuário sem itens recebe um carrinho vazio, nunca nil.
	GetByUserID(ctx context.Context, userID int) (*ShoppingCart, error)

	// AddProduct incrementa a quantidade em 1 se o produto já está no
	// carrinho, senão insere uma linha com quantidade 1. Atômico.
	AddProduct(ctx context.Context, userID, productID int) error

	// UpdateProductQuantity grava a quantidade de um item existente.
	// Retorna ErrNotFound quando nenhuma linha corresponde.
	UpdateProductQuantity(ctx context.Context, userID, productID, quantity int) error

	// Clear remove todos os itens do usuário. Idempotente.
	Clear(ctx context.Context, userID int) error
}

// PostgresShoppingCartRepository implementa ShoppingCartRepository usando PostgreSQL
type PostgresShoppingCartRepository struct {
	db *pgxpool.Pool
}

// NewPostgresShoppingCartRepository cria uma nova instância do repositório de carrinho
func NewPostgresShoppingCartRepository(db *pgxpool.Pool) ShoppingCartRepository {
	return &PostgresShoppingCartRepository{db: db}
}

// cartQuerier é satisfeito por *pgxpool.Pool e por pgx.Tx, permitindo que o
// checkout recarregue o carrinho dentro da própria transação.
type cartQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const selectCartSQL = `
	SELECT
		shopping_cart.quantity,
		products.product_id,
		products.name,
		products.price,
		products.category_id,
		products.description,
		products.subcategory,
		products.stock,
		products.featured,
		products.image_url
	FROM shopping_cart
	JOIN products ON shopping_cart.product_id = products.product_id
	WHERE shopping_cart.user_id = $1
`

// queryShoppingCart materializa o carrinho de um usuário. Com lock = true as
// linhas do carrinho são travadas até o fim da transação corrente.
func queryShoppingCart(ctx context.Context, q cartQuerier, userID int, lock bool) (*ShoppingCart, error) {
	sql := selectCartSQL
	if lock {
		sql += " FOR UPDATE OF shopping_cart"
	}

	rows, err := q.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping cart for user %d: %w", userID, err)
	}
	defer rows.Close()

	cart := NewShoppingCart()
	for rows.Next() {
		var quantity int
		var product Product
		err := rows.Scan(
			&quantity,
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
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping cart row: %w", err)
		}

		item := NewShoppingCartItem(product, quantity)
		// desconto por item ainda não é persistido, entra sempre zerado
		item.DiscountPercent = decimal.Zero
		cart.Add(item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shopping cart rows: %w", err)
	}

	return cart, nil
}

// GetByUserID reconstrói o carrinho do usuário a partir do banco
func (r *PostgresShoppingCartRepository) GetByUserID(ctx context.Context, userID int) (*ShoppingCart, error) {
	return queryShoppingCart(ctx, r.db, userID, false)
}

// AddProduct insere ou incrementa em um único upsert. A chave primária
// (user_id, product_id) garante que chamadas concorrentes para o mesmo par
// nunca dupliquem linhas nem percam incrementos.
func (r *PostgresShoppingCartRepository) AddProduct(ctx context.Context, userID, productID int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shopping_cart (user_id, product_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = shopping_cart.quantity + 1
	`, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to add product %d to cart: %w", productID, err)
	}
	return nil
}

// UpdateProductQuantity grava a quantidade de um item existente
func (r *PostgresShoppingCartRepository) UpdateProductQuantity(ctx context.Context, userID, productID, quantity int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE shopping_cart
		SET quantity = $1
		WHERE user_id = $2 AND product_id = $3
	`, quantity, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to update quantity of product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d is not in the cart: %w", productID, ErrNotFound)
	}
	return nil
}

// Clear remove todos os itens do usuário
func (r *PostgresShoppingCartRepository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear shopping cart: %w", err)
	}
	return nil
}
