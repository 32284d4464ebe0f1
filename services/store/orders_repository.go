package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository define a persistência de pedidos
type OrderRepository interface {
	// Checkout converte o carrinho do usuário em um pedido persistido e
	// esvazia o carrinho, tudo em uma única transação. Retorna ErrCartEmpty
	// quando o carrinho está vazio no momento da transação.
	Checkout(ctx context.Context, userID int) (*Order, error)
}

// PostgresOrderRepository implementa OrderRepository usando PostgreSQL
type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

// NewPostgresOrderRepository cria uma nova instância do repositório de pedidos
func NewPostgresOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Checkout executa o fluxo completo dentro de uma transação local:
//
//  1. recarrega o carrinho com lock (FOR UPDATE) — é esse snapshot que vira pedido;
//  2. insere o pedido e obtém o order_id gerado;
//  3. insere uma linha de pedido por item, com o preço copiado neste instante;
//  4. remove do carrinho somente os produtos incluídos no pedido.
//
// Qualquer falha faz rollback de tudo: nenhum pedido parcial fica visível e o
// carrinho permanece intacto. Um item adicionado por uma requisição concorrente
// depois do lock continua no carrinho após o commit.
func (r *PostgresOrderRepository) Checkout(ctx context.Context, userID int) (*Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cart, err := queryShoppingCart(ctx, tx, userID, true)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	order := NewOrderFromCart(userID, cart)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, date, address, city, state, zip, shipping_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING order_id
	`, order.UserID, order.Date, order.Address, order.City, order.State, order.Zip, order.ShippingAmount).Scan(&order.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range order.LineItems {
		item := &order.LineItems[i]
		item.OrderID = order.OrderID

		err = tx.QueryRow(ctx, `
			INSERT INTO order_line_items (order_id, product_id, sales_price, quantity, discount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING order_line_item_id
		`, item.OrderID, item.ProductID, item.SalesPrice, item.Quantity, item.Discount).Scan(&item.OrderLineItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order line item for product %d: %w", item.ProductID, err)
		}
	}

	productIDs := make([]int, 0, len(cart.Items))
	for productID := range cart.Items {
		productIDs = append(productIDs, productID)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM shopping_cart
		WHERE user_id = $1 AND product_id = ANY($2::int[])
	`, userID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to clear shopping cart after checkout: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	log.Printf("✅ Order %d created for user %d (%d items, total %s)",
		order.OrderID, userID, len(order.LineItems), order.ShippingAmount)
	return order, nil
}
