package main

import (
	"context"
)

// CheckoutUseCase contém a lógica de negócio do checkout
type CheckoutUseCase struct {
	orders OrderRepository
	carts  ShoppingCartRepository
}

// NewCheckoutUseCase cria uma nova instância de CheckoutUseCase
func NewCheckoutUseCase(orders OrderRepository, carts ShoppingCartRepository) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders: orders,
		carts:  carts,
	}
}

// Checkout valida que o carrinho tem ao menos um item e delega a conversão
// carrinho → pedido para a transação do repositório. A validação acontece
// antes de qualquer escrita; o repositório revalida dentro da transação, já
// que o carrinho pode mudar entre a leitura e o begin.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID int) (*Order, error) {
	cart, err := uc.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	return uc.orders.Checkout(ctx, userID)
}
