package main

import (
	"context"
	"fmt"
)

// CartUseCase contém a lógica de negócio do carrinho.
//
// O carrinho é uma projeção sobre o banco: cada mutação é aplicada
// diretamente no repositório e a visão devolvida é sempre recarregada do
// estado confirmado, nunca um objeto mutado em memória.
type CartUseCase struct {
	carts    ShoppingCartRepository
	products ProductRepository
}

// NewCartUseCase cria uma nova instância de CartUseCase
func NewCartUseCase(carts ShoppingCartRepository, products ProductRepository) *CartUseCase {
	return &CartUseCase{
		carts:    carts,
		products: products,
	}
}

// GetCart retorna o carrinho do usuário (vazio quando não há itens)
func (uc *CartUseCase) GetCart(ctx context.Context, userID int) (*ShoppingCart, error) {
	return uc.carts.GetByUserID(ctx, userID)
}

// AddProduct adiciona uma unidade do produto ao carrinho. O produto precisa
// existir no catálogo; a mutação em si é um upsert atômico no repositório.
func (uc *CartUseCase) AddProduct(ctx context.Context, userID, productID int) (*ShoppingCart, error) {
	if _, err := uc.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := uc.carts.AddProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	return uc.carts.GetByUserID(ctx, userID)
}

// UpdateQuantity grava a quantidade de um item já presente no carrinho.
// Quantidade não positiva é rejeitada antes de qualquer mutação.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*ShoppingCart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidArgument)
	}

	if err := uc.carts.UpdateProductQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}

	return uc.carts.GetByUserID(ctx, userID)
}

// Clear remove todos os itens do carrinho. Limpar um carrinho já vazio é um
// no-op, não um erro.
func (uc *CartUseCase) Clear(ctx context.Context, userID int) (*ShoppingCart, error) {
	if err := uc.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	return uc.carts.GetByUserID(ctx, userID)
}
