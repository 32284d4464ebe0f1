package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CartUseCaseInterface define a interface para o use case do carrinho
type CartUseCaseInterface interface {
	GetCart(ctx context.Context, userID int) (*ShoppingCart, error)
	AddProduct(ctx context.Context, userID, productID int) (*ShoppingCart, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*ShoppingCart, error)
	Clear(ctx context.Context, userID int) (*ShoppingCart, error)
}

// CartHandler contém os handlers HTTP do carrinho
type CartHandler struct {
	useCase CartUseCaseInterface
}

// NewCartHandler cria uma nova instância de CartHandler
func NewCartHandler(useCase CartUseCaseInterface) *CartHandler {
	return &CartHandler{useCase: useCase}
}

// UpdateCartItemRequest representa o corpo do PUT de quantidade
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// cartView monta a resposta do carrinho com o total calculado
func cartView(cart *ShoppingCart) gin.H {
	return gin.H{
		"items": cart.Items,
		"total": cart.Total(),
	}
}

// GetCart retorna o carrinho do usuário autenticado
func (h *CartHandler) GetCart(c *gin.Context) {
	user := currentUser(c)

	cart, err := h.useCase.GetCart(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(cart))
}

// AddProduct adiciona uma unidade do produto e devolve o carrinho recarregado
func (h *CartHandler) AddProduct(c *gin.Context) {
	user := currentUser(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be an integer"})
		return
	}

	cart, err := h.useCase.AddProduct(c.Request.Context(), user.UserID, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(cart))
}

// UpdateProduct atualiza a quantidade de um item existente
func (h *CartHandler) UpdateProduct(c *gin.Context) {
	user := currentUser(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be an integer"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.useCase.UpdateQuantity(c.Request.Context(), user.UserID, productID, req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(cart))
}

// ClearCart esvazia o carrinho do usuário
func (h *CartHandler) ClearCart(c *gin.Context) {
	user := currentUser(c)

	cart, err := h.useCase.Clear(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(cart))
}
