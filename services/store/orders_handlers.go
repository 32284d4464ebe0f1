package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CheckoutUseCaseInterface define a interface para o use case de checkout
type CheckoutUseCaseInterface interface {
	Checkout(ctx context.Context, userID int) (*Order, error)
}

// OrderHandler contém os handlers HTTP de pedidos
type OrderHandler struct {
	useCase CheckoutUseCaseInterface
	tracer  trace.Tracer
}

// NewOrderHandler cria uma nova instância de OrderHandler
func NewOrderHandler(useCase CheckoutUseCaseInterface, tracer trace.Tracer) *OrderHandler {
	return &OrderHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// Checkout converte o carrinho do usuário autenticado em um pedido
func (h *OrderHandler) Checkout(c *gin.Context) {
	user := currentUser(c)

	ctx, span := h.tracer.Start(c.Request.Context(), "checkout")
	defer span.End()

	span.SetAttributes(
		attribute.Int("user_id", user.UserID),
	)

	order, err := h.useCase.Checkout(ctx, user.UserID)
	if err != nil {
		span.RecordError(err)
		abortWithError(c, err)
		return
	}

	span.SetAttributes(
		attribute.Int("order_id", order.OrderID),
		attribute.Int("line_items", len(order.LineItems)),
		attribute.String("shipping_amount", order.ShippingAmount.String()),
	)

	c.JSON(http.StatusCreated, order)
}
