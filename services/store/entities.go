package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo
type Product struct {
	ProductID   int             `json:"productId" db:"product_id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CategoryID  int             `json:"categoryId" db:"category_id"`
	Description string          `json:"description" db:"description"`
	SubCategory string          `json:"subCategory" db:"subcategory"`
	Stock       int             `json:"stock" db:"stock"`
	Featured    bool            `json:"featured" db:"featured"`
	ImageURL    string          `json:"imageUrl" db:"image_url"`
}

// Category representa uma categoria do catálogo
type Category struct {
	CategoryID  int    `json:"categoryId" db:"category_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Roles aceitos na coluna users.role
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa a identidade resolvida a partir do principal autenticado
type User struct {
	UserID   int    `json:"userId" db:"user_id"`
	Username string `json:"username" db:"username"`
	Role     string `json:"role" db:"role"`
}

// IsAdmin indica se o usuário pode acessar rotas administrativas
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile representa os dados pessoais de um usuário
type Profile struct {
	UserID    int    `json:"userId" db:"user_id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
	Address   string `json:"address" db:"address"`
	City      string `json:"city" db:"city"`
	State     string `json:"state" db:"state"`
	Zip       string `json:"zip" db:"zip"`
}

// ShoppingCartItem representa um produto no carrinho com sua quantidade e desconto
type ShoppingCartItem struct {
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// NewShoppingCartItem cria um item de carrinho com desconto zero
func NewShoppingCartItem(product Product, quantity int) ShoppingCartItem {
	return ShoppingCartItem{
		Product:         product,
		Quantity:        quantity,
		DiscountPercent: decimal.Zero,
	}
}

// LineTotal calcula o total da linha: preco * quantidade * (1 - desconto).
// Aritmética decimal exata, sem float.
func (i ShoppingCartItem) LineTotal() decimal.Decimal {
	subTotal := i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
	discountAmount := subTotal.Mul(i.DiscountPercent)
	return subTotal.Sub(discountAmount)
}

// ShoppingCart representa o carrinho de um usuário.
// O mapa é indexado por product_id: no máximo um item por produto.
type ShoppingCart struct {
	Items map[int]ShoppingCartItem `json:"items"`
}

// NewShoppingCart cria um carrinho vazio (nunca nil)
func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{Items: make(map[int]ShoppingCartItem)}
}

// Add insere ou substitui o item do produto correspondente
func (c *ShoppingCart) Add(item ShoppingCartItem) {
	c.Items[item.Product.ProductID] = item
}

// Contains verifica se o produto já está no carrinho
func (c *ShoppingCart) Contains(productID int) bool {
	_, ok := c.Items[productID]
	return ok
}

// Get retorna o item do produto correspondente
func (c *ShoppingCart) Get(productID int) (ShoppingCartItem, bool) {
	item, ok := c.Items[productID]
	return item, ok
}

// IsEmpty indica se o carrinho não tem nenhum item
func (c *ShoppingCart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total soma os totais de linha de todos os itens; zero exato para carrinho vazio
func (c *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Order representa um pedido persistido. Imutável depois de criado.
type Order struct {
	OrderID        int             `json:"orderId" db:"order_id"`
	UserID         int             `json:"userId" db:"user_id"`
	Date           time.Time       `json:"date" db:"date"`
	Address        string          `json:"address" db:"address"`
	City           string          `json:"city" db:"city"`
	State          string          `json:"state" db:"state"`
	Zip            string          `json:"zip" db:"zip"`
	ShippingAmount decimal.Decimal `json:"shippingAmount" db:"shipping_amount"`
	LineItems      []OrderLineItem `json:"lineItems"`
}

// OrderLineItem representa uma linha do pedido. O sales_price é um snapshot
// do preço do produto no momento do checkout.
type OrderLineItem struct {
	OrderLineItemID int             `json:"orderLineItemId" db:"order_line_item_id"`
	OrderID         int             `json:"orderId" db:"order_id"`
	ProductID       int             `json:"productId" db:"product_id"`
	SalesPrice      decimal.Decimal `json:"salesPrice" db:"sales_price"`
	Quantity        int             `json:"quantity" db:"quantity"`
	Discount        decimal.Decimal `json:"discount" db:"discount"`
}

// NewOrderFromCart transforma um carrinho em um pedido ainda não persistido.
// O frete recebe o total do carrinho e os campos de endereço ficam vazios:
// a coleta de endereço de entrega não faz parte do fluxo atual.
func NewOrderFromCart(userID int, cart *ShoppingCart) *Order {
	order := &Order{
		UserID:         userID,
		Date:           time.Now(),
		Address:        "",
		City:           "",
		State:          "",
		Zip:            "",
		ShippingAmount: cart.Total(),
		LineItems:      make([]OrderLineItem, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		order.LineItems = append(order.LineItems, OrderLineItem{
			ProductID:  item.Product.ProductID,
			SalesPrice: item.Product.Price,
			Quantity:   item.Quantity,
			Discount:   item.DiscountPercent,
		})
	}

	return order
}
