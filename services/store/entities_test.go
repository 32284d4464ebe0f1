package main

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

func testProduct(id int, name, price string, t *testing.T) Product {
	return Product{
		ProductID:  id,
		Name:       name,
		Price:      mustDecimal(t, price),
		CategoryID: 1,
		Stock:      10,
	}
}

func TestShoppingCartItem_LineTotal(t *testing.T) {
	// Arrange
	item := NewShoppingCartItem(testProduct(1, "Laptop", "10.00", t), 2)

	// Act
	total := item.LineTotal()

	// Assert
	if !total.Equal(mustDecimal(t, "20.00")) {
		t.Errorf("Expected line total 20.00, got %s", total)
	}
}

func TestShoppingCartItem_LineTotalWithDiscount(t *testing.T) {
	// Arrange
	item := NewShoppingCartItem(testProduct(2, "Headphones", "5.00", t), 1)
	item.DiscountPercent = mustDecimal(t, "0.10")

	// Act
	total := item.LineTotal()

	// Assert
	if !total.Equal(mustDecimal(t, "4.50")) {
		t.Errorf("Expected line total 4.50, got %s", total)
	}
}

func TestShoppingCartItem_LineTotalExactArithmetic(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, with no float drift
	item := NewShoppingCartItem(testProduct(3, "Sticker", "0.10", t), 3)

	if !item.LineTotal().Equal(mustDecimal(t, "0.30")) {
		t.Errorf("Expected exact 0.30, got %s", item.LineTotal())
	}
}

func TestNewShoppingCartItem_Defaults(t *testing.T) {
	item := NewShoppingCartItem(testProduct(1, "Laptop", "10.00", t), 1)

	if item.Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", item.Quantity)
	}
	if !item.DiscountPercent.IsZero() {
		t.Errorf("Expected zero discount, got %s", item.DiscountPercent)
	}
}

func TestShoppingCart_TotalEmpty(t *testing.T) {
	cart := NewShoppingCart()

	if !cart.Total().IsZero() {
		t.Errorf("Expected empty cart total to be zero, got %s", cart.Total())
	}
	if !cart.IsEmpty() {
		t.Error("Expected new cart to be empty")
	}
}

func TestShoppingCart_TotalIsSumOfLineTotals(t *testing.T) {
	// Arrange
	cart := NewShoppingCart()
	cart.Add(NewShoppingCartItem(testProduct(1, "Laptop", "10.00", t), 2))

	itemB := NewShoppingCartItem(testProduct(2, "Headphones", "5.00", t), 1)
	itemB.DiscountPercent = mustDecimal(t, "0.10")
	cart.Add(itemB)

	// Act
	total := cart.Total()

	// Assert
	expected := decimal.Zero
	for _, item := range cart.Items {
		expected = expected.Add(item.LineTotal())
	}
	if !total.Equal(expected) {
		t.Errorf("Expected total to equal sum of line totals (%s), got %s", expected, total)
	}
	if !total.Equal(mustDecimal(t, "24.50")) {
		t.Errorf("Expected total 24.50, got %s", total)
	}
}

func TestShoppingCart_AddReplacesItemForSameProduct(t *testing.T) {
	cart := NewShoppingCart()
	product := testProduct(1, "Laptop", "10.00", t)

	cart.Add(NewShoppingCartItem(product, 1))
	cart.Add(NewShoppingCartItem(product, 3))

	if len(cart.Items) != 1 {
		t.Fatalf("Expected a single item for the product, got %d", len(cart.Items))
	}
	item, ok := cart.Get(product.ProductID)
	if !ok {
		t.Fatal("Expected product to be in the cart")
	}
	if item.Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", item.Quantity)
	}
}

func TestNewOrderFromCart(t *testing.T) {
	// Arrange
	cart := NewShoppingCart()
	cart.Add(NewShoppingCartItem(testProduct(1, "Laptop", "10.00", t), 2))

	itemB := NewShoppingCartItem(testProduct(2, "Headphones", "5.00", t), 1)
	itemB.DiscountPercent = mustDecimal(t, "0.10")
	cart.Add(itemB)

	// Act
	order := NewOrderFromCart(42, cart)

	// Assert
	if order.UserID != 42 {
		t.Errorf("Expected UserID 42, got %d", order.UserID)
	}
	if order.Date.IsZero() {
		t.Error("Expected order date to be set")
	}
	if !order.ShippingAmount.Equal(mustDecimal(t, "24.50")) {
		t.Errorf("Expected shipping amount 24.50, got %s", order.ShippingAmount)
	}
	if order.Address != "" || order.City != "" || order.State != "" || order.Zip != "" {
		t.Error("Expected address fields to be empty placeholders")
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(order.LineItems))
	}

	// line items must snapshot the product price at this instant
	pricesByProduct := map[int]string{1: "10.00", 2: "5.00"}
	for _, lineItem := range order.LineItems {
		expected := mustDecimal(t, pricesByProduct[lineItem.ProductID])
		if !lineItem.SalesPrice.Equal(expected) {
			t.Errorf("Expected sales price %s for product %d, got %s",
				expected, lineItem.ProductID, lineItem.SalesPrice)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{UserID: 1, Username: "admin", Role: RoleAdmin}
	user := &User{UserID: 2, Username: "user", Role: RoleUser}

	if !admin.IsAdmin() {
		t.Error("Expected ADMIN role to be admin")
	}
	if user.IsAdmin() {
		t.Error("Expected USER role to not be admin")
	}
}
