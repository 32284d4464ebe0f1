package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Smoke test de ponta a ponta contra uma instância rodando da API.
// Exercita catálogo, carrinho e checkout na ordem em que um cliente real
// usaria, e falha no primeiro passo com resposta inesperada.

type cartResponse struct {
	Items map[string]struct {
		Quantity int `json:"quantity"`
	} `json:"items"`
	Total string `json:"total"`
}

type orderResponse struct {
	OrderID        int    `json:"orderId"`
	ShippingAmount string `json:"shippingAmount"`
}

func main() {
	baseURL := getEnv("STORE_API_URL", "http://localhost:8080")
	username := getEnv("STORE_USERNAME", "user")

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("X-User-Name", username).
		SetHeader("X-Request-Id", uuid.New().String())

	log.Printf("🚀 Running smoke test against %s as %q", baseURL, username)

	step("health check", func() error {
		resp, err := client.R().Get("/health")
		if err != nil {
			return err
		}
		return expectStatus(resp, 200)
	})

	step("list categories", func() error {
		var categories []struct {
			CategoryID int `json:"categoryId"`
		}
		resp, err := client.R().SetResult(&categories).Get("/categories")
		if err != nil {
			return err
		}
		if err := expectStatus(resp, 200); err != nil {
			return err
		}
		if len(categories) == 0 {
			return fmt.Errorf("expected at least one seeded category")
		}
		return nil
	})

	var productID int
	step("search products", func() error {
		var products []struct {
			ProductID int `json:"productId"`
		}
		resp, err := client.R().SetResult(&products).Get("/products")
		if err != nil {
			return err
		}
		if err := expectStatus(resp, 200); err != nil {
			return err
		}
		if len(products) == 0 {
			return fmt.Errorf("expected at least one seeded product")
		}
		productID = products[0].ProductID
		return nil
	})

	step("clear cart", func() error {
		resp, err := client.R().Delete("/cart")
		if err != nil {
			return err
		}
		return expectStatus(resp, 200)
	})

	step("add product twice", func() error {
		for i := 0; i < 2; i++ {
			resp, err := client.R().Post(fmt.Sprintf("/cart/products/%d", productID))
			if err != nil {
				return err
			}
			if err := expectStatus(resp, 200); err != nil {
				return err
			}
		}

		var cart cartResponse
		resp, err := client.R().SetResult(&cart).Get("/cart")
		if err != nil {
			return err
		}
		if err := expectStatus(resp, 200); err != nil {
			return err
		}
		item, ok := cart.Items[fmt.Sprintf("%d", productID)]
		if !ok {
			return fmt.Errorf("product %d not found in cart", productID)
		}
		if item.Quantity != 2 {
			return fmt.Errorf("expected quantity 2 after adding twice, got %d", item.Quantity)
		}
		return nil
	})

	step("update quantity", func() error {
		resp, err := client.R().
			SetBody(map[string]int{"quantity": 3}).
			Put(fmt.Sprintf("/cart/products/%d", productID))
		if err != nil {
			return err
		}
		return expectStatus(resp, 200)
	})

	step("checkout", func() error {
		var order orderResponse
		resp, err := client.R().SetResult(&order).Post("/orders")
		if err != nil {
			return err
		}
		if err := expectStatus(resp, 201); err != nil {
			return err
		}
		if order.OrderID == 0 {
			return fmt.Errorf("expected a non-zero order id")
		}
		log.Printf("⏳ Order %d created with shipping amount %s", order.OrderID, order.ShippingAmount)
		return nil
	})

	step("cart is empty after checkout", func() error {
		var cart cartResponse
		resp, err := client.R().SetResult(&cart).Get("/cart")
		if err != nil {
			return err
		}
		if err := expectStatus(resp, 200); err != nil {
			return err
		}
		if len(cart.Items) != 0 {
			return fmt.Errorf("expected an empty cart, got %d items", len(cart.Items))
		}
		return nil
	})

	step("second checkout is rejected", func() error {
		resp, err := client.R().Post("/orders")
		if err != nil {
			return err
		}
		return expectStatus(resp, 400)
	})

	log.Println("✅ Smoke test passed")
}

func step(name string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("❌ Step %q failed: %v", name, err)
		os.Exit(1)
	}
	log.Printf("✅ %s", name)
}

func expectStatus(resp *resty.Response, expected int) error {
	if resp.StatusCode() != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, resp.StatusCode(), resp.String())
	}
	return nil
}

// getEnv retorna o valor da variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
