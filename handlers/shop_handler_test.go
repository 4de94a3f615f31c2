package handlers

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newShopTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/shop/orders", CreateShopOrder)
	return app
}

// A basket line with a malformed product ID must be rejected with 400 before
// any pricing or gateway work happens.
func TestCreateShopOrder_MalformedProductIDIs400(t *testing.T) {
	useTestDB(t)
	app := newShopTestApp()

	resp := postJSON(t, app, "/api/v1/shop/orders", map[string]interface{}{
		"customer_name":  "Adwoa Boateng",
		"customer_email": "adwoa@example.com",
		"customer_phone": "0244123456",
		"items": []map[string]interface{}{
			{"product_id": "not-a-uuid", "quantity": 1},
		},
	})
	if resp.StatusCode != http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 400 (body: %s)", resp.StatusCode, body)
	}
}
