package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/gofiber/fiber/v2"
)

func newPricingTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/admin/prices", CreateProgramPrice)
	app.Post("/api/v1/admin/discounts", CreateDiscountCode)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// The program/schedule pair is unique; a second insert must come back as a
// 409, not a generic database error.
func TestCreateProgramPrice_DuplicateIs409(t *testing.T) {
	useTestDB(t)
	app := newPricingTestApp()

	payload := map[string]interface{}{
		"program_name":   models.ProgramCodeClub,
		"schedule_label": "Saturdays 9am",
		"price_pesewas":  5000,
	}

	resp := postJSON(t, app, "/api/v1/admin/prices", payload)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("first insert status = %d, want 201 (body: %s)", resp.StatusCode, body)
	}

	resp = postJSON(t, app, "/api/v1/admin/prices", payload)
	if resp.StatusCode != http.StatusConflict {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("duplicate insert status = %d, want 409 (body: %s)", resp.StatusCode, body)
	}
}

// Codes are normalized before insert, so "save10" collides with "SAVE10".
func TestCreateDiscountCode_DuplicateIs409(t *testing.T) {
	useTestDB(t)
	app := newPricingTestApp()

	resp := postJSON(t, app, "/api/v1/admin/discounts", map[string]interface{}{
		"code":       "SAVE10",
		"percentage": 10,
	})
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("first insert status = %d, want 201 (body: %s)", resp.StatusCode, body)
	}

	resp = postJSON(t, app, "/api/v1/admin/discounts", map[string]interface{}{
		"code":       "save10",
		"percentage": 15,
	})
	if resp.StatusCode != http.StatusConflict {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("duplicate insert status = %d, want 409 (body: %s)", resp.StatusCode, body)
	}
}
