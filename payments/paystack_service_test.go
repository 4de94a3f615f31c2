package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitializeTransaction_Success(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_abc123" {
			t.Errorf("Authorization = %q", got)
		}

		var req InitializeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Amount != 10800 {
			t.Errorf("amount = %d, want 10800", req.Amount)
		}
		if req.Email != "parent@example.com" {
			t.Errorf("email = %q", req.Email)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]string{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "ref_abc123",
			},
		})
	}))
	defer server.Close()

	orig := paystackBaseURL
	paystackBaseURL = server.URL
	defer func() { paystackBaseURL = orig }()

	resp, err := InitializeTransaction("parent@example.com", 10800, "https://brightkids.example.com/payment/verify")
	if err != nil {
		t.Fatalf("InitializeTransaction: %v", err)
	}
	if resp.Data.Reference != "ref_abc123" {
		t.Errorf("reference = %q", resp.Data.Reference)
	}
	if resp.Data.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Errorf("authorization url = %q", resp.Data.AuthorizationURL)
	}
}

func TestInitializeTransaction_GatewayRejection(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Invalid amount",
		})
	}))
	defer server.Close()

	orig := paystackBaseURL
	paystackBaseURL = server.URL
	defer func() { paystackBaseURL = orig }()

	_, err := InitializeTransaction("parent@example.com", 0, "https://brightkids.example.com/payment/verify")
	if err == nil {
		t.Fatal("expected error for rejected initialization")
	}
	if !strings.Contains(err.Error(), "Invalid amount") {
		t.Errorf("error %q should carry the gateway message", err)
	}
}

func TestInitializeTransaction_MissingSecretKey(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	if _, err := InitializeTransaction("parent@example.com", 5000, "https://example.com/cb"); err == nil {
		t.Fatal("expected error when secret key is not configured")
	}
}

func TestVerifyTransaction_ReportsGatewayStatus(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/transaction/verify/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"status":    "failed",
				"reference": "ref_abc123",
				"amount":    10800,
				"currency":  "GHS",
			},
		})
	}))
	defer server.Close()

	orig := paystackBaseURL
	paystackBaseURL = server.URL
	defer func() { paystackBaseURL = orig }()

	resp, err := VerifyTransaction("ref_abc123")
	if err != nil {
		t.Fatalf("VerifyTransaction: %v", err)
	}
	// The caller must branch on the verified charge status, not on the
	// webhook payload's claims.
	if resp.Data.Status != "failed" {
		t.Errorf("charge status = %q, want failed", resp.Data.Status)
	}
}
