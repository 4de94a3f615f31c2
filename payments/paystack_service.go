package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/adjeiboateng/brightkids_backend/configs"
)

// Overridable so tests can point the client at a local server.
var paystackBaseURL = "https://api.paystack.co"

type InitializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	CallbackURL string `json:"callback_url"`
	Reference   string `json:"reference,omitempty"`
}

type InitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Raw re-serializes the gateway response for audit storage on the pending
// transaction row.
func (r *InitializeResponse) Raw() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

type VerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

// InitializeTransaction opens a hosted Paystack checkout session. Amount is in
// pesewas. Calling it twice creates two distinct sessions; callers must not
// double-submit.
func InitializeTransaction(email string, amountPesewas int64, callbackURL string) (*InitializeResponse, error) {
	secretKey := config.Config("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set in .env")
	}

	payload := InitializeRequest{
		Email:       email,
		Amount:      amountPesewas,
		CallbackURL: callbackURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize payload: %v", err)
	}

	req, err := http.NewRequest("POST", paystackBaseURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create initialize request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send initialize request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read initialize response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Paystack API Error: %s", string(respBody))
		return nil, fmt.Errorf("Paystack returned non-200 status: %d", resp.StatusCode)
	}

	var initResp InitializeResponse
	if err := json.Unmarshal(respBody, &initResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal initialize response: %v", err)
	}

	if !initResp.Status || initResp.Data.Reference == "" {
		log.Printf("Paystack initialization rejected: %s", initResp.Message)
		return nil, fmt.Errorf("Paystack initialization failed: %s", initResp.Message)
	}

	return &initResp, nil
}

// VerifyTransaction asks Paystack for the authoritative state of a charge.
// The webhook handler calls this before trusting any webhook payload.
func VerifyTransaction(reference string) (*VerifyResponse, error) {
	secretKey := config.Config("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set in .env")
	}

	req, err := http.NewRequest("GET", paystackBaseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send verify request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read verify response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Paystack verify error for %s: %s", reference, string(respBody))
		return nil, fmt.Errorf("Paystack verify returned non-200 status: %d", resp.StatusCode)
	}

	var verifyResp VerifyResponse
	if err := json.Unmarshal(respBody, &verifyResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verify response: %v", err)
	}

	return &verifyResp, nil
}
