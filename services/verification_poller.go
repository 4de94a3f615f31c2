package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PollOutcome is the terminal state of a verification poll.
type PollOutcome string

const (
	// PollConfirmed: the transaction succeeded and the registration record
	// exists.
	PollConfirmed PollOutcome = "confirmed"
	// PollDelayed: the retry budget ran out before confirmation. The user
	// should be told processing is taking longer than expected and to
	// contact support.
	PollDelayed PollOutcome = "delayed"
)

// VerificationPoller checks whether a payment has been confirmed and its
// registration promoted, on a fixed interval with a bounded retry budget.
// The webhook may never fire (misconfigured delivery), so polling without a
// bound would strand the caller indefinitely.
type VerificationPoller struct {
	BaseURL     string
	Client      *http.Client
	Interval    time.Duration
	MaxAttempts int
}

func NewVerificationPoller(baseURL string) *VerificationPoller {
	return &VerificationPoller{
		BaseURL:     baseURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
		Interval:    5 * time.Second,
		MaxAttempts: 20,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

// WaitForConfirmation polls the transaction-status endpoint until the
// transaction reports success, then the registration-lookup endpoint until
// the promoted record appears. Both phases share one retry budget.
func (p *VerificationPoller) WaitForConfirmation(reference string) (PollOutcome, error) {
	transactionConfirmed := false

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(p.Interval)
		}

		if !transactionConfirmed {
			status, err := p.fetchTransactionStatus(reference)
			if err != nil {
				continue
			}
			if status != "success" {
				continue
			}
			transactionConfirmed = true
		}

		// The webhook may still be mid-flight between flipping the
		// transaction and inserting the registration row.
		found, err := p.registrationExists(reference)
		if err != nil {
			continue
		}
		if found {
			return PollConfirmed, nil
		}
	}

	return PollDelayed, nil
}

func (p *VerificationPoller) fetchTransactionStatus(reference string) (string, error) {
	resp, err := p.Client.Get(p.BaseURL + "/api/v1/payments/status/" + reference)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Status, nil
}

func (p *VerificationPoller) registrationExists(reference string) (bool, error) {
	resp, err := p.Client.Get(p.BaseURL + "/api/v1/registrations/lookup/" + reference)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("lookup endpoint returned %d", resp.StatusCode)
	}
}
