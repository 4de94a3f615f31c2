package utils

import (
	"math/rand"
)

const orderIDLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomCode uses the top-level math/rand functions, which are safe for the
// concurrent handler goroutines that mint identifiers during checkout.
func randomCode() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

// GenerateOrderID returns a human-readable order identifier like BK-7XK29QJ4.
// It labels receipts and admin screens; the gateway reference remains the
// correlation key.
func GenerateOrderID() string {
	return "BK-" + randomCode()
}

// GenerateInvoiceNumber returns an invoice identifier like INV-4M2P81TQ.
func GenerateInvoiceNumber() string {
	return "INV-" + randomCode()
}
