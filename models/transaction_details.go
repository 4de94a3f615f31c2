package models

import (
	"encoding/json"
	"fmt"
)

// TransactionDetails is the payload stored on a PendingTransaction while the
// payment is in flight. ProgramType selects which variant is populated; the
// webhook handler branches on it when promoting the payload into the
// permanent tables.
type TransactionDetails struct {
	ProgramType string `json:"program_type"`

	CodeClub   *CodeClubDetails   `json:"code_club,omitempty"`
	Enrollment *EnrollmentDetails `json:"enrollment,omitempty"`
	ShopOrder  *ShopOrderDetails  `json:"shop_order,omitempty"`
	FeeInvoice *FeeInvoiceDetails `json:"fee_invoice,omitempty"`
}

type CodeClubDetails struct {
	ChildName        string `json:"child_name"`
	ChildAge         int    `json:"child_age"`
	Schedule         string `json:"schedule"`
	ParentName       string `json:"parent_name"`
	ParentEmail      string `json:"parent_email"`
	ParentPhone      string `json:"parent_phone"`
	EmergencyContact string `json:"emergency_contact"`
}

type EnrollmentChild struct {
	ChildName   string `json:"child_name"`
	DateOfBirth string `json:"date_of_birth"`
	Schedule    string `json:"schedule"`
	Allergies   string `json:"allergies"`
}

type EnrollmentDetails struct {
	Program        string            `json:"program"`
	Children       []EnrollmentChild `json:"children"`
	ParentName     string            `json:"parent_name"`
	ParentEmail    string            `json:"parent_email"`
	ParentPhone    string            `json:"parent_phone"`
	SelfDropOff    bool              `json:"self_drop_off"`
	AltPickupNames []string          `json:"alt_pickup_names"`
}

type ShopOrderItemDetails struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPesewas int64  `json:"unit_pesewas"`
	Quantity    int    `json:"quantity"`
}

type ShopOrderDetails struct {
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerPhone string                 `json:"customer_phone"`
	Items         []ShopOrderItemDetails `json:"items"`
}

type FeeInvoiceDetails struct {
	InvoiceNumber string `json:"invoice_number"`
	StudentName   string `json:"student_name"`
	Term          string `json:"term"`
	PayerName     string `json:"payer_name"`
	PayerEmail    string `json:"payer_email"`
}

// Recipient returns the name and email the receipt should be addressed to.
func (d *TransactionDetails) Recipient() (string, string) {
	switch d.ProgramType {
	case ProgramCodeClub:
		return d.CodeClub.ParentName, d.CodeClub.ParentEmail
	case ProgramChildminding, ProgramSummerCamp:
		return d.Enrollment.ParentName, d.Enrollment.ParentEmail
	case ProgramShopOrder:
		return d.ShopOrder.CustomerName, d.ShopOrder.CustomerEmail
	case ProgramFeeInvoice:
		return d.FeeInvoice.PayerName, d.FeeInvoice.PayerEmail
	}
	return "", ""
}

func (d TransactionDetails) Encode() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction details: %v", err)
	}
	return string(raw), nil
}

func DecodeTransactionDetails(raw string) (*TransactionDetails, error) {
	var d TransactionDetails
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("failed to decode transaction details: %v", err)
	}
	if d.ProgramType == "" {
		return nil, fmt.Errorf("transaction details missing program_type")
	}
	return &d, nil
}
