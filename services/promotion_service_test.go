package services

import (
	"errors"
	"testing"

	"github.com/adjeiboateng/brightkids_backend/models"
	"gorm.io/gorm"
)

func seedPendingTransaction(t *testing.T, gdb *gorm.DB, reference string, amount int64, details models.TransactionDetails) *models.PendingTransaction {
	t.Helper()
	encoded, err := details.Encode()
	if err != nil {
		t.Fatalf("encode details: %v", err)
	}
	txn := models.PendingTransaction{
		Reference:     reference,
		OrderID:       "BK-TEST0001",
		Email:         "parent@example.com",
		AmountPesewas: amount,
		Status:        models.TxnStatusPending,
		ProgramType:   details.ProgramType,
		Details:       encoded,
	}
	if err := gdb.Create(&txn).Error; err != nil {
		t.Fatalf("seed pending transaction: %v", err)
	}
	return &txn
}

func codeClubDetails() models.TransactionDetails {
	return models.TransactionDetails{
		ProgramType: models.ProgramCodeClub,
		CodeClub: &models.CodeClubDetails{
			ChildName:   "Ama Mensah",
			ChildAge:    9,
			Schedule:    "Saturday Morning",
			ParentName:  "Kofi Mensah",
			ParentEmail: "parent@example.com",
			ParentPhone: "0244123456",
		},
	}
}

func TestPromoteTransaction_CodeClub(t *testing.T) {
	gdb := openTestDB(t)
	txn := seedPendingTransaction(t, gdb, "ref_cc_1", 15000, codeClubDetails())

	details, err := PromoteTransaction(gdb, txn)
	if err != nil {
		t.Fatalf("PromoteTransaction: %v", err)
	}
	if details.ProgramType != models.ProgramCodeClub {
		t.Errorf("program type = %q, want %q", details.ProgramType, models.ProgramCodeClub)
	}
	if txn.Status != models.TxnStatusSuccess {
		t.Errorf("in-memory status = %q, want success", txn.Status)
	}

	var registrations []models.CodeClubRegistration
	if err := gdb.Find(&registrations).Error; err != nil {
		t.Fatalf("load registrations: %v", err)
	}
	if len(registrations) != 1 {
		t.Fatalf("got %d code club rows, want exactly 1", len(registrations))
	}
	reg := registrations[0]
	if reg.Reference != "ref_cc_1" {
		t.Errorf("reference = %q, want ref_cc_1", reg.Reference)
	}
	if !reg.IsActive {
		t.Error("registration should be active")
	}
	if reg.AmountPesewas != 15000 {
		t.Errorf("amount = %d, want 15000", reg.AmountPesewas)
	}

	var stored models.PendingTransaction
	if err := gdb.First(&stored, "reference = ?", "ref_cc_1").Error; err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	if stored.Status != models.TxnStatusSuccess {
		t.Errorf("stored status = %q, want success", stored.Status)
	}
}

// Running the promotion twice with the same payload must produce exactly one
// registration row; the second run fails the conditional status update.
func TestPromoteTransaction_Idempotent(t *testing.T) {
	gdb := openTestDB(t)
	txn := seedPendingTransaction(t, gdb, "ref_cc_2", 15000, codeClubDetails())

	if _, err := PromoteTransaction(gdb, txn); err != nil {
		t.Fatalf("first promotion: %v", err)
	}

	var replay models.PendingTransaction
	if err := gdb.First(&replay, "reference = ?", "ref_cc_2").Error; err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	// A replayed delivery re-reads the row; force the stale pending view a
	// racing handler would hold.
	replay.Status = models.TxnStatusPending

	_, err := PromoteTransaction(gdb, &replay)
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
	}

	var count int64
	gdb.Model(&models.CodeClubRegistration{}).Count(&count)
	if count != 1 {
		t.Errorf("got %d code club rows after replay, want exactly 1", count)
	}
}

func TestPromoteTransaction_EnrollmentSiblings(t *testing.T) {
	gdb := openTestDB(t)

	details := models.TransactionDetails{
		ProgramType: models.ProgramChildminding,
		Enrollment: &models.EnrollmentDetails{
			Program: models.ProgramChildminding,
			Children: []models.EnrollmentChild{
				{ChildName: "Abena Osei", DateOfBirth: "2021-03-14", Schedule: "Half Day"},
				{ChildName: "Kwame Osei", DateOfBirth: "2019-08-02", Schedule: "Full Day"},
			},
			ParentName:     "Akosua Osei",
			ParentEmail:    "parent@example.com",
			ParentPhone:    "0244123456",
			SelfDropOff:    false,
			AltPickupNames: []string{"Yaw Osei", "Efua Darko"},
		},
	}
	txn := seedPendingTransaction(t, gdb, "ref_enr_1", 10800, details)

	if _, err := PromoteTransaction(gdb, txn); err != nil {
		t.Fatalf("PromoteTransaction: %v", err)
	}

	var registrations []models.ChildRegistration
	if err := gdb.Order("child_name asc").Find(&registrations).Error; err != nil {
		t.Fatalf("load registrations: %v", err)
	}
	if len(registrations) != 2 {
		t.Fatalf("got %d child rows, want 2 (one per sibling)", len(registrations))
	}
	for _, reg := range registrations {
		if reg.Reference != "ref_enr_1" {
			t.Errorf("sibling %s reference = %q, want ref_enr_1", reg.ChildName, reg.Reference)
		}
		if reg.AltPickupNames != "Yaw Osei, Efua Darko" {
			t.Errorf("alt pickups = %q", reg.AltPickupNames)
		}
	}
	if registrations[0].Schedule != "Half Day" || registrations[1].Schedule != "Full Day" {
		t.Errorf("per-child schedules lost: %q, %q", registrations[0].Schedule, registrations[1].Schedule)
	}
}

func TestPromoteTransaction_ShopOrderWithItems(t *testing.T) {
	gdb := openTestDB(t)

	details := models.TransactionDetails{
		ProgramType: models.ProgramShopOrder,
		ShopOrder: &models.ShopOrderDetails{
			CustomerName:  "Adwoa Boateng",
			CustomerEmail: "adwoa@example.com",
			CustomerPhone: "0209876543",
			Items: []models.ShopOrderItemDetails{
				{ProductID: "0b38b0de-1f3e-4f3e-bb8c-3a1c63c10001", ProductName: "School Polo Shirt", UnitPesewas: 4500, Quantity: 2},
				{ProductID: "0b38b0de-1f3e-4f3e-bb8c-3a1c63c10002", ProductName: "Water Bottle", UnitPesewas: 2000, Quantity: 1},
			},
		},
	}
	txn := seedPendingTransaction(t, gdb, "ref_shop_1", 11000, details)

	if _, err := PromoteTransaction(gdb, txn); err != nil {
		t.Fatalf("PromoteTransaction: %v", err)
	}

	var order models.ShopOrder
	if err := gdb.Preload("Items").First(&order, "reference = ?", "ref_shop_1").Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("got %d order items, want 2", len(order.Items))
	}
	if order.AmountPesewas != 11000 {
		t.Errorf("order amount = %d, want 11000", order.AmountPesewas)
	}
}

func TestPromoteTransaction_FeeInvoice(t *testing.T) {
	gdb := openTestDB(t)

	details := models.TransactionDetails{
		ProgramType: models.ProgramFeeInvoice,
		FeeInvoice: &models.FeeInvoiceDetails{
			InvoiceNumber: "INV-7XK29QJ4",
			StudentName:   "Nana Yaa Asante",
			Term:          "Term 1 2026/27",
			PayerName:     "Kwabena Asante",
			PayerEmail:    "kwabena@example.com",
		},
	}
	txn := seedPendingTransaction(t, gdb, "ref_fee_1", 250000, details)

	if _, err := PromoteTransaction(gdb, txn); err != nil {
		t.Fatalf("PromoteTransaction: %v", err)
	}

	var invoice models.FeeInvoice
	if err := gdb.First(&invoice, "reference = ?", "ref_fee_1").Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.Status != "paid" {
		t.Errorf("invoice status = %q, want paid", invoice.Status)
	}
	if invoice.InvoiceNumber != "INV-7XK29QJ4" {
		t.Errorf("invoice number = %q", invoice.InvoiceNumber)
	}
}

// A malformed payload must roll the whole promotion back, status flip
// included, so gateway redelivery can retry after a fix.
func TestPromoteTransaction_BadPayloadRollsBack(t *testing.T) {
	gdb := openTestDB(t)

	details := models.TransactionDetails{ProgramType: models.ProgramCodeClub} // no CodeClub payload
	txn := seedPendingTransaction(t, gdb, "ref_bad_1", 5000, details)

	if _, err := PromoteTransaction(gdb, txn); err == nil {
		t.Fatal("expected error for payload without code club variant")
	}

	var stored models.PendingTransaction
	if err := gdb.First(&stored, "reference = ?", "ref_bad_1").Error; err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	if stored.Status != models.TxnStatusPending {
		t.Errorf("status = %q after failed promotion, want pending", stored.Status)
	}

	var count int64
	gdb.Model(&models.CodeClubRegistration{}).Count(&count)
	if count != 0 {
		t.Errorf("got %d registration rows after failed promotion, want 0", count)
	}
}
