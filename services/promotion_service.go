package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadyProcessed means another delivery of the same webhook won the
// pending->success race; the caller must treat the event as a no-op.
var ErrAlreadyProcessed = errors.New("transaction has already been processed")

// PromoteTransaction flips a verified transaction from pending to success and
// copies its stored payload into the permanent table for its program type.
// The flip is a conditional update on status, so concurrent deliveries of the
// same charge.success event promote at most once.
func PromoteTransaction(db *gorm.DB, txn *models.PendingTransaction) (*models.TransactionDetails, error) {
	details, err := models.DecodeTransactionDetails(txn.Details)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PendingTransaction{}).
			Where("reference = ? AND status = ?", txn.Reference, models.TxnStatusPending).
			Update("status", models.TxnStatusSuccess)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}

		return insertRegistrationRecords(tx, txn, details)
	})
	if err != nil {
		return nil, err
	}

	txn.Status = models.TxnStatusSuccess
	return details, nil
}

func insertRegistrationRecords(tx *gorm.DB, txn *models.PendingTransaction, details *models.TransactionDetails) error {
	switch details.ProgramType {
	case models.ProgramCodeClub:
		if details.CodeClub == nil {
			return fmt.Errorf("transaction %s tagged %s but has no code club payload", txn.Reference, details.ProgramType)
		}
		registration := models.CodeClubRegistration{
			Reference:        txn.Reference,
			ChildName:        details.CodeClub.ChildName,
			ChildAge:         details.CodeClub.ChildAge,
			Schedule:         details.CodeClub.Schedule,
			ParentName:       details.CodeClub.ParentName,
			ParentEmail:      details.CodeClub.ParentEmail,
			ParentPhone:      details.CodeClub.ParentPhone,
			EmergencyContact: details.CodeClub.EmergencyContact,
			AmountPesewas:    txn.AmountPesewas,
			IsActive:         true,
		}
		return tx.Create(&registration).Error

	case models.ProgramChildminding, models.ProgramSummerCamp:
		if details.Enrollment == nil || len(details.Enrollment.Children) == 0 {
			return fmt.Errorf("transaction %s tagged %s but has no enrollment payload", txn.Reference, details.ProgramType)
		}
		for _, child := range details.Enrollment.Children {
			registration := models.ChildRegistration{
				Reference:      txn.Reference,
				Program:        details.Enrollment.Program,
				Schedule:       child.Schedule,
				ChildName:      child.ChildName,
				DateOfBirth:    child.DateOfBirth,
				Allergies:      child.Allergies,
				ParentName:     details.Enrollment.ParentName,
				ParentEmail:    details.Enrollment.ParentEmail,
				ParentPhone:    details.Enrollment.ParentPhone,
				SelfDropOff:    details.Enrollment.SelfDropOff,
				AltPickupNames: strings.Join(details.Enrollment.AltPickupNames, ", "),
				AmountPesewas:  txn.AmountPesewas,
				IsActive:       true,
			}
			if err := tx.Create(&registration).Error; err != nil {
				return err
			}
		}
		return nil

	case models.ProgramShopOrder:
		if details.ShopOrder == nil || len(details.ShopOrder.Items) == 0 {
			return fmt.Errorf("transaction %s tagged %s but has no order payload", txn.Reference, details.ProgramType)
		}
		order := models.ShopOrder{
			Reference:     txn.Reference,
			CustomerName:  details.ShopOrder.CustomerName,
			CustomerEmail: details.ShopOrder.CustomerEmail,
			CustomerPhone: details.ShopOrder.CustomerPhone,
			AmountPesewas: txn.AmountPesewas,
			IsActive:      true,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range details.ShopOrder.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("order %s has malformed product id %q: %v", txn.Reference, item.ProductID, err)
			}
			orderItem := models.ShopOrderItem{
				ShopOrderID: order.ID,
				ProductID:   productID,
				ProductName: item.ProductName,
				UnitPesewas: item.UnitPesewas,
				Quantity:    item.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil

	case models.ProgramFeeInvoice:
		if details.FeeInvoice == nil {
			return fmt.Errorf("transaction %s tagged %s but has no invoice payload", txn.Reference, details.ProgramType)
		}
		invoice := models.FeeInvoice{
			Reference:     txn.Reference,
			InvoiceNumber: details.FeeInvoice.InvoiceNumber,
			StudentName:   details.FeeInvoice.StudentName,
			Term:          details.FeeInvoice.Term,
			PayerName:     details.FeeInvoice.PayerName,
			PayerEmail:    details.FeeInvoice.PayerEmail,
			AmountPesewas: txn.AmountPesewas,
			Status:        "paid",
			IsActive:      true,
		}
		return tx.Create(&invoice).Error

	default:
		return fmt.Errorf("transaction %s has unknown program type %q", txn.Reference, details.ProgramType)
	}
}
