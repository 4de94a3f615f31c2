package notifications

import (
	"fmt"
	"strings"

	"github.com/adjeiboateng/brightkids_backend/models"
)

// FormatCedis renders a pesewa amount as "GHS 120.00" for email bodies.
func FormatCedis(pesewas int64) string {
	return fmt.Sprintf("GHS %d.%02d", pesewas/100, pesewas%100)
}

func ReceiptSubject(programType string) string {
	switch programType {
	case models.ProgramShopOrder:
		return "Your BrightKids Order is Confirmed!"
	case models.ProgramFeeInvoice:
		return "Your Fees Payment Receipt"
	default:
		return "Your BrightKids Registration is Confirmed!"
	}
}

// BuildReceiptEmail builds the registrant-facing confirmation body for a
// promoted transaction.
func BuildReceiptEmail(details *models.TransactionDetails, reference string, amountPesewas int64) string {
	var b strings.Builder
	b.WriteString("<h1>Payment Received</h1>")

	switch details.ProgramType {
	case models.ProgramCodeClub:
		fmt.Fprintf(&b, "<p>Thank you %s! %s is now registered for the %s (%s).</p>",
			details.CodeClub.ParentName, details.CodeClub.ChildName, models.ProgramCodeClub, details.CodeClub.Schedule)
	case models.ProgramChildminding, models.ProgramSummerCamp:
		names := make([]string, 0, len(details.Enrollment.Children))
		for _, child := range details.Enrollment.Children {
			names = append(names, child.ChildName)
		}
		fmt.Fprintf(&b, "<p>Thank you %s! Your %s registration for %s is confirmed.</p>",
			details.Enrollment.ParentName, details.Enrollment.Program, strings.Join(names, ", "))
	case models.ProgramShopOrder:
		fmt.Fprintf(&b, "<p>Thank you %s! Your order has been received and is being prepared.</p>",
			details.ShopOrder.CustomerName)
	case models.ProgramFeeInvoice:
		fmt.Fprintf(&b, "<p>Thank you %s! Fees for %s (%s) have been paid in full.</p>",
			details.FeeInvoice.PayerName, details.FeeInvoice.StudentName, details.FeeInvoice.Term)
	}

	fmt.Fprintf(&b, "<p>Amount paid: <strong>%s</strong><br>Payment reference: %s</p>", FormatCedis(amountPesewas), reference)
	b.WriteString("<p>Keep this email for your records.</p>")
	return b.String()
}

// BuildAdminNotification builds the internal heads-up sent alongside every
// receipt.
func BuildAdminNotification(details *models.TransactionDetails, reference string, amountPesewas int64) string {
	return fmt.Sprintf(
		"<h1>New %s Payment</h1><p>Reference: %s<br>Amount: %s</p><p>Full details are on the admin dashboard.</p>",
		details.ProgramType, reference, FormatCedis(amountPesewas))
}
